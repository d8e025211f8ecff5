package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"moneybrief/internal/model"
)

// Memory is an in-process TTL store used when Redis is not configured.
// Values are stored JSON-encoded so callers never share pointers with it.
type Memory struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewMemory creates an empty in-process store
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (m *Memory) set(key string, v any, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweep()
	m.entries[key] = memoryEntry{data: data, expiresAt: m.now().Add(ttl)}
	return nil
}

func (m *Memory) get(key string, v any) error {
	m.mu.Lock()
	e, ok := m.entries[key]
	if ok && !m.now().Before(e.expiresAt) {
		delete(m.entries, key)
		ok = false
	}
	m.mu.Unlock()
	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(e.data, v)
}

func (m *Memory) del(key string) {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
}

// sweep drops expired entries. Caller holds mu.
func (m *Memory) sweep() {
	now := m.now()
	for k, e := range m.entries {
		if !now.Before(e.expiresAt) {
			delete(m.entries, k)
		}
	}
}

// Len reports the number of live entries
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweep()
	return len(m.entries)
}

// Sessions returns a SessionCache view over the store
func (m *Memory) Sessions(ttl time.Duration) SessionCache {
	return &memorySessions{m: m, ttl: ttl}
}

// Narratives returns a NarrativeCache view over the store
func (m *Memory) Narratives(ttl time.Duration) NarrativeCache {
	return &memoryNarratives{m: m, ttl: ttl}
}

type memorySessions struct {
	m   *Memory
	ttl time.Duration
}

func (s *memorySessions) Set(_ context.Context, session *model.Session) error {
	return s.m.set(sessionPrefix+session.ID, session, s.ttl)
}

func (s *memorySessions) Get(_ context.Context, id string) (*model.Session, error) {
	var session model.Session
	if err := s.m.get(sessionPrefix+id, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *memorySessions) Delete(_ context.Context, id string) error {
	s.m.del(sessionPrefix + id)
	return nil
}

type memoryNarratives struct {
	m   *Memory
	ttl time.Duration
}

func (n *memoryNarratives) Set(_ context.Context, job *model.NarrativeJob) error {
	return n.m.set(narrativePrefix+job.ID, job, n.ttl)
}

func (n *memoryNarratives) Get(_ context.Context, id string) (*model.NarrativeJob, error) {
	var job model.NarrativeJob
	if err := n.m.get(narrativePrefix+id, &job); err != nil {
		return nil, err
	}
	return &job, nil
}
