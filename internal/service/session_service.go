package service

import (
	"context"
	"errors"
	"hash/fnv"
	"sync"
	"time"

	"moneybrief/internal/cache"
	"moneybrief/internal/model"
	"moneybrief/internal/survey"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrSessionNotFound = errors.New("session not found")

// sessionLockStripes bounds the lock table; sessions sharing a stripe
// serialize against each other
const sessionLockStripes = 64

// SessionService drives server-held questionnaire sessions.
// Steps on one session are serialized within the process so concurrent
// requests cannot drop each other's updates.
type SessionService struct {
	cache     cache.SessionCache
	questions []model.Question
	logger    *zap.Logger
	locks     [sessionLockStripes]sync.Mutex
}

// NewSessionService creates a new session service
func NewSessionService(sessions cache.SessionCache, logger *zap.Logger) *SessionService {
	return &SessionService{
		cache:     sessions,
		questions: survey.Questions(),
		logger:    logger,
	}
}

// Start opens a fresh session at the first question
func (s *SessionService) Start(ctx context.Context) (*model.SessionView, error) {
	now := time.Now().UTC()
	session := &model.Session{
		ID:        uuid.New().String(),
		Answers:   model.Answers{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.cache.Set(ctx, session); err != nil {
		return nil, err
	}
	s.logger.Debug("session started", zap.String("session", session.ID))
	view := survey.NewFlow(s.questions, session).View()
	return &view, nil
}

// Get returns the current state of a session
func (s *SessionService) Get(ctx context.Context, id string) (*model.SessionView, error) {
	flow, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	view := flow.View()
	return &view, nil
}

// Answer records value for the current question
func (s *SessionService) Answer(ctx context.Context, id, value string) (*model.SessionView, error) {
	return s.step(ctx, id, func(f *survey.Flow) error { return f.Answer(value) })
}

// Submit moves past the current text question
func (s *SessionService) Submit(ctx context.Context, id string) (*model.SessionView, error) {
	return s.step(ctx, id, (*survey.Flow).Submit)
}

// Back moves to the previous question
func (s *SessionService) Back(ctx context.Context, id string) (*model.SessionView, error) {
	return s.step(ctx, id, func(f *survey.Flow) error {
		f.Previous()
		return nil
	})
}

// Reset clears every answer
func (s *SessionService) Reset(ctx context.Context, id string) (*model.SessionView, error) {
	return s.step(ctx, id, func(f *survey.Flow) error {
		f.Reset()
		return nil
	})
}

// Answers returns the pruned answer set of a completed session
func (s *SessionService) Answers(ctx context.Context, id string) (model.Answers, error) {
	flow, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !flow.Completed() {
		return nil, survey.ErrNotCompleted
	}
	return flow.Answers(), nil
}

func (s *SessionService) step(ctx context.Context, id string, apply func(*survey.Flow) error) (*model.SessionView, error) {
	mu := s.lock(id)
	mu.Lock()
	defer mu.Unlock()

	flow, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(flow); err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, flow.Session()); err != nil {
		return nil, err
	}
	view := flow.View()
	return &view, nil
}

func (s *SessionService) lock(id string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(id))
	return &s.locks[h.Sum32()%sessionLockStripes]
}

func (s *SessionService) load(ctx context.Context, id string) (*survey.Flow, error) {
	session, err := s.cache.Get(ctx, id)
	if errors.Is(err, cache.ErrNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return survey.NewFlow(s.questions, session), nil
}
