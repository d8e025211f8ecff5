package ws

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// MessageType defines the type of WebSocket message
type MessageType string

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub fans narrative job results out to the connections watching each job.
// A job produces one final message, after which its watchers are closed.
type Hub struct {
	// Job -> connections
	watchers map[string]map[*Connection]struct{}

	mu sync.Mutex

	// Channels for coordination
	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
	done       chan struct{}
	closeOnce  sync.Once

	logger *zap.Logger
}

// Connection represents a WebSocket connection
type Connection struct {
	JobID string
	Send  chan []byte
	Hub   *Hub
}

// BroadcastMessage is a message to broadcast
type BroadcastMessage struct {
	JobID   string
	Message *Message
}

// NewHub creates a new WebSocket hub
func NewHub(logger *zap.Logger) *Hub {
	h := &Hub{
		watchers:   make(map[string]map[*Connection]struct{}),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *BroadcastMessage, 256),
		done:       make(chan struct{}),
		logger:     logger,
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.watchers[conn.JobID] == nil {
				h.watchers[conn.JobID] = make(map[*Connection]struct{})
			}
			h.watchers[conn.JobID][conn] = struct{}{}
			h.mu.Unlock()
			h.logger.Debug("watcher connected", zap.String("job", conn.JobID))

		case conn := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.watchers[conn.JobID]; ok {
				if _, ok := conns[conn]; ok {
					delete(conns, conn)
					close(conn.Send)
					if len(conns) == 0 {
						delete(h.watchers, conn.JobID)
					}
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			data, _ := json.Marshal(msg.Message)
			h.mu.Lock()
			conns := h.watchers[msg.JobID]
			delete(h.watchers, msg.JobID)
			h.mu.Unlock()
			for conn := range conns {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
				close(conn.Send)
			}
			h.logger.Debug("narrative pushed", zap.String("job", msg.JobID), zap.Int("watchers", len(conns)))

		case <-h.done:
			h.mu.Lock()
			for _, conns := range h.watchers {
				for conn := range conns {
					close(conn.Send)
				}
			}
			h.watchers = map[string]map[*Connection]struct{}{}
			h.mu.Unlock()
			return
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	select {
	case h.register <- conn:
	case <-h.done:
		close(conn.Send)
	}
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	select {
	case h.unregister <- conn:
	case <-h.done:
	}
}

// Watchers returns the number of connections waiting on a job
func (h *Hub) Watchers(jobID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.watchers[jobID])
}

// BroadcastNarrative sends the final job message to its watchers (implements service.Broadcaster)
func (h *Hub) BroadcastNarrative(jobID string, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	select {
	case h.broadcast <- &BroadcastMessage{
		JobID: jobID,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}:
	case <-h.done:
	}
}

// Close stops the hub and closes every open connection
func (h *Hub) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}
