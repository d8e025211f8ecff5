package ws

import (
	"context"
	"net/http"
	"time"

	"moneybrief/internal/model"
	"moneybrief/internal/service"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins; CORS is enforced on the REST routes
	},
}

// JobSource looks up narrative jobs
type JobSource interface {
	Job(ctx context.Context, id string) (*model.NarrativeJob, error)
}

// Handler handles WebSocket connections
type Handler struct {
	hub    *Hub
	jobs   JobSource
	logger *zap.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, jobs JobSource, logger *zap.Logger) *Handler {
	return &Handler{
		hub:    hub,
		jobs:   jobs,
		logger: logger,
	}
}

// NarrativeWS handles GET /v1/ws/narratives/{id}
// @Summary WebSocket push of the finished narrative job
// @Tags narratives
// @Param id path string true "Job ID"
// @Success 101 {object} Message
// @Failure 404 {string} string
// @Router /ws/narratives/{id} [get]
func (h *Handler) NarrativeWS(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if _, err := h.jobs.Job(r.Context(), id); err != nil {
		http.Error(w, "narrative job not found", http.StatusNotFound)
		return
	}

	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade", zap.Error(err))
		return
	}

	conn := &Connection{
		JobID: id,
		Send:  make(chan []byte, 4),
		Hub:   h.hub,
	}

	h.hub.Register(conn)

	// The job may have finished before Register; replay it so the
	// watcher still receives its one message.
	job, err := h.jobs.Job(r.Context(), id)
	if err == nil && job.Status != model.NarrativePending {
		msgType := service.MsgNarrativeReady
		if job.Status == model.NarrativeFailed {
			msgType = service.MsgNarrativeFailed
		}
		h.hub.BroadcastNarrative(id, msgType, job)
	}

	go h.writePump(wsConn, conn)
	go h.readPump(wsConn, conn)
}

func (h *Handler) readPump(wsConn *websocket.Conn, conn *Connection) {
	defer func() {
		h.hub.Unregister(conn)
		wsConn.Close()
	}()

	wsConn.SetReadLimit(maxMessageSize)
	wsConn.SetReadDeadline(time.Now().Add(pongWait))
	wsConn.SetPongHandler(func(string) error {
		wsConn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, _, err := wsConn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				h.logger.Debug("websocket read", zap.Error(err))
			}
			break
		}
		// Watchers only receive
	}
}

func (h *Handler) writePump(wsConn *websocket.Conn, conn *Connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		wsConn.Close()
	}()

	for {
		select {
		case message, ok := <-conn.Send:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				wsConn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}

			w, err := wsConn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := wsConn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
