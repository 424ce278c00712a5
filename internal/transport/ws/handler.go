package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"formcraft/internal/model"
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
		return true // Allow all origins, CORS is configured on the REST side
	},
}

// FormLookup resolves a form id; implemented by service.FormService
type FormLookup interface {
	GetByID(ctx context.Context, id string) (*model.Form, error)
}

// Handler handles WebSocket connections
type Handler struct {
	hub   *Hub
	forms FormLookup
	log   *slog.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, forms FormLookup, log *slog.Logger) *Handler {
	return &Handler{
		hub:   hub,
		forms: forms,
		log:   log,
	}
}

// FormLive handles GET /api/forms/{id}/live
func (h *Handler) FormLive(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["id"]

	if _, err := h.forms.GetByID(r.Context(), formID); err != nil {
		http.Error(w, "form not found", http.StatusNotFound)
		return
	}

	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", "formId", formID, "error", err)
		return
	}

	conn := NewConnection(formID)
	hello, _ := json.Marshal(&Message{
		Type:    MsgSubscribed,
		Payload: json.RawMessage(`{"formId":` + quote(formID) + `}`),
	})
	conn.Send <- hello
	h.hub.Register(conn)

	go h.writePump(wsConn, conn)
	go h.readPump(wsConn, conn)
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
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
		if _, _, err := wsConn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Warn("websocket read error", "formId", conn.FormID, "error", err)
			}
			break
		}
		// Subscribers are read-only; incoming frames are ignored
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
				wsConn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := wsConn.WriteMessage(websocket.TextMessage, message); err != nil {
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
