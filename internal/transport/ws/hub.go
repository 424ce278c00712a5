package ws

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgResponseSubmitted MessageType = "response_submitted"
	MsgSubscribed        MessageType = "subscribed"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub fans form events out to live subscribers
type Hub struct {
	// formID -> subscribers
	subscribers map[string]map[*Connection]struct{}

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
	quit       chan struct{}

	log *slog.Logger
}

// Connection is one subscriber of a form's live feed
type Connection struct {
	FormID string
	Send   chan []byte
}

// NewConnection creates a connection with a buffered send queue
func NewConnection(formID string) *Connection {
	return &Connection{FormID: formID, Send: make(chan []byte, 256)}
}

// BroadcastMessage is a message for every subscriber of a form
type BroadcastMessage struct {
	FormID  string
	Message *Message
}

// NewHub creates a hub and starts its loop
func NewHub(log *slog.Logger) *Hub {
	h := &Hub{
		subscribers: make(map[string]map[*Connection]struct{}),
		register:    make(chan *Connection),
		unregister:  make(chan *Connection),
		broadcast:   make(chan *BroadcastMessage, 256),
		quit:        make(chan struct{}),
		log:         log.With("component", "ws_hub"),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.subscribers[conn.FormID] == nil {
				h.subscribers[conn.FormID] = make(map[*Connection]struct{})
			}
			h.subscribers[conn.FormID][conn] = struct{}{}
			h.mu.Unlock()
			h.log.Debug("subscriber connected", "formId", conn.FormID)

		case conn := <-h.unregister:
			h.mu.Lock()
			if subs, ok := h.subscribers[conn.FormID]; ok {
				if _, ok := subs[conn]; ok {
					delete(subs, conn)
					close(conn.Send)
					if len(subs) == 0 {
						delete(h.subscribers, conn.FormID)
					}
					h.log.Debug("subscriber disconnected", "formId", conn.FormID)
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			data, err := json.Marshal(msg.Message)
			if err != nil {
				h.log.Error("failed to encode message", "error", err)
				continue
			}
			h.mu.RLock()
			for conn := range h.subscribers[msg.FormID] {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()

		case <-h.quit:
			h.mu.Lock()
			for formID, subs := range h.subscribers {
				for conn := range subs {
					close(conn.Send)
				}
				delete(h.subscribers, formID)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	select {
	case h.register <- conn:
	case <-h.quit:
		close(conn.Send)
	}
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	select {
	case h.unregister <- conn:
	case <-h.quit:
	}
}

// Close disconnects every subscriber and stops the hub
func (h *Hub) Close() {
	close(h.quit)
}

// SubscriberCount returns the number of live subscribers of a form
func (h *Hub) SubscriberCount(formID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[formID])
}

// BroadcastToForm sends a message to every subscriber of formID (implements service.Broadcaster)
func (h *Hub) BroadcastToForm(formID string, msgType string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.log.Error("failed to encode payload", "type", msgType, "error", err)
		return
	}
	select {
	case h.broadcast <- &BroadcastMessage{
		FormID:  formID,
		Message: &Message{Type: MessageType(msgType), Payload: data},
	}:
	case <-h.quit:
	}
}
