package notify

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Hub tracks connected clients per user and fans messages out to them.
// A user with no connected sessions simply receives nothing.
type Hub struct {
	clients     map[*Client]bool
	userClients map[uuid.UUID][]*Client
	register    chan *Client
	unregister  chan *Client
	done        chan struct{}
	mu          sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:     make(map[*Client]bool),
		userClients: make(map[uuid.UUID][]*Client),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		done:        make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.userClients[client.userID] = append(h.userClients[client.userID], client)
			h.mu.Unlock()
			slog.Debug("websocket client registered", "user_id", client.userID)
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.removeUserClient(client)
			}
			h.mu.Unlock()
			slog.Debug("websocket client disconnected", "user_id", client.userID)
		case <-h.done:
			h.mu.Lock()
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			h.userClients = make(map[uuid.UUID][]*Client)
			h.mu.Unlock()
			return
		}
	}
}

func (h *Hub) Stop() {
	close(h.done)
}

// Emit pushes an event to all of the user's connected sessions.
// Best-effort: a slow or absent session is never an error.
func (h *Hub) Emit(userID uuid.UUID, event string, payload any) {
	envelope := Envelope{
		Type:      event,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}

	messageBytes, err := json.Marshal(envelope)
	if err != nil {
		slog.Error("failed to marshal websocket envelope", "event", event, "error", err.Error())
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.userClients[userID] {
		select {
		case client.send <- messageBytes:
		default:
			// Slow consumer; drop the message rather than block the caller.
			slog.Warn("dropping websocket message for slow client", "user_id", userID, "event", event)
		}
	}
}

// caller must hold h.mu
func (h *Hub) removeUserClient(client *Client) {
	clients := h.userClients[client.userID]
	for i, c := range clients {
		if c == client {
			h.userClients[client.userID] = append(clients[:i], clients[i+1:]...)
			break
		}
	}
	if len(h.userClients[client.userID]) == 0 {
		delete(h.userClients, client.userID)
	}
}
