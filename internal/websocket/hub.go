package websocket

import (
	"encoding/json"
	"log/slog"
	"sync"

	"CivicReportAPI/internal/constant"

	"github.com/google/uuid"
)

// Hub fans report mutations out to subscribed views. Admin connections are
// scoped to all reports, citizen connections only to reports they filed.
// Delivery is at-most-once: a client that drops must re-query after
// reconnecting.
type Hub struct {
	clients      map[*Client]bool
	userClients  map[uuid.UUID]map[*Client]bool
	adminClients map[*Client]bool
	Register     chan *Client
	Unregister   chan *Client

	mu sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:      make(map[*Client]bool),
		userClients:  make(map[uuid.UUID]map[*Client]bool),
		adminClients: make(map[*Client]bool),
		Register:     make(chan *Client),
		Unregister:   make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.clients[client] = true
			if _, ok := h.userClients[client.UserID]; !ok {
				h.userClients[client.UserID] = make(map[*Client]bool)
			}
			h.userClients[client.UserID][client] = true
			if client.Role == constant.RoleAdmin {
				h.adminClients[client] = true
			}
			h.mu.Unlock()

		case client := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				delete(h.adminClients, client)
				close(client.Send)

				if userSet, ok := h.userClients[client.UserID]; ok {
					delete(userSet, client)
					if len(userSet) == 0 {
						delete(h.userClients, client.UserID)
					}
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastReport delivers an event to every admin connection plus the
// reporter's own connections. Callers emit after the store commit, from the
// request goroutine, so two mutations of the same report reach subscribers in
// commit order.
func (h *Hub) BroadcastReport(event Event, reporterID uuid.UUID) {
	data, err := json.Marshal(event)
	if err != nil {
		slog.Error("Failed to marshal report event", "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.adminClients {
		h.send(client, data)
	}

	for client := range h.userClients[reporterID] {
		if client.Role == constant.RoleAdmin {
			continue
		}
		h.send(client, data)
	}
}

// send never blocks the broadcaster; a client that cannot keep up is dropped
// and recovers via reconnect + full re-query.
func (h *Hub) send(client *Client, data []byte) {
	select {
	case client.Send <- data:
	default:
		close(client.Send)
		delete(h.clients, client)
		delete(h.adminClients, client)
		if userSet, ok := h.userClients[client.UserID]; ok {
			delete(userSet, client)
		}
	}
}

func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
