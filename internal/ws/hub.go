package ws

import (
	"sync"

	"github.com/roobux/backend/internal/models"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

type broadcastMessage struct {
	topic   string
	payload interface{}
}

// Hub tracks websocket clients and fans payloads out by topic. Topics are
// "prices" and "chat:<user_id>".
type Hub struct {
	clients map[string]*models.Client

	register chan *models.Client

	unregister chan *models.Client

	broadcast chan broadcastMessage

	mu sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*models.Client),
		register:   make(chan *models.Client),
		unregister: make(chan *models.Client),
		broadcast:  make(chan broadcastMessage, 64),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				client.Close()
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			for _, client := range h.clients {
				if client.IsSubscribed(msg.topic) {
					select {
					case client.Send <- msg.payload:
					default:
						logrus.WithField("client", client.ID).Warn("client buffer full, skipping message")
					}
				}
			}
			h.mu.RUnlock()
		}
	}
}

func (h *Hub) RegisterClient(conn *websocket.Conn, userID string, isAdmin bool) *models.Client {
	client := models.NewClient(uuid.New().String(), conn)
	client.UserID = userID
	client.IsAdmin = isAdmin
	h.register <- client
	return client
}

func (h *Hub) UnregisterClient(client *models.Client) {
	h.unregister <- client
}

// Broadcast sends payload to every client subscribed to topic.
func (h *Hub) Broadcast(topic string, payload interface{}) {
	h.broadcast <- broadcastMessage{topic: topic, payload: payload}
}

func (h *Hub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
