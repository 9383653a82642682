package models

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Client is a websocket subscriber. Topics are "prices" for the ticker
// stream and "chat:<user_id>" for a support conversation.
type Client struct {
	ID       string
	Conn     *websocket.Conn
	Send     chan interface{}
	Topics   map[string]bool
	TopicsMu sync.RWMutex

	// Identity resolved from the connection token; used to authorize
	// chat-room subscriptions.
	UserID  string
	IsAdmin bool
}

func NewClient(id string, conn *websocket.Conn) *Client {
	return &Client{
		ID:     id,
		Conn:   conn,
		Send:   make(chan interface{}, 256),
		Topics: make(map[string]bool),
	}
}

func (c *Client) Subscribe(topic string) {
	c.TopicsMu.Lock()
	c.Topics[topic] = true
	c.TopicsMu.Unlock()
}

func (c *Client) Unsubscribe(topic string) {
	c.TopicsMu.Lock()
	delete(c.Topics, topic)
	c.TopicsMu.Unlock()
}

func (c *Client) TopicList() []string {
	c.TopicsMu.RLock()
	defer c.TopicsMu.RUnlock()
	topics := make([]string, 0, len(c.Topics))
	for topic := range c.Topics {
		topics = append(topics, topic)
	}
	return topics
}

func (c *Client) IsSubscribed(topic string) bool {
	c.TopicsMu.RLock()
	defer c.TopicsMu.RUnlock()
	return c.Topics[topic]
}

func (c *Client) Close() {
	c.Conn.Close()
}

type SocketMessage struct {
	Action string `json:"action"`
	Topic  string `json:"topic"`
}

type SubscriptionResponse struct {
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Topics  []string `json:"topics,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
