package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ChatSender string

const (
	ChatSenderUser  ChatSender = "user"
	ChatSenderAdmin ChatSender = "admin"
)

// SupportChat is the per-user conversation head, keyed by the owning user.
// The two unread flags are one-sided: admin_has_unread is set by user
// messages and cleared when an admin opens the chat, and vice versa.
type SupportChat struct {
	ID             primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID         primitive.ObjectID `json:"user_id" bson:"user_id"`
	UserEmail      string             `json:"user_email" bson:"user_email"`
	LastMessage    string             `json:"last_message" bson:"last_message"`
	LastUpdated    time.Time          `json:"last_updated" bson:"last_updated"`
	UserHasUnread  bool               `json:"user_has_unread" bson:"user_has_unread"`
	AdminHasUnread bool               `json:"admin_has_unread" bson:"admin_has_unread"`
}

type ChatMessage struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"user_id" bson:"user_id"`
	Sender    ChatSender         `json:"sender" bson:"sender"`
	Text      string             `json:"text" bson:"text"`
	Timestamp time.Time          `json:"timestamp" bson:"timestamp"`
}
