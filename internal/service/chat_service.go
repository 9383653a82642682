package service

import (
	"errors"
	"time"

	"github.com/roobux/backend/internal/models"
	"github.com/roobux/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrEmptyMessage = errors.New("message text is empty")

// ChatService runs the support conversations. Every persisted message is also
// broadcast to the chat's websocket room so open consoles update live.
type ChatService interface {
	GetHistory(userID string) ([]*models.ChatMessage, error)
	SendUserMessage(userID, text string) (*models.ChatMessage, error)
	SendAdminReply(userID, text string) (*models.ChatMessage, error)
	MarkRead(userID string, side models.ChatSender) error
	GetAllChats() ([]*models.SupportChat, error)
}

type chatService struct {
	chatRepo repository.ChatRepository
	userRepo repository.UserRepository
	hub      Broadcaster
}

func NewChatService(chatRepo repository.ChatRepository, userRepo repository.UserRepository, hub Broadcaster) ChatService {
	return &chatService{
		chatRepo: chatRepo,
		userRepo: userRepo,
		hub:      hub,
	}
}

// ChatTopic names the websocket room for one user's conversation.
func ChatTopic(userID string) string {
	return "chat:" + userID
}

func (s *chatService) GetHistory(userID string) ([]*models.ChatMessage, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}
	return s.chatRepo.GetMessagesByUserID(uid)
}

func (s *chatService) SendUserMessage(userID, text string) (*models.ChatMessage, error) {
	return s.send(userID, models.ChatSenderUser, text)
}

func (s *chatService) SendAdminReply(userID, text string) (*models.ChatMessage, error) {
	return s.send(userID, models.ChatSenderAdmin, text)
}

func (s *chatService) send(userID string, sender models.ChatSender, text string) (*models.ChatMessage, error) {
	if text == "" {
		return nil, ErrEmptyMessage
	}
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}
	user, err := s.userRepo.GetUserByID(uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	message := &models.ChatMessage{
		UserID:    uid,
		Sender:    sender,
		Text:      text,
		Timestamp: time.Now().UTC(),
	}
	if err := s.chatRepo.SaveMessage(message); err != nil {
		return nil, err
	}

	// A message flags only the recipient's side; the sender's own unread
	// state stays as it was.
	recipient := models.ChatSenderAdmin
	if sender == models.ChatSenderAdmin {
		recipient = models.ChatSenderUser
	}
	chat := &models.SupportChat{
		UserID:      uid,
		UserEmail:   user.Email,
		LastMessage: text,
		LastUpdated: message.Timestamp,
	}
	if err := s.chatRepo.UpsertChat(chat, recipient); err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.Broadcast(ChatTopic(userID), message)
	}
	return message, nil
}

// MarkRead clears the unread flag for the side that just opened the chat.
func (s *chatService) MarkRead(userID string, side models.ChatSender) error {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return errors.New("invalid user ID")
	}
	return s.chatRepo.SetUnread(uid, side, false)
}

func (s *chatService) GetAllChats() ([]*models.SupportChat, error) {
	return s.chatRepo.GetAllChats()
}
