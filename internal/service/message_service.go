package service

import (
	"errors"
	"strings"
	"time"

	"github.com/roobux/backend/internal/models"
	"github.com/roobux/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MessageService interface {
	SubmitMessage(message *models.ContactMessage) error
	GetAllMessages() ([]*models.ContactMessage, error)
	MarkRead(id string) error
	DeleteMessage(id string) error
	DeleteReadMessages() (int64, error)
}

type messageService struct {
	messageRepo repository.MessageRepository
}

func NewMessageService(messageRepo repository.MessageRepository) MessageService {
	return &messageService{messageRepo: messageRepo}
}

func (s *messageService) SubmitMessage(message *models.ContactMessage) error {
	if strings.TrimSpace(message.Name) == "" || strings.TrimSpace(message.Message) == "" {
		return errors.New("name and message are required")
	}
	if !strings.Contains(message.Email, "@") {
		return errors.New("invalid email address")
	}
	message.Status = models.MessageStatusNew
	message.CreatedAt = time.Now().UTC()
	return s.messageRepo.SaveMessage(message)
}

func (s *messageService) GetAllMessages() ([]*models.ContactMessage, error) {
	return s.messageRepo.GetAllMessages()
}

func (s *messageService) MarkRead(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid message ID")
	}
	return s.messageRepo.MarkRead(objID)
}

func (s *messageService) DeleteMessage(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid message ID")
	}
	return s.messageRepo.DeleteMessage(objID)
}

func (s *messageService) DeleteReadMessages() (int64, error) {
	return s.messageRepo.DeleteReadMessages()
}
