package repository

import (
	"context"
	"time"

	"github.com/roobux/backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ChatRepository covers both the per-user conversation heads (support_chats)
// and the flat message log (chat_messages, keyed by the owning user).
type ChatRepository interface {
	GetChatByUserID(userID primitive.ObjectID) (*models.SupportChat, error)
	GetAllChats() ([]*models.SupportChat, error)
	UpsertChat(chat *models.SupportChat, markUnread models.ChatSender) error
	SetUnread(userID primitive.ObjectID, side models.ChatSender, unread bool) error
	SaveMessage(message *models.ChatMessage) error
	GetMessagesByUserID(userID primitive.ObjectID) ([]*models.ChatMessage, error)
}

type MongoChatRepository struct {
	chats    *mongo.Collection
	messages *mongo.Collection
}

func NewChatRepository(client *mongo.Client, dbName, chatCollection, messageCollection string) ChatRepository {
	db := client.Database(dbName)
	return &MongoChatRepository{
		chats:    db.Collection(chatCollection),
		messages: db.Collection(messageCollection),
	}
}

func (r *MongoChatRepository) GetChatByUserID(userID primitive.ObjectID) (*models.SupportChat, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var chat models.SupportChat
	err := r.chats.FindOne(ctx, bson.M{"user_id": userID}).Decode(&chat)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &chat, nil
}

func (r *MongoChatRepository) GetAllChats() ([]*models.SupportChat, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var chats []*models.SupportChat
	cursor, err := r.chats.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"last_updated": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, &chats); err != nil {
		return nil, err
	}
	return chats, nil
}

// UpsertChat refreshes the conversation head and flags the markUnread side.
// Only that side's flag is written; the sender's own unread state is left
// alone so replying does not dismiss messages the sender has not read.
func (r *MongoChatRepository) UpsertChat(chat *models.SupportChat, markUnread models.ChatSender) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	unreadField := "user_has_unread"
	if markUnread == models.ChatSenderAdmin {
		unreadField = "admin_has_unread"
	}
	update := bson.M{
		"$set": bson.M{
			"user_email":   chat.UserEmail,
			"last_message": chat.LastMessage,
			"last_updated": chat.LastUpdated,
			unreadField:    true,
		},
	}
	_, err := r.chats.UpdateOne(ctx, bson.M{"user_id": chat.UserID}, update, options.Update().SetUpsert(true))
	return err
}

func (r *MongoChatRepository) SetUnread(userID primitive.ObjectID, side models.ChatSender, unread bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	field := "user_has_unread"
	if side == models.ChatSenderAdmin {
		field = "admin_has_unread"
	}
	_, err := r.chats.UpdateOne(ctx, bson.M{"user_id": userID}, bson.M{"$set": bson.M{field: unread}})
	return err
}

func (r *MongoChatRepository) SaveMessage(message *models.ChatMessage) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	message.ID = primitive.NewObjectID()
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now()
	}
	_, err := r.messages.InsertOne(ctx, message)
	return err
}

func (r *MongoChatRepository) GetMessagesByUserID(userID primitive.ObjectID) ([]*models.ChatMessage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var messages []*models.ChatMessage
	cursor, err := r.messages.Find(ctx, bson.M{"user_id": userID}, options.Find().SetSort(bson.M{"timestamp": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
