package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/roobux/backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MessageRepository interface {
	SaveMessage(message *models.ContactMessage) error
	GetMessageByID(id primitive.ObjectID) (*models.ContactMessage, error)
	GetAllMessages() ([]*models.ContactMessage, error)
	MarkRead(id primitive.ObjectID) error
	DeleteMessage(id primitive.ObjectID) error
	DeleteReadMessages() (int64, error)
}

type MongoMessageRepository struct {
	collection *mongo.Collection
}

func NewMessageRepository(client *mongo.Client, dbName, collectionName string) MessageRepository {
	collection := client.Database(dbName).Collection(collectionName)
	return &MongoMessageRepository{collection: collection}
}

func (r *MongoMessageRepository) SaveMessage(message *models.ContactMessage) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	message.ID = primitive.NewObjectID()
	message.Status = models.MessageStatusNew
	message.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, message)
	return err
}

func (r *MongoMessageRepository) GetMessageByID(id primitive.ObjectID) (*models.ContactMessage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var message models.ContactMessage
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&message)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *MongoMessageRepository) GetAllMessages() ([]*models.ContactMessage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var messages []*models.ContactMessage
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *MongoMessageRepository) MarkRead(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": models.MessageStatusRead}})
	if err != nil {
		return fmt.Errorf("failed to mark message read: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("no message found with ID: %s", id.Hex())
	}
	return nil
}

func (r *MongoMessageRepository) DeleteMessage(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("no message found with ID: %s", id.Hex())
	}
	return nil
}

func (r *MongoMessageRepository) DeleteReadMessages() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := r.collection.DeleteMany(ctx, bson.M{"status": models.MessageStatusRead})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
