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

type WithdrawalRepository interface {
	SaveWithdrawal(withdrawal *models.Withdrawal) error
	GetWithdrawalByID(id primitive.ObjectID) (*models.Withdrawal, error)
	GetWithdrawalsByUserID(userID primitive.ObjectID) ([]*models.Withdrawal, error)
	GetAllWithdrawals() ([]*models.Withdrawal, error)
	CountByStatus(status models.RequestStatus) (int64, error)
	Collection() *mongo.Collection
}

type MongoWithdrawalRepository struct {
	collection *mongo.Collection
}

func NewWithdrawalRepository(client *mongo.Client, dbName, collectionName string) WithdrawalRepository {
	collection := client.Database(dbName).Collection(collectionName)
	return &MongoWithdrawalRepository{collection: collection}
}

func (r *MongoWithdrawalRepository) Collection() *mongo.Collection {
	return r.collection
}

func (r *MongoWithdrawalRepository) SaveWithdrawal(withdrawal *models.Withdrawal) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	withdrawal.ID = primitive.NewObjectID()
	withdrawal.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, withdrawal)
	return err
}

func (r *MongoWithdrawalRepository) GetWithdrawalByID(id primitive.ObjectID) (*models.Withdrawal, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var withdrawal models.Withdrawal
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&withdrawal)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &withdrawal, nil
}

func (r *MongoWithdrawalRepository) GetWithdrawalsByUserID(userID primitive.ObjectID) ([]*models.Withdrawal, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var withdrawals []*models.Withdrawal
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, &withdrawals); err != nil {
		return nil, err
	}
	return withdrawals, nil
}

func (r *MongoWithdrawalRepository) GetAllWithdrawals() ([]*models.Withdrawal, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var withdrawals []*models.Withdrawal
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, &withdrawals); err != nil {
		return nil, err
	}
	return withdrawals, nil
}

func (r *MongoWithdrawalRepository) CountByStatus(status models.RequestStatus) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return r.collection.CountDocuments(ctx, bson.M{"status": status})
}
