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

type DepositRepository interface {
	SaveDeposit(deposit *models.Deposit) error
	GetDepositByID(id primitive.ObjectID) (*models.Deposit, error)
	GetDepositsByUserID(userID primitive.ObjectID) ([]*models.Deposit, error)
	GetAllDeposits() ([]*models.Deposit, error)
	CountByStatus(status models.RequestStatus) (int64, error)
	SumApprovedAmount() (float64, error)
	Collection() *mongo.Collection
}

type MongoDepositRepository struct {
	collection *mongo.Collection
}

func NewDepositRepository(client *mongo.Client, dbName, collectionName string) DepositRepository {
	collection := client.Database(dbName).Collection(collectionName)
	return &MongoDepositRepository{collection: collection}
}

func (r *MongoDepositRepository) Collection() *mongo.Collection {
	return r.collection
}

func (r *MongoDepositRepository) SaveDeposit(deposit *models.Deposit) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	deposit.ID = primitive.NewObjectID()
	deposit.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, deposit)
	return err
}

func (r *MongoDepositRepository) GetDepositByID(id primitive.ObjectID) (*models.Deposit, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var deposit models.Deposit
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&deposit)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &deposit, nil
}

func (r *MongoDepositRepository) GetDepositsByUserID(userID primitive.ObjectID) ([]*models.Deposit, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var deposits []*models.Deposit
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, &deposits); err != nil {
		return nil, err
	}
	return deposits, nil
}

func (r *MongoDepositRepository) GetAllDeposits() ([]*models.Deposit, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var deposits []*models.Deposit
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, &deposits); err != nil {
		return nil, err
	}
	return deposits, nil
}

func (r *MongoDepositRepository) CountByStatus(status models.RequestStatus) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return r.collection.CountDocuments(ctx, bson.M{"status": status})
}

func (r *MongoDepositRepository) SumApprovedAmount() (float64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": models.RequestStatusApproved}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$amount"}}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}
