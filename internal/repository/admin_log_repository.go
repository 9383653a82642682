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

type AdminLogRepository interface {
	SaveLog(log *models.AdminLog) error
	GetAllLogs(page, limit int) ([]*models.AdminLog, error)
	GetLogsByAdminID(adminID primitive.ObjectID, page, limit int) ([]*models.AdminLog, error)
}

type MongoAdminLogRepository struct {
	collection *mongo.Collection
}

func NewAdminLogRepository(client *mongo.Client, dbName, collectionName string) AdminLogRepository {
	collection := client.Database(dbName).Collection(collectionName)
	return &MongoAdminLogRepository{collection: collection}
}

func (r *MongoAdminLogRepository) SaveLog(log *models.AdminLog) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	log.ID = primitive.NewObjectID()
	log.Timestamp = time.Now()
	_, err := r.collection.InsertOne(ctx, log)
	return err
}

func (r *MongoAdminLogRepository) GetAllLogs(page, limit int) ([]*models.AdminLog, error) {
	return r.find(bson.M{}, page, limit)
}

func (r *MongoAdminLogRepository) GetLogsByAdminID(adminID primitive.ObjectID, page, limit int) ([]*models.AdminLog, error) {
	return r.find(bson.M{"admin_id": adminID}, page, limit)
}

func (r *MongoAdminLogRepository) find(filter bson.M, page, limit int) ([]*models.AdminLog, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	skip := (page - 1) * limit
	findOptions := options.Find().SetSort(bson.M{"timestamp": -1}).SetSkip(int64(skip)).SetLimit(int64(limit))
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []*models.AdminLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
