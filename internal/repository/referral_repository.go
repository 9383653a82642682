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

type ReferralRepository interface {
	SaveReferral(referral *models.Referral) error
	GetReferralsByReferrerID(referrerID primitive.ObjectID) ([]*models.Referral, error)
	GetRecentReferrals(limit int64) ([]*models.Referral, error)
	Collection() *mongo.Collection
}

type MongoReferralRepository struct {
	collection *mongo.Collection
}

func NewReferralRepository(client *mongo.Client, dbName, collectionName string) ReferralRepository {
	collection := client.Database(dbName).Collection(collectionName)
	return &MongoReferralRepository{collection: collection}
}

func (r *MongoReferralRepository) Collection() *mongo.Collection {
	return r.collection
}

func (r *MongoReferralRepository) SaveReferral(referral *models.Referral) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	referral.ID = primitive.NewObjectID()
	referral.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, referral)
	return err
}

func (r *MongoReferralRepository) GetReferralsByReferrerID(referrerID primitive.ObjectID) ([]*models.Referral, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var referrals []*models.Referral
	cursor, err := r.collection.Find(ctx, bson.M{"referrer_id": referrerID}, options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, &referrals); err != nil {
		return nil, err
	}
	return referrals, nil
}

func (r *MongoReferralRepository) GetRecentReferrals(limit int64) ([]*models.Referral, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var referrals []*models.Referral
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"created_at": -1}).SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, &referrals); err != nil {
		return nil, err
	}
	return referrals, nil
}
