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

type TestimonialRepository interface {
	SaveTestimonial(testimonial *models.Testimonial) error
	GetTestimonialByID(id primitive.ObjectID) (*models.Testimonial, error)
	GetVisibleTestimonials(limit int64) ([]*models.Testimonial, error)
	GetAllTestimonials() ([]*models.Testimonial, error)
	UpdateTestimonial(id primitive.ObjectID, testimonial *models.Testimonial) error
	DeleteTestimonial(id primitive.ObjectID) error
}

type MongoTestimonialRepository struct {
	collection *mongo.Collection
}

func NewTestimonialRepository(client *mongo.Client, dbName, collectionName string) TestimonialRepository {
	collection := client.Database(dbName).Collection(collectionName)
	return &MongoTestimonialRepository{collection: collection}
}

func (r *MongoTestimonialRepository) SaveTestimonial(testimonial *models.Testimonial) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	testimonial.ID = primitive.NewObjectID()
	testimonial.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, testimonial)
	return err
}

func (r *MongoTestimonialRepository) GetTestimonialByID(id primitive.ObjectID) (*models.Testimonial, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var testimonial models.Testimonial
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&testimonial)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &testimonial, nil
}

func (r *MongoTestimonialRepository) GetVisibleTestimonials(limit int64) ([]*models.Testimonial, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.M{"created_at": 1})
	if limit > 0 {
		findOptions.SetLimit(limit)
	}

	var testimonials []*models.Testimonial
	cursor, err := r.collection.Find(ctx, bson.M{"visible": true}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, &testimonials); err != nil {
		return nil, err
	}
	return testimonials, nil
}

func (r *MongoTestimonialRepository) GetAllTestimonials() ([]*models.Testimonial, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var testimonials []*models.Testimonial
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"created_at": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, &testimonials); err != nil {
		return nil, err
	}
	return testimonials, nil
}

func (r *MongoTestimonialRepository) UpdateTestimonial(id primitive.ObjectID, testimonial *models.Testimonial) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"name":    testimonial.Name,
			"country": testimonial.Country,
			"text":    testimonial.Text,
			"rating":  testimonial.Rating,
			"visible": testimonial.Visible,
		},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update testimonial: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("no testimonial found with ID: %s", id.Hex())
	}
	return nil
}

func (r *MongoTestimonialRepository) DeleteTestimonial(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("no testimonial found with ID: %s", id.Hex())
	}
	return nil
}
