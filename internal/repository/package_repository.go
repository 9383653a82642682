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

type PackageRepository interface {
	SavePackage(pkg *models.Package) error
	GetPackageByID(id primitive.ObjectID) (*models.Package, error)
	GetVisiblePackages() ([]*models.Package, error)
	GetAllPackages() ([]*models.Package, error)
	UpdatePackage(id primitive.ObjectID, pkg *models.Package) error
	DeletePackage(id primitive.ObjectID) error
}

type MongoPackageRepository struct {
	collection *mongo.Collection
}

func NewPackageRepository(client *mongo.Client, dbName, collectionName string) PackageRepository {
	collection := client.Database(dbName).Collection(collectionName)
	return &MongoPackageRepository{collection: collection}
}

func (r *MongoPackageRepository) SavePackage(pkg *models.Package) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pkg.ID = primitive.NewObjectID()
	pkg.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, pkg)
	return err
}

func (r *MongoPackageRepository) GetPackageByID(id primitive.ObjectID) (*models.Package, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var pkg models.Package
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&pkg)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *MongoPackageRepository) GetVisiblePackages() ([]*models.Package, error) {
	return r.find(bson.M{"visible": true})
}

func (r *MongoPackageRepository) GetAllPackages() ([]*models.Package, error) {
	return r.find(bson.M{})
}

func (r *MongoPackageRepository) find(filter bson.M) ([]*models.Package, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var packages []*models.Package
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.M{"min_deposit": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, &packages); err != nil {
		return nil, err
	}
	return packages, nil
}

func (r *MongoPackageRepository) UpdatePackage(id primitive.ObjectID, pkg *models.Package) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"title":                pkg.Title,
			"description":          pkg.Description,
			"min_deposit":          pkg.MinDeposit,
			"max_deposit":          pkg.MaxDeposit,
			"daily_return_percent": pkg.DailyReturnPercent,
			"duration_days":        pkg.DurationDays,
			"visible":              pkg.Visible,
		},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update package: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("no package found with ID: %s", id.Hex())
	}
	return nil
}

func (r *MongoPackageRepository) DeletePackage(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("no package found with ID: %s", id.Hex())
	}
	return nil
}
