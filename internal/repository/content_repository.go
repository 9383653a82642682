package repository

import (
	"context"
	"time"

	"github.com/roobux/backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	contentDocMain      = "main"
	contentDocTheme     = "theme"
	contentDocReferrals = "referrals"
	statusDocMain       = "main"
)

// ContentRepository holds the site_content and site_status singletons. Each
// document is keyed by a fixed _id string; writes merge fields like the
// original set(..., {merge:true}) calls.
type ContentRepository interface {
	GetSiteContent() (*models.SiteContent, error)
	SetSiteContent(content *models.SiteContent) error
	GetThemeSettings() (*models.ThemeSettings, error)
	SetThemeSettings(theme *models.ThemeSettings) error
	GetReferralSettings() (*models.ReferralSettings, error)
	SetReferralSettings(settings *models.ReferralSettings) error
	GetSiteStatus() (*models.SiteStatus, error)
	SetSiteStatus(status *models.SiteStatus) error
	Collection() *mongo.Collection
}

type MongoContentRepository struct {
	content *mongo.Collection
	status  *mongo.Collection
}

func NewContentRepository(client *mongo.Client, dbName, contentCollection, statusCollection string) ContentRepository {
	db := client.Database(dbName)
	return &MongoContentRepository{
		content: db.Collection(contentCollection),
		status:  db.Collection(statusCollection),
	}
}

func (r *MongoContentRepository) Collection() *mongo.Collection {
	return r.content
}

func getSingleton(collection *mongo.Collection, id string, out interface{}) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := collection.FindOne(ctx, bson.M{"_id": id}).Decode(out)
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func setSingleton(collection *mongo.Collection, id string, doc interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": doc}, options.Update().SetUpsert(true))
	return err
}

func (r *MongoContentRepository) GetSiteContent() (*models.SiteContent, error) {
	var content models.SiteContent
	found, err := getSingleton(r.content, contentDocMain, &content)
	if err != nil || !found {
		return nil, err
	}
	return &content, nil
}

func (r *MongoContentRepository) SetSiteContent(content *models.SiteContent) error {
	return setSingleton(r.content, contentDocMain, content)
}

func (r *MongoContentRepository) GetThemeSettings() (*models.ThemeSettings, error) {
	var theme models.ThemeSettings
	found, err := getSingleton(r.content, contentDocTheme, &theme)
	if err != nil || !found {
		return nil, err
	}
	return &theme, nil
}

func (r *MongoContentRepository) SetThemeSettings(theme *models.ThemeSettings) error {
	return setSingleton(r.content, contentDocTheme, theme)
}

func (r *MongoContentRepository) GetReferralSettings() (*models.ReferralSettings, error) {
	var settings models.ReferralSettings
	found, err := getSingleton(r.content, contentDocReferrals, &settings)
	if err != nil || !found {
		return nil, err
	}
	return &settings, nil
}

func (r *MongoContentRepository) SetReferralSettings(settings *models.ReferralSettings) error {
	return setSingleton(r.content, contentDocReferrals, settings)
}

func (r *MongoContentRepository) GetSiteStatus() (*models.SiteStatus, error) {
	var status models.SiteStatus
	found, err := getSingleton(r.status, statusDocMain, &status)
	if err != nil || !found {
		return nil, err
	}
	return &status, nil
}

func (r *MongoContentRepository) SetSiteStatus(status *models.SiteStatus) error {
	return setSingleton(r.status, statusDocMain, status)
}
