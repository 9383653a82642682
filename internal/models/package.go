package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Package is a fixed-return investment product definition.
type Package struct {
	ID                 primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title              string             `json:"title" bson:"title"`
	Description        string             `json:"description,omitempty" bson:"description,omitempty"`
	MinDeposit         float64            `json:"min_deposit" bson:"min_deposit"`
	MaxDeposit         float64            `json:"max_deposit" bson:"max_deposit"`
	DailyReturnPercent float64            `json:"daily_return_percent" bson:"daily_return_percent"`
	DurationDays       int                `json:"duration_days" bson:"duration_days"`
	Visible            bool               `json:"visible" bson:"visible"`
	CreatedAt          time.Time          `json:"created_at" bson:"created_at"`
}
