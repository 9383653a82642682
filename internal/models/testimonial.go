package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Testimonial struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Country   string             `json:"country" bson:"country"`
	Text      string             `json:"text" bson:"text"`
	Rating    int                `json:"rating" bson:"rating"`
	Visible   bool               `json:"visible" bson:"visible"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}
