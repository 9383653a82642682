package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Withdrawal struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"user_id" bson:"user_id"`
	UserEmail string             `json:"user_email" bson:"user_email"`
	Amount    float64            `json:"amount" bson:"amount"`
	Address   string             `json:"address" bson:"address"`
	Notes     string             `json:"notes,omitempty" bson:"notes,omitempty"`
	Status    RequestStatus      `json:"status" bson:"status"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`

	ApprovedAt *time.Time `json:"approved_at,omitempty" bson:"approved_at,omitempty"`
	RejectedAt *time.Time `json:"rejected_at,omitempty" bson:"rejected_at,omitempty"`
	AdminNotes string     `json:"admin_notes,omitempty" bson:"admin_notes,omitempty"`
}
