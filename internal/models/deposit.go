package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

type Deposit struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"user_id" bson:"user_id"`
	UserEmail string             `json:"user_email" bson:"user_email"`
	Amount    float64            `json:"amount" bson:"amount"`
	PackageID primitive.ObjectID `json:"package_id,omitempty" bson:"package_id,omitempty"`
	TxHash    string             `json:"tx_hash,omitempty" bson:"tx_hash,omitempty"`
	ProofURL  string             `json:"proof_url,omitempty" bson:"proof_url,omitempty"`
	Status    RequestStatus      `json:"status" bson:"status"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`

	// Set on review.
	ApprovedAt *time.Time `json:"approved_at,omitempty" bson:"approved_at,omitempty"`
	RejectedAt *time.Time `json:"rejected_at,omitempty" bson:"rejected_at,omitempty"`
	AdminNotes string     `json:"admin_notes,omitempty" bson:"admin_notes,omitempty"`

	// Referral bonus actually paid to the referrer when this deposit was
	// approved; 0 when no bonus applied.
	BonusPaidToReferrer float64 `json:"bonus_paid_to_referrer" bson:"bonus_paid_to_referrer"`
}
