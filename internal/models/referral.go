package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Referral is the immutable payout record appended when a referred user's
// first deposit is approved. At most one exists per referred user.
type Referral struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	ReferrerID    primitive.ObjectID `json:"referrer_id" bson:"referrer_id"`
	NewUserID     primitive.ObjectID `json:"new_user_id" bson:"new_user_id"`
	NewUserEmail  string             `json:"new_user_email" bson:"new_user_email"`
	DepositAmount float64            `json:"deposit_amount" bson:"deposit_amount"`
	BonusPaid     float64            `json:"bonus_paid" bson:"bonus_paid"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
}

// ReferralSettings lives in site_content/referrals.
type ReferralSettings struct {
	ReferrerPercent float64 `json:"referrer_percent" bson:"referrer_percent"`
	NewUserBonus    float64 `json:"new_user_bonus" bson:"new_user_bonus"`
}
