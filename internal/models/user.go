package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserInfo is the best-effort geolocation snapshot captured on first login.
type UserInfo struct {
	IP      string `json:"ip" bson:"ip"`
	Country string `json:"country" bson:"country"`
}

type User struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email        string             `json:"email" bson:"email"`
	PasswordHash string             `json:"-" bson:"password_hash"`
	Balance      float64            `json:"balance" bson:"balance"`
	IsBanned     bool               `json:"is_banned" bson:"is_banned"`
	IsAdmin      bool               `json:"is_admin" bson:"is_admin"`
	ReferralCode string             `json:"referral_code" bson:"referral_code"`
	ReferredBy   primitive.ObjectID `json:"referred_by,omitempty" bson:"referred_by,omitempty"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	LastLogin    time.Time          `json:"last_login" bson:"last_login"`
	UserInfo     *UserInfo          `json:"user_info,omitempty" bson:"user_info,omitempty"`
}
