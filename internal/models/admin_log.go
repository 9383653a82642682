package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminLog is an audit entry recorded for every privileged mutation.
type AdminLog struct {
	ID         primitive.ObjectID     `json:"_id,omitempty" bson:"_id,omitempty"`
	AdminID    primitive.ObjectID     `json:"admin_id,omitempty" bson:"admin_id,omitempty"`
	AdminEmail string                 `json:"admin_email" bson:"admin_email"`
	Action     string                 `json:"action" bson:"action"`
	Details    map[string]interface{} `json:"details,omitempty" bson:"details,omitempty"`
	IPAddress  string                 `json:"ip_address,omitempty" bson:"ip_address,omitempty"`
	Timestamp  time.Time              `json:"timestamp" bson:"timestamp"`
}
