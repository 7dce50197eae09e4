package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered account that can own notes.
type User struct {
	ID           primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Username     string               `json:"username" bson:"username"`
	Name         string               `json:"name,omitempty" bson:"name,omitempty"`
	PasswordHash string               `json:"-" bson:"password_hash"` // Never expose in JSON
	Notes        []primitive.ObjectID `json:"notes" bson:"notes"`
	CreatedAt    time.Time            `json:"createdAt" bson:"created_at"`
}
