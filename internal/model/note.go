package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Note represents a single text note owned by a user.
type Note struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Content   string             `json:"content" bson:"content"`
	Important bool               `json:"important" bson:"important"`
	UserID    primitive.ObjectID `json:"user" bson:"user"`
	CreatedAt time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updated_at"`
}

// NoteUpdate carries the mutable note fields for partial updates; nil fields
// are left unchanged.
type NoteUpdate struct {
	Content   *string
	Important *bool
}
