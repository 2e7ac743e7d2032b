// Package model defines the documents persisted in MongoDB.
//
// Three collections, three types. Relationships are by reference only:
// a Category carries its owning user's id, a Blog carries both its
// owning user's and category's ids. The store enforces no referential
// integrity; the service layer re-checks parents on every write.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a registered author. Usernames are not unique; identity is
// the ObjectID alone.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username  string             `bson:"username" json:"username"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Category groups a user's blogs. Every category belongs to exactly
// one user.
type Category struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Blog is a post owned by a user within a category.
//
// CreatedAt is assigned at insert and never changes; listings sort and
// range-filter on it.
type Blog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	User        primitive.ObjectID `bson:"user" json:"user"`
	Category    primitive.ObjectID `bson:"category" json:"category"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
