package repository

import (
	"context"
	"time"

	"github.com/rakhadavedra/blogstack/internal/model"
	"github.com/rakhadavedra/blogstack/internal/server"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserRepository performs document operations on the users collection.
type UserRepository struct {
	coll *mongo.Collection
	log  *zerolog.Logger
}

// NewUserRepository constructs a UserRepository over the shared client.
func NewUserRepository(s *server.Server) *UserRepository {
	return &UserRepository{
		coll: s.DB.Users(),
		log:  s.Logger,
	}
}

// Find returns all users.
func (r *UserRepository) Find(ctx context.Context) ([]model.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	users := make([]model.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Insert stores a new user, assigning its id and timestamps.
func (r *UserRepository) Insert(ctx context.Context, user *model.User) error {
	now := time.Now().UTC()
	user.ID = primitive.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, user)
	return err
}

// FindByID resolves a user by id. Returns mongo.ErrNoDocuments when
// absent.
func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	var user model.User
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUsername renames a user and returns the updated document.
// Returns mongo.ErrNoDocuments when the user does not exist.
func (r *UserRepository) UpdateUsername(ctx context.Context, id primitive.ObjectID, username string) (*model.User, error) {
	update := bson.M{"$set": bson.M{
		"username":  username,
		"updatedAt": time.Now().UTC(),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user model.User
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteByID removes a user and returns the deleted document. Returns
// mongo.ErrNoDocuments when nothing matched, which makes deleting an
// already-deleted user a not-found rather than a silent success.
//
// Owned categories and blogs are deliberately left in place; there is
// no cascading delete.
func (r *UserRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	var user model.User
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}
