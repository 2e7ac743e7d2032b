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

// CategoryRepository performs document operations on the categories
// collection.
type CategoryRepository struct {
	coll *mongo.Collection
	log  *zerolog.Logger
}

// NewCategoryRepository constructs a CategoryRepository over the shared
// client.
func NewCategoryRepository(s *server.Server) *CategoryRepository {
	return &CategoryRepository{
		coll: s.DB.Categories(),
		log:  s.Logger,
	}
}

// FindByUser returns all categories owned by a user.
func (r *CategoryRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]model.Category, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"user": userID})
	if err != nil {
		return nil, err
	}

	categories := make([]model.Category, 0)
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Insert stores a new category, assigning its id and timestamps. The
// owning user reference must already be set by the caller.
func (r *CategoryRepository) Insert(ctx context.Context, category *model.Category) error {
	now := time.Now().UTC()
	category.ID = primitive.NewObjectID()
	category.CreatedAt = now
	category.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, category)
	return err
}

// FindByID resolves a category by id regardless of owner. Blog
// operations use this for the existence leg of the ownership chain;
// the owner-scoped lookup is FindOwned.
func (r *CategoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Category, error) {
	var category model.Category
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&category); err != nil {
		return nil, err
	}
	return &category, nil
}

// FindOwned resolves a category by id scoped to its owning user. A
// category that exists under a different owner is indistinguishable
// from an absent one: both return mongo.ErrNoDocuments.
func (r *CategoryRepository) FindOwned(ctx context.Context, id, userID primitive.ObjectID) (*model.Category, error) {
	filter := bson.M{"_id": id, "user": userID}

	var category model.Category
	if err := r.coll.FindOne(ctx, filter).Decode(&category); err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateTitle retitles a category and returns the updated document.
func (r *CategoryRepository) UpdateTitle(ctx context.Context, id primitive.ObjectID, title string) (*model.Category, error) {
	update := bson.M{"$set": bson.M{
		"title":     title,
		"updatedAt": time.Now().UTC(),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var category model.Category
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&category); err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteByID removes a category. Blogs referencing it are left in
// place; there is no cascading delete.
func (r *CategoryRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
