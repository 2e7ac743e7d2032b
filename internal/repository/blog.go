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

// BlogRepository performs document operations on the blogs collection.
//
// Every single-blog read, update, or delete goes through a filter that
// requires the stored owning-user reference to match, so one user can
// never touch another's blog even with a correct blog id.
type BlogRepository struct {
	coll *mongo.Collection
	log  *zerolog.Logger
}

// NewBlogRepository constructs a BlogRepository over the shared client.
func NewBlogRepository(s *server.Server) *BlogRepository {
	return &BlogRepository{
		coll: s.DB.Blogs(),
		log:  s.Logger,
	}
}

// Find returns the blogs matching q, sorted and paginated per its
// options.
func (r *BlogRepository) Find(ctx context.Context, q BlogQuery) ([]model.Blog, error) {
	cursor, err := r.coll.Find(ctx, q.Filter(), q.FindOptions())
	if err != nil {
		return nil, err
	}

	blogs := make([]model.Blog, 0)
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

// Insert stores a new blog, assigning its id and timestamps. The
// owning user and category references must already be set.
func (r *BlogRepository) Insert(ctx context.Context, blog *model.Blog) error {
	now := time.Now().UTC()
	blog.ID = primitive.NewObjectID()
	blog.CreatedAt = now
	blog.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, blog)
	return err
}

// FindOwned resolves a blog by id scoped to its owning user. A blog
// owned by someone else returns mongo.ErrNoDocuments, same as an
// absent one.
func (r *BlogRepository) FindOwned(ctx context.Context, id, userID primitive.ObjectID) (*model.Blog, error) {
	filter := bson.M{"_id": id, "user": userID}

	var blog model.Blog
	if err := r.coll.FindOne(ctx, filter).Decode(&blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

// FindOwnedInCategory resolves a blog by id scoped to both its owning
// user and category. Used by the single-blog GET, which carries both
// identifiers.
func (r *BlogRepository) FindOwnedInCategory(ctx context.Context, id, userID, categoryID primitive.ObjectID) (*model.Blog, error) {
	filter := bson.M{"_id": id, "user": userID, "category": categoryID}

	var blog model.Blog
	if err := r.coll.FindOne(ctx, filter).Decode(&blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

// Update replaces a blog's title and description and returns the
// updated document.
func (r *BlogRepository) Update(ctx context.Context, id primitive.ObjectID, title, description string) (*model.Blog, error) {
	update := bson.M{"$set": bson.M{
		"title":       title,
		"description": description,
		"updatedAt":   time.Now().UTC(),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var blog model.Blog
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

// DeleteByID removes a blog.
func (r *BlogRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
