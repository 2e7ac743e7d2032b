package service

import (
	"context"

	"github.com/rakhadavedra/blogstack/internal/model"
	"github.com/rakhadavedra/blogstack/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store interfaces consumed by the services and satisfied by the
// repository types. Services depend on these rather than the concrete
// repositories so the ownership-chain logic can be exercised against
// in-memory fakes.

// UserStore is the persistence surface for users.
type UserStore interface {
	Find(ctx context.Context) ([]model.User, error)
	Insert(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	UpdateUsername(ctx context.Context, id primitive.ObjectID, username string) (*model.User, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
}

// CategoryStore is the persistence surface for categories.
type CategoryStore interface {
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]model.Category, error)
	Insert(ctx context.Context, category *model.Category) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Category, error)
	FindOwned(ctx context.Context, id, userID primitive.ObjectID) (*model.Category, error)
	UpdateTitle(ctx context.Context, id primitive.ObjectID, title string) (*model.Category, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

// BlogStore is the persistence surface for blogs.
type BlogStore interface {
	Find(ctx context.Context, q repository.BlogQuery) ([]model.Blog, error)
	Insert(ctx context.Context, blog *model.Blog) error
	FindOwned(ctx context.Context, id, userID primitive.ObjectID) (*model.Blog, error)
	FindOwnedInCategory(ctx context.Context, id, userID, categoryID primitive.ObjectID) (*model.Blog, error)
	Update(ctx context.Context, id primitive.ObjectID, title, description string) (*model.Blog, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}
