// Package service contains the business logic.
//
// It sits between the handler and repository layers: handlers deliver
// validated input, services enforce the ownership chain (user, then
// category, then blog) before any mutation or disclosure, and
// repositories run the single store operation per request.
//
// Error policy: an absent referenced entity is a 404 regardless of the
// operation. An entity owned by a different user is reported identically to
// an absent one. Unexpected store failures become 500s whose message
// names the failing operation and embeds the driver detail.
package service

import (
	"context"

	"github.com/rakhadavedra/blogstack/internal/dberr"
	"github.com/rakhadavedra/blogstack/internal/errs"
	"github.com/rakhadavedra/blogstack/internal/model"
	"github.com/rakhadavedra/blogstack/internal/repository"
	"github.com/rakhadavedra/blogstack/internal/server"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Services is a container that groups all business services.
type Services struct {
	Users      *UserService
	Categories *CategoryService
	Blogs      *BlogService
}

// NewServices constructs the service container over the repositories.
func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Users:      NewUserService(s, repos.Users),
		Categories: NewCategoryService(s, repos.Users, repos.Categories),
		Blogs:      NewBlogService(s, repos.Users, repos.Categories, repos.Blogs),
	}
}

// resolveUser is the first link of every ownership chain: the
// referenced user must exist before anything else is looked at.
func resolveUser(ctx context.Context, users UserStore, id primitive.ObjectID) (*model.User, error) {
	user, err := users.FindByID(ctx, id)
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, errs.NewNotFoundError("User not found in the database", false, nil)
		}
		return nil, errs.NewOperationError("fetching user", err)
	}
	return user, nil
}

// resolveCategory is the second link for blog operations: the
// referenced category must exist. Ownership of the category itself is
// only enforced on category mutations.
func resolveCategory(ctx context.Context, categories CategoryStore, id primitive.ObjectID) (*model.Category, error) {
	category, err := categories.FindByID(ctx, id)
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, errs.NewNotFoundError("Category not found in the database", false, nil)
		}
		return nil, errs.NewOperationError("fetching category", err)
	}
	return category, nil
}
