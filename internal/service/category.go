package service

import (
	"context"

	"github.com/rakhadavedra/blogstack/internal/dberr"
	"github.com/rakhadavedra/blogstack/internal/errs"
	"github.com/rakhadavedra/blogstack/internal/model"
	"github.com/rakhadavedra/blogstack/internal/server"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CategoryService implements the category operations. Every operation
// resolves the owning user first; mutations additionally require the
// category to belong to that user.
type CategoryService struct {
	users      UserStore
	categories CategoryStore
	log        *zerolog.Logger
}

// NewCategoryService constructs a CategoryService.
func NewCategoryService(s *server.Server, users UserStore, categories CategoryStore) *CategoryService {
	return &CategoryService{
		users:      users,
		categories: categories,
		log:        s.Logger,
	}
}

// List returns the categories owned by a user.
func (s *CategoryService) List(ctx context.Context, userID primitive.ObjectID) ([]model.Category, error) {
	if _, err := resolveUser(ctx, s.users, userID); err != nil {
		return nil, err
	}

	categories, err := s.categories.FindByUser(ctx, userID)
	if err != nil {
		return nil, errs.NewOperationError("fetching categories", err)
	}
	return categories, nil
}

// Create inserts a new category owned by the user.
func (s *CategoryService) Create(ctx context.Context, userID primitive.ObjectID, title string) (*model.Category, error) {
	if _, err := resolveUser(ctx, s.users, userID); err != nil {
		return nil, err
	}

	category := &model.Category{
		Title: title,
		User:  userID,
	}
	if err := s.categories.Insert(ctx, category); err != nil {
		return nil, errs.NewOperationError("creating category", err)
	}

	s.log.Info().
		Str("category_id", category.ID.Hex()).
		Str("user_id", userID.Hex()).
		Msg("category created")
	return category, nil
}

// Update retitles a category after confirming the user exists and owns
// it. A category under a different owner reads as not found.
func (s *CategoryService) Update(ctx context.Context, userID, categoryID primitive.ObjectID, title string) (*model.Category, error) {
	if _, err := resolveUser(ctx, s.users, userID); err != nil {
		return nil, err
	}

	if _, err := s.categories.FindOwned(ctx, categoryID, userID); err != nil {
		if dberr.IsNotFound(err) {
			return nil, errs.NewNotFoundError("Category not found in the database", false, nil)
		}
		return nil, errs.NewOperationError("fetching category", err)
	}

	category, err := s.categories.UpdateTitle(ctx, categoryID, title)
	if err != nil {
		if dberr.IsNotFound(err) {
			// Deleted between the ownership check and the update; the
			// chain holds no locks, so the race reads as not found.
			return nil, errs.NewNotFoundError("Category not found in the database", false, nil)
		}
		return nil, errs.NewOperationError("updating category", err)
	}
	return category, nil
}

// Delete removes a category after the same user/ownership checks.
// Blogs referencing the category are left in place.
func (s *CategoryService) Delete(ctx context.Context, userID, categoryID primitive.ObjectID) error {
	if _, err := resolveUser(ctx, s.users, userID); err != nil {
		return err
	}

	if _, err := s.categories.FindOwned(ctx, categoryID, userID); err != nil {
		if dberr.IsNotFound(err) {
			return errs.NewNotFoundError("Category not found in the database", false, nil)
		}
		return errs.NewOperationError("fetching category", err)
	}

	if err := s.categories.DeleteByID(ctx, categoryID); err != nil {
		if dberr.IsNotFound(err) {
			return errs.NewNotFoundError("Category not found in the database", false, nil)
		}
		return errs.NewOperationError("deleting category", err)
	}

	s.log.Info().
		Str("category_id", categoryID.Hex()).
		Str("user_id", userID.Hex()).
		Msg("category deleted")
	return nil
}
