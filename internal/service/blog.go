package service

import (
	"context"

	"github.com/rakhadavedra/blogstack/internal/dberr"
	"github.com/rakhadavedra/blogstack/internal/errs"
	"github.com/rakhadavedra/blogstack/internal/model"
	"github.com/rakhadavedra/blogstack/internal/repository"
	"github.com/rakhadavedra/blogstack/internal/server"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogService implements the blog operations.
//
// Chain order is fixed: user first, then category (where required),
// then the blog itself through an owner-scoped filter. A blog that
// exists under a different owner or category is reported exactly like
// an absent one.
type BlogService struct {
	users      UserStore
	categories CategoryStore
	blogs      BlogStore
	log        *zerolog.Logger
}

// NewBlogService constructs a BlogService.
func NewBlogService(s *server.Server, users UserStore, categories CategoryStore, blogs BlogStore) *BlogService {
	return &BlogService{
		users:      users,
		categories: categories,
		blogs:      blogs,
		log:        s.Logger,
	}
}

// List returns the blogs matching q after confirming its user and
// category exist. Keyword, date-range, sort, and pagination semantics
// live in the query itself.
func (s *BlogService) List(ctx context.Context, q repository.BlogQuery) ([]model.Blog, error) {
	if _, err := resolveUser(ctx, s.users, q.User); err != nil {
		return nil, err
	}
	if _, err := resolveCategory(ctx, s.categories, q.Category); err != nil {
		return nil, err
	}

	blogs, err := s.blogs.Find(ctx, q)
	if err != nil {
		return nil, errs.NewOperationError("fetching blogs", err)
	}
	return blogs, nil
}

// Create inserts a new blog under the user and category after both are
// confirmed to exist.
func (s *BlogService) Create(ctx context.Context, userID, categoryID primitive.ObjectID, title, description string) (*model.Blog, error) {
	if _, err := resolveUser(ctx, s.users, userID); err != nil {
		return nil, err
	}
	if _, err := resolveCategory(ctx, s.categories, categoryID); err != nil {
		return nil, err
	}

	blog := &model.Blog{
		Title:       title,
		Description: description,
		User:        userID,
		Category:    categoryID,
	}
	if err := s.blogs.Insert(ctx, blog); err != nil {
		return nil, errs.NewOperationError("creating blog", err)
	}

	s.log.Info().
		Str("blog_id", blog.ID.Hex()).
		Str("user_id", userID.Hex()).
		Str("category_id", categoryID.Hex()).
		Msg("blog created")
	return blog, nil
}

// Get returns a single blog scoped to both its owning user and
// category.
func (s *BlogService) Get(ctx context.Context, blogID, userID, categoryID primitive.ObjectID) (*model.Blog, error) {
	if _, err := resolveUser(ctx, s.users, userID); err != nil {
		return nil, err
	}
	if _, err := resolveCategory(ctx, s.categories, categoryID); err != nil {
		return nil, err
	}

	blog, err := s.blogs.FindOwnedInCategory(ctx, blogID, userID, categoryID)
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, errs.NewNotFoundError("Blog not found in the database", false, nil)
		}
		return nil, errs.NewOperationError("fetching blog", err)
	}
	return blog, nil
}

// Update replaces a blog's title and description after confirming the
// user exists and the blog belongs to them.
func (s *BlogService) Update(ctx context.Context, blogID, userID primitive.ObjectID, title, description string) (*model.Blog, error) {
	if _, err := resolveUser(ctx, s.users, userID); err != nil {
		return nil, err
	}

	if _, err := s.blogs.FindOwned(ctx, blogID, userID); err != nil {
		if dberr.IsNotFound(err) {
			return nil, errs.NewNotFoundError("Blog not found in the database", false, nil)
		}
		return nil, errs.NewOperationError("fetching blog", err)
	}

	blog, err := s.blogs.Update(ctx, blogID, title, description)
	if err != nil {
		if dberr.IsNotFound(err) {
			// Lost a race with a concurrent delete; no locks are held
			// across the chain, so this reads as not found.
			return nil, errs.NewNotFoundError("Blog not found in the database", false, nil)
		}
		return nil, errs.NewOperationError("updating blog", err)
	}
	return blog, nil
}

// Delete removes a blog after the same user/ownership checks. Deleting
// an already-deleted blog yields a 404.
func (s *BlogService) Delete(ctx context.Context, blogID, userID primitive.ObjectID) error {
	if _, err := resolveUser(ctx, s.users, userID); err != nil {
		return err
	}

	if _, err := s.blogs.FindOwned(ctx, blogID, userID); err != nil {
		if dberr.IsNotFound(err) {
			return errs.NewNotFoundError("Blog not found in the database", false, nil)
		}
		return errs.NewOperationError("fetching blog", err)
	}

	if err := s.blogs.DeleteByID(ctx, blogID); err != nil {
		if dberr.IsNotFound(err) {
			return errs.NewNotFoundError("Blog not found in the database", false, nil)
		}
		return errs.NewOperationError("deleting blog", err)
	}

	s.log.Info().
		Str("blog_id", blogID.Hex()).
		Str("user_id", userID.Hex()).
		Msg("blog deleted")
	return nil
}
