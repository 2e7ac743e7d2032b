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

// UserService implements the user operations. Users have no parent, so
// there is no ownership chain here beyond the target itself.
type UserService struct {
	users UserStore
	log   *zerolog.Logger
}

// NewUserService constructs a UserService.
func NewUserService(s *server.Server, users UserStore) *UserService {
	return &UserService{
		users: users,
		log:   s.Logger,
	}
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.users.Find(ctx)
	if err != nil {
		return nil, errs.NewOperationError("fetching users", err)
	}
	return users, nil
}

// Create inserts a new user. Usernames are not deduplicated; identity
// is the generated id.
func (s *UserService) Create(ctx context.Context, username string) (*model.User, error) {
	user := &model.User{Username: username}
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, errs.NewOperationError("creating user", err)
	}

	s.log.Info().Str("user_id", user.ID.Hex()).Msg("user created")
	return user, nil
}

// Rename changes a user's username and returns the updated user.
func (s *UserService) Rename(ctx context.Context, id primitive.ObjectID, newUsername string) (*model.User, error) {
	user, err := s.users.UpdateUsername(ctx, id, newUsername)
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, errs.NewNotFoundError("User not found in the database", false, nil)
		}
		return nil, errs.NewOperationError("updating user", err)
	}
	return user, nil
}

// Delete removes a user and returns the deleted document. Categories
// and blogs the user owned are left orphaned; cleanup is out of scope.
// Deleting an already-deleted user yields a 404, not a 500.
func (s *UserService) Delete(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	user, err := s.users.DeleteByID(ctx, id)
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, errs.NewNotFoundError("User not found in the database", false, nil)
		}
		return nil, errs.NewOperationError("deleting user", err)
	}

	s.log.Info().Str("user_id", id.Hex()).Msg("user deleted")
	return user, nil
}
