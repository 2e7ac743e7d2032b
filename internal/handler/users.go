package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/rakhadavedra/blogstack/internal/model"
	"github.com/rakhadavedra/blogstack/internal/server"
	"github.com/rakhadavedra/blogstack/internal/service"
	"github.com/rakhadavedra/blogstack/internal/validation"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserHandler exposes the /users endpoints.
type UserHandler struct {
	Handler
	users *service.UserService
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(s *server.Server, services *service.Services) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   services.Users,
	}
}

// ListUsersRequest carries no parameters.
type ListUsersRequest struct{}

func (r *ListUsersRequest) Validate() error { return nil }

// CreateUserRequest is the POST /users body.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=1,max=64"`
}

func (r *CreateUserRequest) Validate() error { return validation.Struct(r) }

// UpdateUserRequest is the PATCH /users body. The target user id
// travels in the body, not the path, for compatibility with existing
// clients.
type UpdateUserRequest struct {
	UserID      string `json:"userId" validate:"required,objectid"`
	NewUserName string `json:"newUserName" validate:"required,min=1,max=64"`
}

func (r *UpdateUserRequest) Validate() error { return validation.Struct(r) }

// DeleteUserRequest carries the target user id as a query parameter.
type DeleteUserRequest struct {
	UserID string `query:"userId" validate:"required,objectid"`
}

func (r *DeleteUserRequest) Validate() error { return validation.Struct(r) }

// UserResponse pairs a message with the affected user.
type UserResponse struct {
	Message string      `json:"message"`
	User    *model.User `json:"user"`
}

// List handles GET /users.
func (h *UserHandler) List(c echo.Context, req *ListUsersRequest) ([]model.User, error) {
	return h.users.List(c.Request().Context())
}

// Create handles POST /users.
func (h *UserHandler) Create(c echo.Context, req *CreateUserRequest) (*UserResponse, error) {
	user, err := h.users.Create(c.Request().Context(), req.Username)
	if err != nil {
		return nil, err
	}

	return &UserResponse{Message: "User is created", User: user}, nil
}

// Update handles PATCH /users.
func (h *UserHandler) Update(c echo.Context, req *UpdateUserRequest) (*UserResponse, error) {
	// The id passed tag validation, so this cannot fail.
	id, _ := primitive.ObjectIDFromHex(req.UserID)

	user, err := h.users.Rename(c.Request().Context(), id, req.NewUserName)
	if err != nil {
		return nil, err
	}

	return &UserResponse{Message: "User is updated", User: user}, nil
}

// Delete handles DELETE /users, echoing the deleted user.
func (h *UserHandler) Delete(c echo.Context, req *DeleteUserRequest) (*UserResponse, error) {
	id, _ := primitive.ObjectIDFromHex(req.UserID)

	user, err := h.users.Delete(c.Request().Context(), id)
	if err != nil {
		return nil, err
	}

	return &UserResponse{Message: "User deleted successfully", User: user}, nil
}
