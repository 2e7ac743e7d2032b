package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/rakhadavedra/blogstack/internal/model"
	"github.com/rakhadavedra/blogstack/internal/server"
	"github.com/rakhadavedra/blogstack/internal/service"
	"github.com/rakhadavedra/blogstack/internal/validation"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CategoryHandler exposes the /categories endpoints. All of them are
// scoped to a user supplied as the userId query parameter.
type CategoryHandler struct {
	Handler
	categories *service.CategoryService
}

// NewCategoryHandler constructs a CategoryHandler.
func NewCategoryHandler(s *server.Server, services *service.Services) *CategoryHandler {
	return &CategoryHandler{
		Handler:    NewHandler(s),
		categories: services.Categories,
	}
}

// ListCategoriesRequest is the GET /categories query.
type ListCategoriesRequest struct {
	UserID string `query:"userId" validate:"required,objectid"`
}

func (r *ListCategoriesRequest) Validate() error { return validation.Struct(r) }

// CreateCategoryRequest combines the userId query parameter with the
// POST body.
type CreateCategoryRequest struct {
	UserID string `query:"userId" validate:"required,objectid"`
	Title  string `json:"title" validate:"required,min=1,max=128"`
}

func (r *CreateCategoryRequest) Validate() error { return validation.Struct(r) }

// UpdateCategoryRequest combines the path id, the userId query
// parameter, and the PATCH body.
type UpdateCategoryRequest struct {
	CategoryID string `param:"categoryId" validate:"required,objectid"`
	UserID     string `query:"userId" validate:"required,objectid"`
	Title      string `json:"title" validate:"required,min=1,max=128"`
}

func (r *UpdateCategoryRequest) Validate() error { return validation.Struct(r) }

// DeleteCategoryRequest identifies the category and its owner.
type DeleteCategoryRequest struct {
	CategoryID string `param:"categoryId" validate:"required,objectid"`
	UserID     string `query:"userId" validate:"required,objectid"`
}

func (r *DeleteCategoryRequest) Validate() error { return validation.Struct(r) }

// CategoryResponse pairs a message with the affected category.
type CategoryResponse struct {
	Message  string          `json:"message"`
	Category *model.Category `json:"category"`
}

// MessageResponse is the body for outcomes that only carry a message.
type MessageResponse struct {
	Message string `json:"message"`
}

// List handles GET /categories.
func (h *CategoryHandler) List(c echo.Context, req *ListCategoriesRequest) ([]model.Category, error) {
	userID, _ := primitive.ObjectIDFromHex(req.UserID)
	return h.categories.List(c.Request().Context(), userID)
}

// Create handles POST /categories.
func (h *CategoryHandler) Create(c echo.Context, req *CreateCategoryRequest) (*CategoryResponse, error) {
	userID, _ := primitive.ObjectIDFromHex(req.UserID)

	category, err := h.categories.Create(c.Request().Context(), userID, req.Title)
	if err != nil {
		return nil, err
	}

	return &CategoryResponse{Message: "Category is created", Category: category}, nil
}

// Update handles PATCH /categories/:categoryId.
func (h *CategoryHandler) Update(c echo.Context, req *UpdateCategoryRequest) (*CategoryResponse, error) {
	userID, _ := primitive.ObjectIDFromHex(req.UserID)
	categoryID, _ := primitive.ObjectIDFromHex(req.CategoryID)

	category, err := h.categories.Update(c.Request().Context(), userID, categoryID, req.Title)
	if err != nil {
		return nil, err
	}

	return &CategoryResponse{Message: "Category updated", Category: category}, nil
}

// Delete handles DELETE /categories/:categoryId.
func (h *CategoryHandler) Delete(c echo.Context, req *DeleteCategoryRequest) (*MessageResponse, error) {
	userID, _ := primitive.ObjectIDFromHex(req.UserID)
	categoryID, _ := primitive.ObjectIDFromHex(req.CategoryID)

	if err := h.categories.Delete(c.Request().Context(), userID, categoryID); err != nil {
		return nil, err
	}

	return &MessageResponse{Message: "Category successfully deleted"}, nil
}
