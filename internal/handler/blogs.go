package handler

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rakhadavedra/blogstack/internal/model"
	"github.com/rakhadavedra/blogstack/internal/repository"
	"github.com/rakhadavedra/blogstack/internal/server"
	"github.com/rakhadavedra/blogstack/internal/service"
	"github.com/rakhadavedra/blogstack/internal/validation"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogHandler exposes the /blogs endpoints.
type BlogHandler struct {
	Handler
	blogs *service.BlogService
}

// NewBlogHandler constructs a BlogHandler.
func NewBlogHandler(s *server.Server, services *service.Services) *BlogHandler {
	return &BlogHandler{
		Handler: NewHandler(s),
		blogs:   services.Blogs,
	}
}

// ListBlogsRequest is the GET /blogs query. Ownership identifiers are
// mandatory; everything else is optional. Dates and pagination values
// bind as strings so that "absent" and "present but invalid" remain
// distinguishable: absent gets a default, invalid is a 400.
type ListBlogsRequest struct {
	UserID     string `query:"userId" validate:"required,objectid"`
	CategoryID string `query:"categoryId" validate:"required,objectid"`
	Keywords   string `query:"keywords"`
	StartDate  string `query:"startDate"`
	EndDate    string `query:"endDate"`
	SortOrder  string `query:"sortOrder"`
	Page       string `query:"page"`
	Limit      string `query:"limit"`
}

func (r *ListBlogsRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}

	var custom validation.CustomValidationErrors

	if r.StartDate != "" {
		if _, err := parseDate(r.StartDate); err != nil {
			custom = append(custom, validation.CustomValidationError{
				Field:   "startDate",
				Message: "must be an RFC 3339 timestamp or a YYYY-MM-DD date",
			})
		}
	}
	if r.EndDate != "" {
		if _, err := parseDate(r.EndDate); err != nil {
			custom = append(custom, validation.CustomValidationError{
				Field:   "endDate",
				Message: "must be an RFC 3339 timestamp or a YYYY-MM-DD date",
			})
		}
	}
	if r.Page != "" {
		if _, err := parsePositive(r.Page); err != nil {
			custom = append(custom, validation.CustomValidationError{
				Field:   "page",
				Message: "must be a positive integer",
			})
		}
	}
	if r.Limit != "" {
		if _, err := parsePositive(r.Limit); err != nil {
			custom = append(custom, validation.CustomValidationError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		}
	}

	if len(custom) > 0 {
		return custom
	}
	return nil
}

// toQuery converts the validated request into a BlogQuery.
func (r *ListBlogsRequest) toQuery() repository.BlogQuery {
	userID, _ := primitive.ObjectIDFromHex(r.UserID)
	categoryID, _ := primitive.ObjectIDFromHex(r.CategoryID)

	q := repository.BlogQuery{
		User:     userID,
		Category: categoryID,
		Keyword:  r.Keywords,

		// Anything other than the literal "asc" (absent included)
		// sorts descending.
		SortAscending: r.SortOrder == "asc",

		Page:  repository.DefaultPage,
		Limit: repository.DefaultLimit,
	}

	if r.StartDate != "" {
		start, _ := parseDate(r.StartDate)
		q.Start = &start
	}
	if r.EndDate != "" {
		end, _ := parseDate(r.EndDate)
		q.End = &end
	}
	if r.Page != "" {
		q.Page, _ = parsePositive(r.Page)
	}
	if r.Limit != "" {
		q.Limit, _ = parsePositive(r.Limit)
	}

	return q
}

// CreateBlogRequest combines ownership query parameters with the POST
// body.
type CreateBlogRequest struct {
	UserID      string `query:"userId" validate:"required,objectid"`
	CategoryID  string `query:"categoryId" validate:"required,objectid"`
	Title       string `json:"title" validate:"required,min=1,max=256"`
	Description string `json:"description" validate:"required"`
}

func (r *CreateBlogRequest) Validate() error { return validation.Struct(r) }

// GetBlogRequest identifies a single blog through its full ownership
// chain: blog id in the path, user and category ids in the query.
type GetBlogRequest struct {
	BlogID     string `param:"blogId" validate:"required,objectid"`
	UserID     string `query:"userId" validate:"required,objectid"`
	CategoryID string `query:"categoryId" validate:"required,objectid"`
}

func (r *GetBlogRequest) Validate() error { return validation.Struct(r) }

// UpdateBlogRequest combines the path id, the userId query parameter,
// and the PATCH body.
type UpdateBlogRequest struct {
	BlogID      string `param:"blogId" validate:"required,objectid"`
	UserID      string `query:"userId" validate:"required,objectid"`
	Title       string `json:"title" validate:"required,min=1,max=256"`
	Description string `json:"description" validate:"required"`
}

func (r *UpdateBlogRequest) Validate() error { return validation.Struct(r) }

// DeleteBlogRequest identifies the blog and its owner.
type DeleteBlogRequest struct {
	BlogID string `param:"blogId" validate:"required,objectid"`
	UserID string `query:"userId" validate:"required,objectid"`
}

func (r *DeleteBlogRequest) Validate() error { return validation.Struct(r) }

// ListBlogsResponse wraps the listing result.
type ListBlogsResponse struct {
	Blogs []model.Blog `json:"blogs"`
}

// BlogResponse pairs a message with the affected blog.
type BlogResponse struct {
	Message string      `json:"message"`
	Blog    *model.Blog `json:"blog"`
}

// List handles GET /blogs.
func (h *BlogHandler) List(c echo.Context, req *ListBlogsRequest) (*ListBlogsResponse, error) {
	blogs, err := h.blogs.List(c.Request().Context(), req.toQuery())
	if err != nil {
		return nil, err
	}

	return &ListBlogsResponse{Blogs: blogs}, nil
}

// Create handles POST /blogs.
func (h *BlogHandler) Create(c echo.Context, req *CreateBlogRequest) (*BlogResponse, error) {
	userID, _ := primitive.ObjectIDFromHex(req.UserID)
	categoryID, _ := primitive.ObjectIDFromHex(req.CategoryID)

	blog, err := h.blogs.Create(c.Request().Context(), userID, categoryID, req.Title, req.Description)
	if err != nil {
		return nil, err
	}

	return &BlogResponse{Message: "Blog successfully created", Blog: blog}, nil
}

// Get handles GET /blogs/:blogId.
func (h *BlogHandler) Get(c echo.Context, req *GetBlogRequest) (*model.Blog, error) {
	blogID, _ := primitive.ObjectIDFromHex(req.BlogID)
	userID, _ := primitive.ObjectIDFromHex(req.UserID)
	categoryID, _ := primitive.ObjectIDFromHex(req.CategoryID)

	return h.blogs.Get(c.Request().Context(), blogID, userID, categoryID)
}

// Update handles PATCH /blogs/:blogId.
func (h *BlogHandler) Update(c echo.Context, req *UpdateBlogRequest) (*BlogResponse, error) {
	blogID, _ := primitive.ObjectIDFromHex(req.BlogID)
	userID, _ := primitive.ObjectIDFromHex(req.UserID)

	blog, err := h.blogs.Update(c.Request().Context(), blogID, userID, req.Title, req.Description)
	if err != nil {
		return nil, err
	}

	return &BlogResponse{Message: "Blog updated", Blog: blog}, nil
}

// Delete handles DELETE /blogs/:blogId.
func (h *BlogHandler) Delete(c echo.Context, req *DeleteBlogRequest) (*MessageResponse, error) {
	blogID, _ := primitive.ObjectIDFromHex(req.BlogID)
	userID, _ := primitive.ObjectIDFromHex(req.UserID)

	if err := h.blogs.Delete(c.Request().Context(), blogID, userID); err != nil {
		return nil, err
	}

	return &MessageResponse{Message: "Blog successfully deleted"}, nil
}

// parseDate accepts RFC 3339 timestamps and bare YYYY-MM-DD dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// parsePositive parses a strictly positive integer.
func parsePositive(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, strconv.ErrRange
	}
	return n, nil
}
