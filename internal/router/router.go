// Package router initializes the HTTP router (using Echo).
//
// It registers the middleware stack and defines the API route groups,
// mapping the paths from the external interface table to their
// handlers.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rakhadavedra/blogstack/internal/handler"
	"github.com/rakhadavedra/blogstack/internal/middleware"
)

// New builds the Echo instance with the full middleware stack and all
// routes registered.
func New(h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	r := echo.New()
	r.HideBanner = true

	r.HTTPErrorHandler = m.Global.GlobalErrorHandler

	// Order matters: request IDs before the context enhancer, both
	// before anything that logs.
	r.Use(middleware.RequestID())
	r.Use(m.ContextEnhancer.EnhanceContext())
	r.Use(m.Global.RequestLogger())
	r.Use(m.Global.Recover())
	r.Use(m.Global.Secure())
	r.Use(m.Global.CORS())

	registerSystemRoutes(r, h)
	registerAPIRoutes(r, h, m)

	return r
}

// registerAPIRoutes wires the business endpoints. The whole API sits
// behind the token-presence placeholder middleware.
func registerAPIRoutes(r *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	api := r.Group("", m.Auth.RequireToken)

	users := h.Users
	api.GET("/users", handler.Handle(users.Handler, users.List, http.StatusOK))
	api.POST("/users", handler.Handle(users.Handler, users.Create, http.StatusCreated))
	api.PATCH("/users", handler.Handle(users.Handler, users.Update, http.StatusOK))
	api.DELETE("/users", handler.Handle(users.Handler, users.Delete, http.StatusOK))

	categories := h.Categories
	api.GET("/categories", handler.Handle(categories.Handler, categories.List, http.StatusOK))
	api.POST("/categories", handler.Handle(categories.Handler, categories.Create, http.StatusCreated))
	api.PATCH("/categories/:categoryId", handler.Handle(categories.Handler, categories.Update, http.StatusOK))
	api.DELETE("/categories/:categoryId", handler.Handle(categories.Handler, categories.Delete, http.StatusOK))

	blogs := h.Blogs
	api.GET("/blogs", handler.Handle(blogs.Handler, blogs.List, http.StatusOK))
	api.POST("/blogs", handler.Handle(blogs.Handler, blogs.Create, http.StatusCreated))
	api.GET("/blogs/:blogId", handler.Handle(blogs.Handler, blogs.Get, http.StatusOK))
	api.PATCH("/blogs/:blogId", handler.Handle(blogs.Handler, blogs.Update, http.StatusOK))
	api.DELETE("/blogs/:blogId", handler.Handle(blogs.Handler, blogs.Delete, http.StatusOK))
}
