// Package handler is the entry point for business logic after the
// router. It binds and validates requests through the validation
// package, calls the appropriate service, and shapes the JSON
// response.
package handler

import (
	"github.com/rakhadavedra/blogstack/internal/server"
	"github.com/rakhadavedra/blogstack/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router
// setup passes one object around instead of many.
type Handlers struct {
	Health     *HealthHandler
	Users      *UserHandler
	Categories *CategoryHandler
	Blogs      *BlogHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:     NewHealthHandler(s),
		Users:      NewUserHandler(s, services),
		Categories: NewCategoryHandler(s, services),
		Blogs:      NewBlogHandler(s, services),
	}
}
