// Package middleware contains the Echo middleware stack: CORS, request
// logging, panic recovery, secure headers, request-ID correlation,
// request-scoped loggers, the token-presence placeholder, and the
// global error handler every failed request funnels through.
package middleware

import (
	"github.com/rakhadavedra/blogstack/internal/server"
)

// Middlewares groups all middleware components used by the HTTP
// server, wired once with the shared application container.
type Middlewares struct {
	// Global holds middleware applied to every route plus the global
	// error handler.
	Global *GlobalMiddlewares

	// Auth is the bearer-token presence check. It is a placeholder, not
	// authentication; see auth.go.
	Auth *AuthMiddleware

	// ContextEnhancer installs a request-scoped logger carrying
	// correlation fields.
	ContextEnhancer *ContextEnhancer
}

// NewMiddlewares constructs all middleware components.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		Auth:            NewAuthMiddleware(s),
		ContextEnhancer: NewContextEnhancer(s),
	}
}
