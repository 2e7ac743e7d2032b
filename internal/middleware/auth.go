package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rakhadavedra/blogstack/internal/errs"
	"github.com/rakhadavedra/blogstack/internal/server"
)

// AuthMiddleware holds the token-presence check.
//
// AUTHENTICATION IS NOT YET IMPLEMENTED. RequireToken only verifies
// that an Authorization header with a non-empty bearer token is
// present; it performs no verification of the token itself and
// establishes no identity. Ownership is enforced separately by the
// service layer through the userId each request carries. Do not treat
// this middleware as a security boundary.
type AuthMiddleware struct {
	server *server.Server
}

// NewAuthMiddleware constructs an AuthMiddleware.
func NewAuthMiddleware(s *server.Server) *AuthMiddleware {
	return &AuthMiddleware{
		server: s,
	}
}

// RequireToken rejects requests whose Authorization header does not
// carry a non-empty bearer token. See the type comment: presence only.
func (auth *AuthMiddleware) RequireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)

		token := ""
		if scheme, rest, ok := strings.Cut(header, " "); ok && strings.EqualFold(scheme, "Bearer") {
			token = strings.TrimSpace(rest)
		}

		if token == "" {
			return errs.NewUnauthorizedError("Unauthorized", false)
		}

		return next(c)
	}
}
