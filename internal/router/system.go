package router

import (
	"github.com/labstack/echo/v4"
	"github.com/rakhadavedra/blogstack/internal/handler"
)

// registerSystemRoutes registers endpoints that are not business
// logic. They sit outside the token check so monitors can reach them
// without credentials.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)
}
