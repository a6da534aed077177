package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/pokemon-review/internal/handler"
	"github.com/deppfellow/pokemon-review/static"
)

// registerSystemRoutes registers the endpoints that sit outside the API:
// health, the embedded documentation assets and the docs UI.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)
	r.StaticFS("/static", static.Files)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
