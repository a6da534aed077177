// Package router builds the echo router: global middleware, the system
// routes and the /api route groups.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/pokemon-review/internal/handler"
	"github.com/deppfellow/pokemon-review/internal/middleware"
	"github.com/deppfellow/pokemon-review/internal/server"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.RateLimit.Limit(),
	)

	registerSystemRoutes(router, h)

	api := router.Group("/api")
	registerAPIRoutes(api, h, middlewares.Auth.Protect())

	return router
}
