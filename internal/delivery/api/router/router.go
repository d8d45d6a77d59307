// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"walkey/internal/delivery/api/middleware"
	"walkey/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RouteHandler   *handler.RouteHandler
	ThemeHandler   *handler.ThemeHandler
	WalkHandler    *handler.WalkHandler
	AuthHandler    *handler.AuthHandler
	HealthHandler  *handler.HealthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	routeHandler   *handler.RouteHandler
	themeHandler   *handler.ThemeHandler
	walkHandler    *handler.WalkHandler
	authHandler    *handler.AuthHandler
	healthHandler  *handler.HealthHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		routeHandler:   params.RouteHandler,
		themeHandler:   params.ThemeHandler,
		walkHandler:    params.WalkHandler,
		authHandler:    params.AuthHandler,
		healthHandler:  params.HealthHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Check)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")

	// OAuth routes
	oauthGroup := api.Group("/oauth")
	{
		oauthGroup.POST("/google", r.authHandler.GoogleLogin)
	}

	api.GET("/themes", r.themeHandler.ListThemes)

	routesGroup := api.Group("/routes")
	{
		routesGroup.GET("", r.routeHandler.GetRecommendedRoutes)
		routesGroup.POST("/:id/detail-path", r.routeHandler.EnrichRoute, r.authMiddleware.Authenticate)
	}

	// Walk history is public; starting and ending walks require a token
	sessionsGroup := api.Group("/users/sessions")
	{
		sessionsGroup.GET("/:username", r.walkHandler.GetUserSessions)
		sessionsGroup.POST("", r.walkHandler.StartSession, r.authMiddleware.Authenticate)
		sessionsGroup.PATCH("/:id/end", r.walkHandler.EndSession, r.authMiddleware.Authenticate)
	}
}
