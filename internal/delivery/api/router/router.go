// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ticketdesk/config"
	"ticketdesk/internal/delivery/api/middleware"
	"ticketdesk/internal/delivery/api/router/handler"
	"ticketdesk/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	TicketHandler  *handler.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
	Metrics        *metrics.Collector `optional:"true"`
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	ticketHandler  *handler.TicketHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
	metrics        *metrics.Collector
	config         *config.Config
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		ticketHandler:  params.TicketHandler,
		authMiddleware: params.AuthMiddleware,
		rateLimiter:    params.RateLimiter,
		metrics:        params.Metrics,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Root)
	e.GET("/health", handler.HealthCheck)
	if r.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	}

	authGroup := e.Group("/auth")
	{
		limited := r.rateLimiter.Middleware()
		authGroup.POST("/register", r.authHandler.Register, limited)
		authGroup.POST("/login", r.authHandler.Login, limited)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Reads are public; writes need a bearer token unless auth.publicTickets is set
	ticketsGroup := e.Group("/tickets")
	{
		guard := r.authMiddleware.Optional(r.config.Auth.PublicTickets)
		ticketsGroup.GET("", r.ticketHandler.List)
		ticketsGroup.POST("", r.ticketHandler.Create, guard)
		ticketsGroup.PUT("/:id", r.ticketHandler.Update, guard)
		ticketsGroup.DELETE("/:id", r.ticketHandler.Delete, guard)
	}
}
