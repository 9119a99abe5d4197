// Package router contains routing for the JSON API.
package router

import (
	"staffing/internal/delivery/api/middleware"
	"staffing/internal/delivery/api/router/handler"
	"staffing/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler *handler.SessionHandler
	ShiftHandler   *handler.ShiftHandler
	TierHandler    *handler.TierHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler *handler.SessionHandler
	shiftHandler   *handler.ShiftHandler
	tierHandler    *handler.TierHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler: params.SessionHandler,
		shiftHandler:   params.ShiftHandler,
		tierHandler:    params.TierHandler,
		authMiddleware: params.AuthMiddleware,
		rateLimiter:    params.RateLimiter,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.sessionHandler.Login)
	}

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	apiV1.GET("/tiers", r.tierHandler.ListTiers)

	shiftsGroup := apiV1.Group("/shifts/:id")
	{
		shiftsGroup.POST("/cancel", r.shiftHandler.CancelShift,
			r.authMiddleware.RequireRole(entity.RoleWorker), r.rateLimiter.Limit)
		shiftsGroup.POST("/complete", r.shiftHandler.CompleteShift,
			r.authMiddleware.RequireRole(entity.RoleHotel))
		shiftsGroup.POST("/rating/worker", r.shiftHandler.RateWorker,
			r.authMiddleware.RequireRole(entity.RoleHotel))
		shiftsGroup.POST("/rating/hotel", r.shiftHandler.RateHotel,
			r.authMiddleware.RequireRole(entity.RoleWorker))
	}

	workersGroup := apiV1.Group("/workers")
	workersGroup.Use(r.authMiddleware.RequireRole(entity.RoleWorker))
	{
		workersGroup.GET("/me/tier", r.tierHandler.GetMyTierProgress)
	}

	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/workers/:id/tier", r.tierHandler.UpdateWorkerTier)
		adminGroup.POST("/workers/:id/rating", r.tierHandler.RecalculateWorkerRating)
		adminGroup.POST("/hotels/:id/tier", r.tierHandler.UpdateHotelTier)
		adminGroup.POST("/hotels/:id/rating", r.tierHandler.RecalculateHotelRating)
	}
}
