// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"todo/internal/delivery/http/middleware"
	"todo/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	TaskHandler    *handler.TaskHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	taskHandler    *handler.TaskHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		taskHandler:    params.TaskHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// The paths are part of the externally observed contract and must not change.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Task routes; listing is public, mutation requires a valid token.
	e.GET("/", r.taskHandler.List)
	e.POST("/create", r.taskHandler.Create, r.authMiddleware.Authenticate)
	e.DELETE("/delete/:id", r.taskHandler.Delete, r.authMiddleware.Authenticate)

	// Account routes
	userGroup := e.Group("/user")
	{
		userGroup.POST("/register", r.userHandler.Register)
		userGroup.POST("/login", r.userHandler.Login)
	}
}
