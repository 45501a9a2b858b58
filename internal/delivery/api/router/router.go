// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"recruit/internal/delivery/api/middleware"
	"recruit/internal/delivery/api/router/handler"
	"recruit/internal/domain/entity"
	"recruit/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
		metrics:        params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/send-otp", r.authHandler.SendOtp)
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
	}

	oauthGroup := e.Group("/oauth")
	{
		oauthGroup.POST("/google", r.authHandler.GoogleSignIn)
	}

	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.userHandler.Me)
		userGroup.POST("/email/request", r.userHandler.RequestEmailUpdate)
		userGroup.POST("/email/verify", r.userHandler.VerifyEmailUpdate)
	}

	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.PATCH("/users/:id/active", r.adminHandler.SetUserActive)
	}
}
