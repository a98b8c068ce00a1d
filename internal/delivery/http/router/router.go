// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"meuapp/internal/delivery/http/middleware"
	"meuapp/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PageHandler       *handler.PageHandler
	AuthHandler       *handler.AuthHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	pageHandler *handler.PageHandler
	authHandler *handler.AuthHandler
	session     *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		pageHandler: params.PageHandler,
		authHandler: params.AuthHandler,
		session:     params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public pages; the signed-in credential, if any, only drives the navigation.
	e.GET("/", r.session.WithIdentity(r.pageHandler.Index))
	e.GET("/cadastro", r.session.WithIdentity(r.authHandler.RegisterForm))
	e.POST("/cadastro", r.session.WithIdentity(r.authHandler.Register))
	e.GET(middleware.LoginPath, r.session.WithIdentity(r.authHandler.LoginForm))
	e.POST(middleware.LoginPath, r.session.WithIdentity(r.authHandler.Login))
	e.GET("/logout", r.authHandler.Logout)

	// Pages that require a session
	e.GET("/conta", r.session.RequireAuthenticated(r.pageHandler.Account))
}
