// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"doorman/internal/delivery/http/middleware"
	"doorman/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const staticRoot = "public"

// RouterParams collects the handlers and middleware Fx injects into the router.
type RouterParams struct {
	fx.In

	AccountHandler      *handler.AccountHandler
	RequestIDMiddleware *middleware.RequestIDMiddleware
	ErrorMiddleware     *middleware.ErrorMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler      *handler.AccountHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
	errorMiddleware     *middleware.ErrorMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:      params.AccountHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
		errorMiddleware:     params.ErrorMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)
	e.HTTPErrorHandler = r.errorMiddleware.HandleHTTPError

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Landing page: the root redirects into the static bundle.
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/index.html")
	})
	e.Static("/", staticRoot)

	// Credential endpoints
	e.POST("/signup", r.accountHandler.Signup)
	e.POST("/login", r.accountHandler.Login)
}
