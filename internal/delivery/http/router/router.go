// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"dirbot/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	WebhookHandler *handler.WebhookHandler
	HealthHandler  *handler.HealthHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	webhookHandler *handler.WebhookHandler
	healthHandler  *handler.HealthHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		webhookHandler: params.WebhookHandler,
		healthHandler:  params.HealthHandler,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", r.healthHandler.Root)
	e.GET("/health", r.healthHandler.Check)

	// Inbound message webhook from the messaging gateway.
	e.POST("/webhook", r.webhookHandler.Receive)
}
