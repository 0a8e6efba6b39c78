// Package handler contains the HTTP handlers for the application.
package handler

import (
	"encoding/xml"
	"log/slog"
	"net/http"

	deliverycontext "dirbot/internal/delivery/context"
	"dirbot/internal/usecase"

	"github.com/labstack/echo/v4"
)

// webhookRequest is the inbound message form posted by the messaging gateway.
type webhookRequest struct {
	From string `form:"From" validate:"required"`
	Body string `form:"Body"`
}

// twimlResponse renders the reply in the gateway's XML envelope.
type twimlResponse struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message"`
}

// WebhookHandler holds dependencies for the inbound message webhook.
type WebhookHandler struct {
	router usecase.RouterUsecase
	logger *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler, injected by Fx.
func NewWebhookHandler(router usecase.RouterUsecase, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{
		router: router,
		logger: logger,
	}
}

// Receive handles one inbound message. The response is always a well-formed
// TwiML body; message handling itself cannot fail, so only a malformed form
// produces a non-200 status.
func (h *WebhookHandler) Receive(c echo.Context) error {
	var req webhookRequest
	if err := c.Bind(&req); err != nil {
		return c.XML(http.StatusBadRequest, twimlResponse{Message: "Invalid request."})
	}
	if err := c.Validate(&req); err != nil {
		return c.XML(http.StatusBadRequest, twimlResponse{Message: "Invalid request."})
	}

	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)
	logger.Debug("Webhook message received", slog.String("from", req.From))

	reply := h.router.HandleMessage(ctx, req.From, req.Body)

	return c.XML(http.StatusOK, twimlResponse{Message: reply})
}
