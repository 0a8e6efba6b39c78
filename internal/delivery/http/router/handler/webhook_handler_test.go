package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"dirbot/internal/delivery/http/validator"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRouter records the dispatched message and returns a fixed reply.
type stubRouter struct {
	reply  string
	sender string
	body   string
}

func (s *stubRouter) HandleMessage(_ context.Context, sender, body string) string {
	s.sender = sender
	s.body = body

	return s.reply
}

func newWebhookContext(t *testing.T, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestWebhookHandler_Receive(t *testing.T) {
	router := &stubRouter{reply: "Hello from the directory!"}
	handler := NewWebhookHandler(router, slog.New(slog.NewTextHandler(io.Discard, nil)))

	form := url.Values{}
	form.Set("From", "whatsapp:+15550001111")
	form.Set("Body", "pizza")

	c, rec := newWebhookContext(t, form)
	require.NoError(t, handler.Receive(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationXML)
	assert.Contains(t, rec.Body.String(), "<Response><Message>Hello from the directory!</Message></Response>")
	assert.Equal(t, "whatsapp:+15550001111", router.sender)
	assert.Equal(t, "pizza", router.body)
}

func TestWebhookHandler_Receive_EmptyBodyField(t *testing.T) {
	router := &stubRouter{reply: "welcome"}
	handler := NewWebhookHandler(router, slog.New(slog.NewTextHandler(io.Discard, nil)))

	form := url.Values{}
	form.Set("From", "whatsapp:+15550001111")

	c, rec := newWebhookContext(t, form)
	require.NoError(t, handler.Receive(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, router.body)
}

func TestWebhookHandler_Receive_MissingFrom(t *testing.T) {
	router := &stubRouter{reply: "never sent"}
	handler := NewWebhookHandler(router, slog.New(slog.NewTextHandler(io.Discard, nil)))

	form := url.Values{}
	form.Set("Body", "pizza")

	c, rec := newWebhookContext(t, form)
	require.NoError(t, handler.Receive(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "<Response>")
	assert.Empty(t, router.sender)
}

func TestWebhookHandler_Receive_EscapesReply(t *testing.T) {
	router := &stubRouter{reply: `Found "Mario & Luigi" <pizza>`}
	handler := NewWebhookHandler(router, slog.New(slog.NewTextHandler(io.Discard, nil)))

	form := url.Values{}
	form.Set("From", "whatsapp:+15550001111")
	form.Set("Body", "mario")

	c, rec := newWebhookContext(t, form)
	require.NoError(t, handler.Receive(c))

	assert.Contains(t, rec.Body.String(), "Mario &amp; Luigi")
	assert.Contains(t, rec.Body.String(), "&lt;pizza&gt;")
}
