package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"dirbot/config"
	mockRepo "dirbot/internal/mocks/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newHealthHandler(t *testing.T) (*HealthHandler, *mockRepo.MockBusinessRepository) {
	t.Helper()

	repo := mockRepo.NewMockBusinessRepository(t)
	cfg := &config.Config{}
	cfg.Env.ServiceName = "dirbot"
	cfg.Catalog.Backend = config.BackendPostgres

	return NewHealthHandler(repo, cfg), repo
}

func newHealthContext(path string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestHealthHandler_Root(t *testing.T) {
	handler, _ := newHealthHandler(t)

	c, rec := newHealthContext("/")
	require.NoError(t, handler.Root(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"service":"dirbot"`)
	assert.Contains(t, rec.Body.String(), `"status":"running"`)
}

func TestHealthHandler_Check_Healthy(t *testing.T) {
	handler, repo := newHealthHandler(t)

	repo.EXPECT().Count(mock.Anything).Return(17, nil)

	c, rec := newHealthContext("/health")
	require.NoError(t, handler.Check(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
	assert.Contains(t, rec.Body.String(), `"backend":"postgres"`)
	assert.Contains(t, rec.Body.String(), `"businesses_count":17`)
}

func TestHealthHandler_Check_StoreDown(t *testing.T) {
	handler, repo := newHealthHandler(t)

	repo.EXPECT().Count(mock.Anything).Return(0, errors.New("connection refused"))

	c, rec := newHealthContext("/health")
	require.NoError(t, handler.Check(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"unhealthy"`)
	assert.NotContains(t, rec.Body.String(), "businesses_count")
}
