package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct{ err error }

func (p stubPinger) PingContext(context.Context) error { return p.err }

func serveHealth(t *testing.T, db Pinger, method string) (*httptest.ResponseRecorder, HealthResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.HandleMethodNotAllowed = true
	NewHealthHandler("test-service", "1.0.0", db).RegisterRoutes(router)

	req, err := http.NewRequest(method, "/health", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	var response HealthResponse
	if rr.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	}
	return rr, response
}

func TestHealthCheck(t *testing.T) {
	rr, response := serveHealth(t, nil, http.MethodGet)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "healthy", response.Status)
	assert.Equal(t, "test-service", response.Service)
	assert.Equal(t, "1.0.0", response.Version)
	assert.Equal(t, "disabled", response.DB)
}

func TestHealthCheckDatabaseStatus(t *testing.T) {
	_, up := serveHealth(t, stubPinger{}, http.MethodGet)
	assert.Equal(t, "up", up.DB)

	_, down := serveHealth(t, stubPinger{err: errors.New("refused")}, http.MethodGet)
	assert.Equal(t, "down", down.DB)
	assert.Equal(t, "healthy", down.Status)
}

func TestHealthCheckMethodNotAllowed(t *testing.T) {
	rr, _ := serveHealth(t, nil, http.MethodPost)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
