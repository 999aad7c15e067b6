package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(context.Context) error { return s.err }

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("reports ok with a parseable timestamp", func(t *testing.T) {
		router := gin.New()
		NewHealthHandler("portfolio-backend", "1.0.0", stubPinger{}).RegisterRoutes(router)

		req, err := http.NewRequest("GET", "/health", nil)
		require.NoError(t, err)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var raw struct {
			Status    string `json:"status"`
			Timestamp string `json:"timestamp"`
			Store     string `json:"store"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
		assert.Equal(t, "ok", raw.Status)
		assert.Equal(t, "up", raw.Store)

		_, err = time.Parse(time.RFC3339, raw.Timestamp)
		assert.NoError(t, err, "timestamp must be ISO-8601")
	})

	t.Run("serves the same payload under /api/health", func(t *testing.T) {
		router := gin.New()
		NewHealthHandler("portfolio-backend", "1.0.0", stubPinger{}).RegisterRoutes(router)

		req, err := http.NewRequest("GET", "/api/health", nil)
		require.NoError(t, err)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("reports a down store without failing the check", func(t *testing.T) {
		router := gin.New()
		NewHealthHandler("portfolio-backend", "1.0.0", stubPinger{err: errors.New("gone")}).RegisterRoutes(router)

		req, err := http.NewRequest("GET", "/health", nil)
		require.NoError(t, err)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var response HealthResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.Equal(t, "ok", response.Status)
		assert.Equal(t, "down", response.Store)
	})

	t.Run("reports disabled without a store", func(t *testing.T) {
		router := gin.New()
		NewHealthHandler("portfolio-backend", "1.0.0", nil).RegisterRoutes(router)

		req, err := http.NewRequest("GET", "/health", nil)
		require.NoError(t, err)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		var response HealthResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.Equal(t, "disabled", response.Store)
	})
}
