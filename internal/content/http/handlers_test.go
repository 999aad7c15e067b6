package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/starfolio/portfolio-backend/internal/content/repository"
	"github.com/starfolio/portfolio-backend/internal/content/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := service.NewContentService(repository.NewMemoryRepository())
	NewHandler(svc).Register(r.Group("/api"))
	return r
}

func get(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest("GET", path, nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestContentEndpoints(t *testing.T) {
	router := setupRouter()

	t.Run("profile", func(t *testing.T) {
		rr := get(t, router, "/api/profile")
		require.Equal(t, http.StatusOK, rr.Code)

		var profile map[string]string
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &profile))
		assert.NotEmpty(t, profile["name"])
		assert.NotEmpty(t, profile["bio"])
	})

	t.Run("certifications", func(t *testing.T) {
		rr := get(t, router, "/api/certifications")
		require.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Certifications []map[string]any `json:"certifications"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Certifications)
	})

	t.Run("courses", func(t *testing.T) {
		rr := get(t, router, "/api/courses")
		require.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Courses []map[string]any `json:"courses"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Courses)
	})

	t.Run("testimonials", func(t *testing.T) {
		rr := get(t, router, "/api/testimonials")
		require.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Testimonials []map[string]any `json:"testimonials"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Testimonials)
	})
}
