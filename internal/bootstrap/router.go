package bootstrap

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/starfolio/portfolio-backend/internal/api/http"
	"github.com/starfolio/portfolio-backend/internal/api/http/middleware"
	contacthttp "github.com/starfolio/portfolio-backend/internal/contact/http"
	contactservice "github.com/starfolio/portfolio-backend/internal/contact/service"
	contenthttp "github.com/starfolio/portfolio-backend/internal/content/http"
	contentservice "github.com/starfolio/portfolio-backend/internal/content/service"
	"github.com/starfolio/portfolio-backend/internal/starfield"
	starfieldhttp "github.com/starfolio/portfolio-backend/internal/starfield/http"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	ContactService *contactservice.ContactService
	ContentService *contentservice.ContentService
	Engine         *starfield.Engine
	RatePerMinute  int
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.RequestIDMiddleware())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
		// Preflights answer 200, matching what the frontend expects.
		OptionsResponseStatusCode: http.StatusOK,
	}))

	var store httpapi.Pinger
	if dep.ContactService != nil {
		store = dep.ContactService
	}
	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, store)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api")

	if dep.ContactService != nil {
		limiter := middleware.NewRateLimiter(dep.RatePerMinute)
		contacthttp.NewHandler(dep.ContactService).Register(api, limiter.Middleware())
	}
	if dep.ContentService != nil {
		contenthttp.NewHandler(dep.ContentService).Register(api)
	}
	if dep.Engine != nil {
		starfieldhttp.NewHandler(dep.Engine).Register(api)
	}

	r.NoRoute(fallback)
	r.NoMethod(fallback)

	return r
}

// fallback answers stray preflights with 200 and anything else with 404.
// Browsers fire OPTIONS at paths we never registered, and those must not
// surface as errors.
func fallback(c *gin.Context) {
	if c.Request.Method == http.MethodOptions {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Status(http.StatusOK)
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Not Found"})
}
