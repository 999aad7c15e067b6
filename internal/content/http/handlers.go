package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/starfolio/portfolio-backend/internal/content/service"
)

// Handler serves the read-only content catalog the presentation layer
// renders.
type Handler struct {
	contentService *service.ContentService
}

func NewHandler(contentService *service.ContentService) *Handler {
	return &Handler{contentService: contentService}
}

func (h *Handler) GetProfile(c *gin.Context) {
	profile, err := h.contentService.Profile(c.Request.Context())
	if err != nil {
		slog.Error("failed to load profile", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load content"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *Handler) GetCertifications(c *gin.Context) {
	certs, err := h.contentService.Certifications(c.Request.Context())
	if err != nil {
		slog.Error("failed to load certifications", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load content"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"certifications": certs})
}

func (h *Handler) GetCourses(c *gin.Context) {
	courses, err := h.contentService.Courses(c.Request.Context())
	if err != nil {
		slog.Error("failed to load courses", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load content"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": courses})
}

func (h *Handler) GetTestimonials(c *gin.Context) {
	quotes, err := h.contentService.Testimonials(c.Request.Context())
	if err != nil {
		slog.Error("failed to load testimonials", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load content"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": quotes})
}

// Register registers the content routes.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/profile", h.GetProfile)
	rg.GET("/certifications", h.GetCertifications)
	rg.GET("/courses", h.GetCourses)
	rg.GET("/testimonials", h.GetTestimonials)
}
