package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/starfolio/portfolio-backend/internal/contact/domain"
	"github.com/starfolio/portfolio-backend/internal/contact/service"
)

// Handler handles contact form submissions.
type Handler struct {
	contactService *service.ContactService
}

func NewHandler(contactService *service.ContactService) *Handler {
	return &Handler{contactService: contactService}
}

// Submit handles POST /api/contact. Name, email and message are required;
// subject is optional. Store failure detail is logged, never echoed.
func (h *Handler) Submit(c *gin.Context) {
	var body struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	sub, err := h.contactService.Submit(c.Request.Context(), &domain.SubmitRequest{
		Name:    body.Name,
		Email:   body.Email,
		Subject: body.Subject,
		Message: body.Message,
	})
	if err != nil {
		if err == domain.ErrMissingRequiredFields {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Name, email, and message are required."})
			return
		}
		slog.Error("failed to save contact submission", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save contact submission"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Contact form submitted successfully",
		"id":      sub.ID,
	})
}
