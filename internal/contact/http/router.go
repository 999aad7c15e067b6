package http

import "github.com/gin-gonic/gin"

// Register registers the contact routes. The optional middleware (rate
// limiting) applies to submissions only.
func (h *Handler) Register(rg *gin.RouterGroup, middleware ...gin.HandlerFunc) {
	handlers := append(append([]gin.HandlerFunc{}, middleware...), h.Submit)
	rg.POST("/contact", handlers...)
}
