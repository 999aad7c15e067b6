package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/starfolio/portfolio-backend/internal/starfield"
)

// Handler exposes the animation engine's latest frame.
type Handler struct {
	engine *starfield.Engine
}

func NewHandler(engine *starfield.Engine) *Handler {
	return &Handler{engine: engine}
}

// GetFrame returns the most recently rendered frame. The background is
// decorative, so an engine that never produced a frame is a 503 the client
// silently ignores, not an error page.
func (h *Handler) GetFrame(c *gin.Context) {
	frame, ok := h.engine.Snapshot()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "starfield not running"})
		return
	}
	c.JSON(http.StatusOK, frame)
}

// Register registers the starfield routes.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/starfield", h.GetFrame)
}
