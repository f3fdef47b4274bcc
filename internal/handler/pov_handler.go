package handler

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/telemark-pro/pov-backend-go/internal/service"
	"github.com/telemark-pro/pov-backend-go/pkg/response"
)

// POVHandler handles HTTP requests for POV rendering of stored pistes
type POVHandler struct {
	povService *service.POVService
}

// NewPOVHandler creates a new POV handler
func NewPOVHandler(povService *service.POVService) *POVHandler {
	return &POVHandler{povService: povService}
}

// writePage buffers an HTML render so a failed render never emits a
// half-written page
func writePage(c *gin.Context, render func(w *bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		response.NotFound(c, err.Error())
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// GetPOV handles GET /api/v1/pistes/:id/pov
func (h *POVHandler) GetPOV(c *gin.Context) {
	id := c.Param("id")
	writePage(c, func(w *bytes.Buffer) error {
		return h.povService.SceneHTML(id, w)
	})
}

// GetPOVScene handles GET /api/v1/pistes/:id/pov/scene
func (h *POVHandler) GetPOVScene(c *gin.Context) {
	sc, err := h.povService.SceneJSON(c.Param("id"))
	if err != nil {
		response.NotFound(c, err.Error())
		return
	}

	response.Success(c, sc)
}

// GetFlythrough handles GET /api/v1/pistes/:id/pov/2d
func (h *POVHandler) GetFlythrough(c *gin.Context) {
	id := c.Param("id")
	writePage(c, func(w *bytes.Buffer) error {
		return h.povService.Flythrough2D(id, w)
	})
}

// GetProfile handles GET /api/v1/pistes/:id/profile
func (h *POVHandler) GetProfile(c *gin.Context) {
	id := c.Param("id")
	writePage(c, func(w *bytes.Buffer) error {
		return h.povService.ProfileChart(id, w)
	})
}

// GetStats handles GET /api/v1/pistes/:id/stats
func (h *POVHandler) GetStats(c *gin.Context) {
	stats, err := h.povService.Stats(c.Param("id"))
	if err != nil {
		response.NotFound(c, err.Error())
		return
	}

	response.Success(c, stats)
}
