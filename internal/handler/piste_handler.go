package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/telemark-pro/pov-backend-go/internal/models"
	"github.com/telemark-pro/pov-backend-go/internal/service"
	"github.com/telemark-pro/pov-backend-go/pkg/response"
)

// PisteHandler handles HTTP requests for piste discovery and storage
type PisteHandler struct {
	pisteService *service.PisteService
}

// NewPisteHandler creates a new piste handler
func NewPisteHandler(pisteService *service.PisteService) *PisteHandler {
	return &PisteHandler{pisteService: pisteService}
}

// ListPistes handles GET /api/v1/pistes
func (h *PisteHandler) ListPistes(c *gin.Context) {
	pistes, err := h.pisteService.List()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, models.PisteListResponse{Data: pistes, Total: len(pistes)})
}

// ExtractPiste handles POST /api/v1/pistes/extract
func (h *PisteHandler) ExtractPiste(c *gin.Context) {
	var req models.ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid extract request")
		return
	}

	piste, err := h.pisteService.Extract(c.Request.Context(), req)
	if errors.Is(err, service.ErrNoPiste) {
		response.NotFound(c, "No downhill piste found near the given location")
		return
	}
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, piste)
}

// GetPiste handles GET /api/v1/pistes/:id
func (h *PisteHandler) GetPiste(c *gin.Context) {
	piste, err := h.pisteService.Get(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Piste not found")
		return
	}

	response.Success(c, piste)
}

// DeletePiste handles DELETE /api/v1/pistes/:id
func (h *PisteHandler) DeletePiste(c *gin.Context) {
	if err := h.pisteService.Delete(c.Param("id")); err != nil {
		response.NotFound(c, "Piste not found")
		return
	}

	response.Success(c, nil)
}
