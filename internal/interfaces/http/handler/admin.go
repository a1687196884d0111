package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/stonetrade/backend/internal/application/inventory"
	"github.com/stonetrade/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// AdminHandler exposes maintenance operations
type AdminHandler struct {
	BaseHandler
	recalculation *inventory.RecalculationService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(recalculation *inventory.RecalculationService) *AdminHandler {
	return &AdminHandler{recalculation: recalculation}
}

// RecalculateResponse summarizes a recalculation sweep
// @name HandlerRecalculateResponse
type RecalculateResponse struct {
	Scanned  map[string]int `json:"scanned"`
	Changed  map[string]int `json:"changed"`
	Duration string         `json:"duration" example:"1.2s"`
}

// Recalculate godoc
// @ID           recalculateAll
// @Summary      Recalculate stored records
// @Description  Re-walks every intake record, block and stone and saves those whose derived fields changed
// @Tags         admin
// @Produce      json
// @Success      200 {object} APIResponse[RecalculateResponse]
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/recalculate [post]
func (h *AdminHandler) Recalculate(c *gin.Context) {
	result, err := h.recalculation.RecalculateAll(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	logger.FromContext(c.Request.Context()).Info("Manual recalculation finished",
		zap.Any("scanned", result.Scanned),
		zap.Any("changed", result.Changed))

	h.Success(c, RecalculateResponse{
		Scanned:  result.Scanned,
		Changed:  result.Changed,
		Duration: result.Duration.String(),
	})
}
