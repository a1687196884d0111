package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/stonetrade/backend/internal/application/inventory"
	"github.com/stonetrade/backend/internal/domain/intake"
)

// CalculationHandler runs the roll-up for unsaved records
type CalculationHandler struct {
	BaseHandler
	intakeService *inventory.IntakeService
}

// NewCalculationHandler creates a new CalculationHandler
func NewCalculationHandler(intakeService *inventory.IntakeService) *CalculationHandler {
	return &CalculationHandler{intakeService: intakeService}
}

// Preview godoc
// @ID           previewCalculation
// @Summary      Preview intake calculation
// @Description  Returns the record with every derived field filled in. Nothing is stored. kind defaults to todi.
// @Tags         calculations
// @Accept       json
// @Produce      json
// @Param        request body inventory.PreviewRequest true "Unsaved record"
// @Success      200 {object} APIResponse[inventory.IntakeResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /calculations/preview [post]
func (h *CalculationHandler) Preview(c *gin.Context) {
	var req inventory.PreviewRequest
	if !h.BindJSON(c, &req) {
		return
	}

	var kind intake.Kind
	if req.Kind != "" {
		k, err := intake.ParseKind(req.Kind)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		kind = k
	}

	preview, err := h.intakeService.Preview(kind, req.IntakeRequest)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, preview)
}
