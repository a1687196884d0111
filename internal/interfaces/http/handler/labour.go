package handler

import (
	"github.com/gin-gonic/gin"
	apppartner "github.com/stonetrade/backend/internal/application/partner"
)

// LabourHandler handles labour contact endpoints
type LabourHandler struct {
	BaseHandler
	labourService *apppartner.LabourService
}

// NewLabourHandler creates a new LabourHandler
func NewLabourHandler(labourService *apppartner.LabourService) *LabourHandler {
	return &LabourHandler{labourService: labourService}
}

// Create godoc
// @ID           createLabour
// @Summary      Create labour contact
// @Tags         labour
// @Accept       json
// @Produce      json
// @Param        request body partner.LabourRequest true "Labour"
// @Success      201 {object} APIResponse[partner.LabourResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /labour [post]
func (h *LabourHandler) Create(c *gin.Context) {
	var req apppartner.LabourRequest
	if !h.BindJSON(c, &req) {
		return
	}
	labour, err := h.labourService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, labour)
}

// List godoc
// @ID           listLabour
// @Summary      List labour contacts
// @Tags         labour
// @Produce      json
// @Param        search query string false "Name or mobile contains"
// @Param        page query int false "Page" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} APIResponse[[]partner.LabourResponse]
// @Security     BearerAuth
// @Router       /labour [get]
func (h *LabourHandler) List(c *gin.Context) {
	var filter apppartner.ListFilter
	if !h.BindQuery(c, &filter) {
		return
	}
	labour, total, err := h.labourService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, labour, total, pageOf(filter.Page), pageSizeOf(filter.PageSize))
}

// GetByID godoc
// @ID           getLabourById
// @Summary      Get labour contact
// @Tags         labour
// @Produce      json
// @Param        id path string true "Labour ID" format(uuid)
// @Success      200 {object} APIResponse[partner.LabourResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /labour/{id} [get]
func (h *LabourHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	labour, err := h.labourService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, labour)
}

// Update godoc
// @ID           updateLabour
// @Summary      Update labour contact
// @Tags         labour
// @Accept       json
// @Produce      json
// @Param        id path string true "Labour ID" format(uuid)
// @Param        request body partner.LabourRequest true "Labour"
// @Success      200 {object} APIResponse[partner.LabourResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /labour/{id} [put]
func (h *LabourHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	var req apppartner.LabourRequest
	if !h.BindJSON(c, &req) {
		return
	}
	labour, err := h.labourService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, labour)
}

// Delete godoc
// @ID           deleteLabour
// @Summary      Delete labour contact
// @Tags         labour
// @Param        id path string true "Labour ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /labour/{id} [delete]
func (h *LabourHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.labourService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
