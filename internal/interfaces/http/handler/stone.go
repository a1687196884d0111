package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/stonetrade/backend/internal/application/inventory"
)

// StoneHandler handles finished stone stock endpoints
type StoneHandler struct {
	BaseHandler
	service *inventory.StoneService
}

// NewStoneHandler creates a new StoneHandler
func NewStoneHandler(service *inventory.StoneService) *StoneHandler {
	return &StoneHandler{service: service}
}

// Create godoc
// @ID           createStone
// @Summary      Create stone entry
// @Tags         stones
// @Accept       json
// @Produce      json
// @Param        request body inventory.StoneRequest true "Stone"
// @Success      201 {object} APIResponse[inventory.StoneResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /stones [post]
func (h *StoneHandler) Create(c *gin.Context) {
	var req inventory.StoneRequest
	if !h.BindJSON(c, &req) {
		return
	}
	st, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, st)
}

// List godoc
// @ID           listStones
// @Summary      List stone entries
// @Tags         stones
// @Produce      json
// @Param        search query string false "Type contains"
// @Param        type query string false "Stone type"
// @Param        date_from query string false "From date (YYYY-MM-DD)"
// @Param        date_to query string false "To date (YYYY-MM-DD)"
// @Param        page query int false "Page" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} APIResponse[[]inventory.StoneResponse]
// @Security     BearerAuth
// @Router       /stones [get]
func (h *StoneHandler) List(c *gin.Context) {
	var filter inventory.ListFilter
	if !h.BindQuery(c, &filter) {
		return
	}
	stones, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, stones, total, pageOf(filter.Page), pageSizeOf(filter.PageSize))
}

// GetByID godoc
// @ID           getStoneById
// @Summary      Get stone entry
// @Tags         stones
// @Produce      json
// @Param        id path string true "Stone ID" format(uuid)
// @Success      200 {object} APIResponse[inventory.StoneResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /stones/{id} [get]
func (h *StoneHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	st, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, st)
}

// Update godoc
// @ID           updateStone
// @Summary      Update stone entry
// @Tags         stones
// @Accept       json
// @Produce      json
// @Param        id path string true "Stone ID" format(uuid)
// @Param        request body inventory.StoneRequest true "Stone"
// @Success      200 {object} APIResponse[inventory.StoneResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /stones/{id} [put]
func (h *StoneHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	var req inventory.StoneRequest
	if !h.BindJSON(c, &req) {
		return
	}
	st, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, st)
}

// Delete godoc
// @ID           deleteStone
// @Summary      Delete stone entry
// @Tags         stones
// @Param        id path string true "Stone ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /stones/{id} [delete]
func (h *StoneHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Issue godoc
// @ID           issueStone
// @Summary      Issue stone from stock
// @Description  Adds to the issued quantity and recomputes what is left
// @Tags         stones
// @Accept       json
// @Produce      json
// @Param        id path string true "Stone ID" format(uuid)
// @Param        request body inventory.IssueStoneRequest true "Quantity"
// @Success      200 {object} APIResponse[inventory.StoneResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /stones/{id}/issue [post]
func (h *StoneHandler) Issue(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	var req inventory.IssueStoneRequest
	if !h.BindJSON(c, &req) {
		return
	}
	st, err := h.service.Issue(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, st)
}
