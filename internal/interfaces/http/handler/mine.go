package handler

import (
	"github.com/gin-gonic/gin"
	apppartner "github.com/stonetrade/backend/internal/application/partner"
)

// MineHandler handles mine endpoints
type MineHandler struct {
	BaseHandler
	mineService *apppartner.MineService
}

// NewMineHandler creates a new MineHandler
func NewMineHandler(mineService *apppartner.MineService) *MineHandler {
	return &MineHandler{mineService: mineService}
}

// Create godoc
// @ID           createMine
// @Summary      Create mine
// @Tags         mines
// @Accept       json
// @Produce      json
// @Param        request body partner.MineRequest true "Mine"
// @Success      201 {object} APIResponse[partner.MineResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /mines [post]
func (h *MineHandler) Create(c *gin.Context) {
	var req apppartner.MineRequest
	if !h.BindJSON(c, &req) {
		return
	}
	mine, err := h.mineService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, mine)
}

// List godoc
// @ID           listMines
// @Summary      List mines
// @Tags         mines
// @Produce      json
// @Param        search query string false "Name, address or contact contains"
// @Param        page query int false "Page" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Param        order_by query string false "Sort field" default(name)
// @Param        order_dir query string false "asc or desc"
// @Success      200 {object} APIResponse[[]partner.MineResponse]
// @Security     BearerAuth
// @Router       /mines [get]
func (h *MineHandler) List(c *gin.Context) {
	var filter apppartner.ListFilter
	if !h.BindQuery(c, &filter) {
		return
	}
	mines, total, err := h.mineService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, mines, total, pageOf(filter.Page), pageSizeOf(filter.PageSize))
}

// GetByID godoc
// @ID           getMineById
// @Summary      Get mine
// @Tags         mines
// @Produce      json
// @Param        id path string true "Mine ID" format(uuid)
// @Success      200 {object} APIResponse[partner.MineResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /mines/{id} [get]
func (h *MineHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	mine, err := h.mineService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, mine)
}

// Update godoc
// @ID           updateMine
// @Summary      Update mine
// @Tags         mines
// @Accept       json
// @Produce      json
// @Param        id path string true "Mine ID" format(uuid)
// @Param        request body partner.MineRequest true "Mine"
// @Success      200 {object} APIResponse[partner.MineResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /mines/{id} [put]
func (h *MineHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	var req apppartner.MineRequest
	if !h.BindJSON(c, &req) {
		return
	}
	mine, err := h.mineService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, mine)
}

// Delete godoc
// @ID           deleteMine
// @Summary      Delete mine
// @Description  Vendors and blocks pointing at the mine keep their rows with the reference cleared
// @Tags         mines
// @Param        id path string true "Mine ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /mines/{id} [delete]
func (h *MineHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.mineService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

func pageOf(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func pageSizeOf(size int) int {
	if size < 1 {
		return 20
	}
	return size
}
