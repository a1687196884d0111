package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/stonetrade/backend/internal/application/inventory"
	"github.com/stonetrade/backend/internal/application/printing"
)

// BlockHandler handles quarry block endpoints
type BlockHandler struct {
	BaseHandler
	service    *inventory.BlockService
	statements *printing.StatementService
}

// NewBlockHandler creates a new BlockHandler
func NewBlockHandler(service *inventory.BlockService, statements *printing.StatementService) *BlockHandler {
	return &BlockHandler{service: service, statements: statements}
}

// Create godoc
// @ID           createBlock
// @Summary      Create block
// @Description  Stores the front and back measurements and returns the averaged area with costs filled in
// @Tags         blocks
// @Accept       json
// @Produce      json
// @Param        request body inventory.BlockRequest true "Block"
// @Success      201 {object} APIResponse[inventory.BlockResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /blocks [post]
func (h *BlockHandler) Create(c *gin.Context) {
	var req inventory.BlockRequest
	if !h.BindJSON(c, &req) {
		return
	}
	blk, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, blk)
}

// List godoc
// @ID           listBlocks
// @Summary      List blocks
// @Tags         blocks
// @Produce      json
// @Param        search query string false "Block number or munim contains"
// @Param        vendor_id query string false "Vendor filter" format(uuid)
// @Param        mine_id query string false "Mine filter" format(uuid)
// @Param        date_from query string false "From date (YYYY-MM-DD)"
// @Param        date_to query string false "To date (YYYY-MM-DD)"
// @Param        page query int false "Page" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} APIResponse[[]inventory.BlockResponse]
// @Security     BearerAuth
// @Router       /blocks [get]
func (h *BlockHandler) List(c *gin.Context) {
	var filter inventory.ListFilter
	if !h.BindQuery(c, &filter) {
		return
	}
	blocks, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, blocks, total, pageOf(filter.Page), pageSizeOf(filter.PageSize))
}

// GetByID godoc
// @ID           getBlockById
// @Summary      Get block
// @Tags         blocks
// @Produce      json
// @Param        id path string true "Block ID" format(uuid)
// @Success      200 {object} APIResponse[inventory.BlockResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /blocks/{id} [get]
func (h *BlockHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	blk, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, blk)
}

// Update godoc
// @ID           updateBlock
// @Summary      Update block
// @Tags         blocks
// @Accept       json
// @Produce      json
// @Param        id path string true "Block ID" format(uuid)
// @Param        request body inventory.BlockRequest true "Block"
// @Success      200 {object} APIResponse[inventory.BlockResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /blocks/{id} [put]
func (h *BlockHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	var req inventory.BlockRequest
	if !h.BindJSON(c, &req) {
		return
	}
	blk, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, blk)
}

// Delete godoc
// @ID           deleteBlock
// @Summary      Delete block
// @Tags         blocks
// @Param        id path string true "Block ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /blocks/{id} [delete]
func (h *BlockHandler) Delete(c *gin.Context) {
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

// AddPayment godoc
// @ID           addBlockPayment
// @Summary      Record a block payment
// @Tags         blocks
// @Accept       json
// @Produce      json
// @Param        id path string true "Block ID" format(uuid)
// @Param        request body inventory.AddPaymentRequest true "Payment"
// @Success      200 {object} APIResponse[inventory.BlockResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /blocks/{id}/payments [post]
func (h *BlockHandler) AddPayment(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	var req inventory.AddPaymentRequest
	if !h.BindJSON(c, &req) {
		return
	}
	blk, err := h.service.AddPayment(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, blk)
}

// Statement godoc
// @ID           getBlockStatement
// @Summary      Print block statement
// @Tags         blocks
// @Produce      application/pdf
// @Produce      text/html
// @Param        id path string true "Block ID" format(uuid)
// @Param        format query string false "pdf or html" default(pdf)
// @Success      200 {file} binary
// @Failure      404 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /blocks/{id}/statement [get]
func (h *BlockHandler) Statement(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	format, err := printing.ParseFormat(c.Query("format"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	doc, err := h.statements.BlockStatement(c.Request.Context(), id, format)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	sendDocument(c, doc)
}

// ArchiveStatement godoc
// @ID           archiveBlockStatement
// @Summary      Archive block statement
// @Tags         blocks
// @Produce      json
// @Param        id path string true "Block ID" format(uuid)
// @Success      201 {object} APIResponse[printing.ArchiveResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /blocks/{id}/statement/archive [post]
func (h *BlockHandler) ArchiveStatement(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	archived, err := h.statements.ArchiveBlockStatement(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, archived)
}
