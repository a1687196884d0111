package handler

import (
	"github.com/gin-gonic/gin"
	apppartner "github.com/stonetrade/backend/internal/application/partner"
)

// VendorHandler handles vendor endpoints
type VendorHandler struct {
	BaseHandler
	vendorService *apppartner.VendorService
}

// NewVendorHandler creates a new VendorHandler
func NewVendorHandler(vendorService *apppartner.VendorService) *VendorHandler {
	return &VendorHandler{vendorService: vendorService}
}

// Create godoc
// @ID           createVendor
// @Summary      Create vendor
// @Description  Phones are 10-digit Indian mobile numbers. mine_id must name an existing mine.
// @Tags         vendors
// @Accept       json
// @Produce      json
// @Param        request body partner.VendorRequest true "Vendor"
// @Success      201 {object} APIResponse[partner.VendorResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /vendors [post]
func (h *VendorHandler) Create(c *gin.Context) {
	var req apppartner.VendorRequest
	if !h.BindJSON(c, &req) {
		return
	}
	vendor, err := h.vendorService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, vendor)
}

// List godoc
// @ID           listVendors
// @Summary      List vendors
// @Tags         vendors
// @Produce      json
// @Param        search query string false "Name, address or phone contains"
// @Param        mine_id query string false "Mine filter" format(uuid)
// @Param        page query int false "Page" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} APIResponse[[]partner.VendorResponse]
// @Security     BearerAuth
// @Router       /vendors [get]
func (h *VendorHandler) List(c *gin.Context) {
	var filter apppartner.ListFilter
	if !h.BindQuery(c, &filter) {
		return
	}
	vendors, total, err := h.vendorService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, vendors, total, pageOf(filter.Page), pageSizeOf(filter.PageSize))
}

// GetByID godoc
// @ID           getVendorById
// @Summary      Get vendor
// @Tags         vendors
// @Produce      json
// @Param        id path string true "Vendor ID" format(uuid)
// @Success      200 {object} APIResponse[partner.VendorResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /vendors/{id} [get]
func (h *VendorHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	vendor, err := h.vendorService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, vendor)
}

// Balance godoc
// @ID           getVendorBalance
// @Summary      Vendor balance
// @Description  Sums the remaining party payment over the vendor's intake records and blocks
// @Tags         vendors
// @Produce      json
// @Param        id path string true "Vendor ID" format(uuid)
// @Success      200 {object} APIResponse[partner.VendorBalance]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /vendors/{id}/balance [get]
func (h *VendorHandler) Balance(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	balance, err := h.vendorService.Balance(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, balance)
}

// Update godoc
// @ID           updateVendor
// @Summary      Update vendor
// @Tags         vendors
// @Accept       json
// @Produce      json
// @Param        id path string true "Vendor ID" format(uuid)
// @Param        request body partner.VendorRequest true "Vendor"
// @Success      200 {object} APIResponse[partner.VendorResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /vendors/{id} [put]
func (h *VendorHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	var req apppartner.VendorRequest
	if !h.BindJSON(c, &req) {
		return
	}
	vendor, err := h.vendorService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, vendor)
}

// Delete godoc
// @ID           deleteVendor
// @Summary      Delete vendor
// @Tags         vendors
// @Param        id path string true "Vendor ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /vendors/{id} [delete]
func (h *VendorHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.vendorService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
