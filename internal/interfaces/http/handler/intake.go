package handler

import (
	"mime"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stonetrade/backend/internal/application/inventory"
	"github.com/stonetrade/backend/internal/application/printing"
	"github.com/stonetrade/backend/internal/domain/intake"
)

// IntakeHandler serves one intake kind. The three kinds share the handler and
// are mounted under their own path (todis, galas, todi-raskats).
type IntakeHandler struct {
	BaseHandler
	kind       intake.Kind
	service    *inventory.IntakeService
	statements *printing.StatementService
}

// NewIntakeHandler creates an IntakeHandler bound to kind
func NewIntakeHandler(service *inventory.IntakeService, statements *printing.StatementService, kind intake.Kind) *IntakeHandler {
	return &IntakeHandler{kind: kind, service: service, statements: statements}
}

// Kind returns the intake kind the handler serves
func (h *IntakeHandler) Kind() intake.Kind {
	return h.kind
}

// Create godoc
// @ID           createIntake
// @Summary      Create intake record
// @Description  Stores the raw fields and returns the record with every derived area and cost filled in
// @Tags         intake
// @Accept       json
// @Produce      json
// @Param        kind path string true "todis, galas or todi-raskats"
// @Param        request body inventory.IntakeRequest true "Record"
// @Success      201 {object} APIResponse[inventory.IntakeResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /{kind} [post]
func (h *IntakeHandler) Create(c *gin.Context) {
	var req inventory.IntakeRequest
	if !h.BindJSON(c, &req) {
		return
	}
	record, err := h.service.Create(c.Request.Context(), h.kind, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, record)
}

// List godoc
// @ID           listIntake
// @Summary      List intake records
// @Tags         intake
// @Produce      json
// @Param        kind path string true "todis, galas or todi-raskats"
// @Param        search query string false "Munim or type contains"
// @Param        vendor_id query string false "Vendor filter" format(uuid)
// @Param        type query string false "Stone type"
// @Param        date_from query string false "From date (YYYY-MM-DD)"
// @Param        date_to query string false "To date (YYYY-MM-DD)"
// @Param        page query int false "Page" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Param        order_by query string false "Sort field" default(date)
// @Param        order_dir query string false "asc or desc"
// @Success      200 {object} APIResponse[[]inventory.IntakeResponse]
// @Security     BearerAuth
// @Router       /{kind} [get]
func (h *IntakeHandler) List(c *gin.Context) {
	var filter inventory.ListFilter
	if !h.BindQuery(c, &filter) {
		return
	}
	records, total, err := h.service.List(c.Request.Context(), h.kind, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, records, total, pageOf(filter.Page), pageSizeOf(filter.PageSize))
}

// GetByID godoc
// @ID           getIntakeById
// @Summary      Get intake record
// @Tags         intake
// @Produce      json
// @Param        kind path string true "todis, galas or todi-raskats"
// @Param        id path string true "Record ID" format(uuid)
// @Success      200 {object} APIResponse[inventory.IntakeResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /{kind}/{id} [get]
func (h *IntakeHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	record, err := h.service.GetByID(c.Request.Context(), h.kind, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// Update godoc
// @ID           updateIntake
// @Summary      Update intake record
// @Description  Replaces the raw fields and recomputes the derived ones. A stale version returns 409.
// @Tags         intake
// @Accept       json
// @Produce      json
// @Param        kind path string true "todis, galas or todi-raskats"
// @Param        id path string true "Record ID" format(uuid)
// @Param        request body inventory.IntakeRequest true "Record"
// @Success      200 {object} APIResponse[inventory.IntakeResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /{kind}/{id} [put]
func (h *IntakeHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	var req inventory.IntakeRequest
	if !h.BindJSON(c, &req) {
		return
	}
	record, err := h.service.Update(c.Request.Context(), h.kind, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// Delete godoc
// @ID           deleteIntake
// @Summary      Delete intake record
// @Tags         intake
// @Param        kind path string true "todis, galas or todi-raskats"
// @Param        id path string true "Record ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /{kind}/{id} [delete]
func (h *IntakeHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), h.kind, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// AddPayment godoc
// @ID           addIntakePayment
// @Summary      Record a payment
// @Description  Appends a received amount and recomputes the remaining party payment
// @Tags         intake
// @Accept       json
// @Produce      json
// @Param        kind path string true "todis, galas or todi-raskats"
// @Param        id path string true "Record ID" format(uuid)
// @Param        request body inventory.AddPaymentRequest true "Payment"
// @Success      200 {object} APIResponse[inventory.IntakeResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /{kind}/{id}/payments [post]
func (h *IntakeHandler) AddPayment(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	var req inventory.AddPaymentRequest
	if !h.BindJSON(c, &req) {
		return
	}
	record, err := h.service.AddPayment(c.Request.Context(), h.kind, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// Statement godoc
// @ID           getIntakeStatement
// @Summary      Print intake statement
// @Tags         intake
// @Produce      application/pdf
// @Produce      text/html
// @Param        kind path string true "todis, galas or todi-raskats"
// @Param        id path string true "Record ID" format(uuid)
// @Param        format query string false "pdf or html" default(pdf)
// @Success      200 {file} binary
// @Failure      404 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /{kind}/{id}/statement [get]
func (h *IntakeHandler) Statement(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	format, err := printing.ParseFormat(c.Query("format"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	doc, err := h.statements.IntakeStatement(c.Request.Context(), h.kind, id, format)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	sendDocument(c, doc)
}

// ArchiveStatement godoc
// @ID           archiveIntakeStatement
// @Summary      Archive intake statement
// @Description  Renders the PDF statement, stores it and returns a time-limited download URL
// @Tags         intake
// @Produce      json
// @Param        kind path string true "todis, galas or todi-raskats"
// @Param        id path string true "Record ID" format(uuid)
// @Success      201 {object} APIResponse[printing.ArchiveResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /{kind}/{id}/statement/archive [post]
func (h *IntakeHandler) ArchiveStatement(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	archived, err := h.statements.ArchiveIntakeStatement(c.Request.Context(), h.kind, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, archived)
}

// sendDocument writes a rendered statement. PDFs download as attachments; HTML renders inline.
func sendDocument(c *gin.Context, doc *printing.Document) {
	disposition := "inline"
	if doc.ContentType == "application/pdf" {
		disposition = "attachment"
	}
	c.Header("Content-Disposition", mime.FormatMediaType(disposition, map[string]string{"filename": doc.Filename}))
	if doc.PageCount > 0 {
		c.Header("X-Page-Count", strconv.Itoa(doc.PageCount))
	}
	c.Data(http.StatusOK, doc.ContentType, doc.Data)
}
