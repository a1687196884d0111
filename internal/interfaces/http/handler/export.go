package handler

import (
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stonetrade/backend/internal/application/inventory"
	"github.com/stonetrade/backend/internal/application/report"
)

// ExportHandler serves spreadsheet downloads
type ExportHandler struct {
	BaseHandler
	exportService *report.ExportService
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(exportService *report.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportCollectionsResponse lists what can be exported
// @name HandlerExportCollectionsResponse
type ExportCollectionsResponse struct {
	Collections []string `json:"collections"`
}

// Collections godoc
// @ID           listExportCollections
// @Summary      List exportable collections
// @Tags         exports
// @Produce      json
// @Success      200 {object} APIResponse[ExportCollectionsResponse]
// @Security     BearerAuth
// @Router       /exports [get]
func (h *ExportHandler) Collections(c *gin.Context) {
	h.Success(c, ExportCollectionsResponse{Collections: report.Collections()})
}

// Export godoc
// @ID           exportCollection
// @Summary      Export collection
// @Description  Downloads one collection as an XLSX workbook. The .xlsx suffix is optional.
// @Tags         exports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        collection path string true "todis, galas, todi-raskats, blocks, stones, vendors or labour"
// @Param        search query string false "Search term"
// @Param        vendor_id query string false "Vendor filter" format(uuid)
// @Param        mine_id query string false "Mine filter" format(uuid)
// @Param        date_from query string false "From date (YYYY-MM-DD)"
// @Param        date_to query string false "To date (YYYY-MM-DD)"
// @Success      200 {file} binary
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /exports/{collection} [get]
func (h *ExportHandler) Export(c *gin.Context) {
	collection := strings.TrimSuffix(strings.ToLower(c.Param("collection")), ".xlsx")

	var filter inventory.ListFilter
	if !h.BindQuery(c, &filter) {
		return
	}

	file, err := h.exportService.Export(c.Request.Context(), collection, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": file.Filename}))
	c.Header("X-Row-Count", strconv.Itoa(file.Rows))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
