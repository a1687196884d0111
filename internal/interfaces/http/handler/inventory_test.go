package handler

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/stonetrade/backend/internal/application/inventory"
	"github.com/stonetrade/backend/internal/application/report"
	"github.com/stonetrade/backend/internal/interfaces/http/dto"
)

func workedBlock(vendorID, mineID string) map[string]any {
	return map[string]any{
		"block_number":    "B-17",
		"vendor_id":       vendorID,
		"mine_id":         mineID,
		"munim":           "Mohan",
		"date":            "2026-03-10",
		"front":           map[string]any{"l": 2, "b": 3, "h": 4},
		"back":            map[string]any{"l": 1, "b": 1, "h": 1},
		"rate":            144,
		"hydra_cost":      "10",
		"depreciation":    20,
		"received_amount": []map[string]any{{"amount": 8}},
	}
}

// =============================================================================
// Blocks
// =============================================================================

func TestBlockHandler_Lifecycle(t *testing.T) {
	env := newTestEnv(t)
	mine := env.createMine("Rajnagar")
	vendor := env.createVendor("Shyam Stones", &mine.ID)

	w := env.do(http.MethodPost, "/api/v1/blocks", env.staffToken, workedBlock(vendor.ID.String(), mine.ID.String()))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	blk := decode[inventory.BlockResponse](t, w)
	assertDecimal(t, "24", blk.FrontVolume)
	assertDecimal(t, "25", blk.TotalArea)
	assertDecimal(t, "25", blk.TotalCost)
	assertDecimal(t, "35", blk.BlockAmount)
	assertDecimal(t, "28", blk.FinalTotal)
	assertDecimal(t, "20", blk.PartyRemainingPayment)

	w = env.do(http.MethodPost, "/api/v1/blocks/"+blk.ID.String()+"/payments", env.staffToken, map[string]any{"amount": 30})
	require.Equal(t, http.StatusOK, w.Code)
	// overpayment is kept as a negative balance
	assertDecimal(t, "-10", decode[inventory.BlockResponse](t, w).PartyRemainingPayment)

	w = env.do(http.MethodGet, "/api/v1/blocks?mine_id="+mine.ID.String(), env.staffToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]inventory.BlockResponse](t, w), 1)

	body := workedBlock(vendor.ID.String(), mine.ID.String())
	body["rate"] = 288
	body["version"] = 2
	w = env.do(http.MethodPut, "/api/v1/blocks/"+blk.ID.String(), env.staffToken, body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assertDecimal(t, "50", decode[inventory.BlockResponse](t, w).TotalCost)

	w = env.do(http.MethodGet, "/api/v1/blocks/"+blk.ID.String()+"/statement?format=html", env.staffToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "B-17")

	w = env.do(http.MethodPost, "/api/v1/blocks/"+blk.ID.String()+"/statement/archive", env.staffToken, nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = env.do(http.MethodDelete, "/api/v1/blocks/"+blk.ID.String(), env.adminToken, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestBlockHandler_UnknownMine(t *testing.T) {
	env := newTestEnv(t)
	vendor := env.createVendor("Shyam Stones", nil)

	w := env.do(http.MethodPost, "/api/v1/blocks", env.staffToken, workedBlock(vendor.ID.String(), vendor.ID.String()))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrCodeInvalidReference, decodeError(t, w).Code)
}

// =============================================================================
// Stones
// =============================================================================

func TestStoneHandler_CreateAndIssue(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/v1/stones", env.staffToken, map[string]any{
		"type": "Granite", "date": "2026-03-01", "rate": 4, "total_quantity": 10, "issued_quantity": 3, "hydra_cost": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	st := decode[inventory.StoneResponse](t, w)
	assert.Equal(t, "granite", st.Type)
	assertDecimal(t, "7", st.LeftQuantity)
	assertDecimal(t, "80", st.TotalAmount)

	w = env.do(http.MethodPost, "/api/v1/stones/"+st.ID.String()+"/issue", env.staffToken, map[string]any{"quantity": 9})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	issued := decode[inventory.StoneResponse](t, w)
	assertDecimal(t, "12", issued.IssuedQuantity)
	assertDecimal(t, "-2", issued.LeftQuantity)

	w = env.do(http.MethodPost, "/api/v1/stones/"+st.ID.String()+"/issue", env.staffToken, map[string]any{"quantity": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ERR_INVALID_QUANTITY", decodeError(t, w).Code)

	w = env.do(http.MethodGet, "/api/v1/stones?type=GRANITE", env.staffToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]inventory.StoneResponse](t, w), 1)

	w = env.do(http.MethodGet, "/api/v1/stones?type=marble", env.staffToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]inventory.StoneResponse](t, w))
}

func TestStoneHandler_RequiresType(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/v1/stones", env.staffToken, map[string]any{"rate": 4})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrCodeValidation, decodeError(t, w).Code)
}

// =============================================================================
// Exports
// =============================================================================

func TestExportHandler_Export(t *testing.T) {
	env := newTestEnv(t)
	vendor := env.createVendor("Shyam Stones", nil)
	body := workedTodi()
	body["vendor_id"] = vendor.ID.String()
	env.createTodi(body)

	w := env.do(http.MethodGet, "/api/v1/exports/todis.xlsx", env.staffToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, report.ContentTypeXLSX, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "todis-")
	assert.Equal(t, "1", w.Header().Get("X-Row-Count"))

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetList()[0])
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 2)
	assert.Contains(t, rows[1], "Shyam Stones")

	w = env.do(http.MethodGet, "/api/v1/exports/vendors", env.staffToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-Row-Count"))
}

func TestExportHandler_UnknownCollection(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/v1/exports/customers.xlsx", env.staffToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ERR_INVALID_COLLECTION", decodeError(t, w).Code)

	w = env.do(http.MethodGet, "/api/v1/exports", env.staffToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, report.Collections(), decode[ExportCollectionsResponse](t, w).Collections)
}

// =============================================================================
// Maintenance
// =============================================================================

func TestAdminHandler_Recalculate(t *testing.T) {
	env := newTestEnv(t)
	rec := env.createTodi(workedTodi())

	// drift a derived field behind the application's back
	require.NoError(t, env.db.Exec("UPDATE intake_records SET final_cost = ? WHERE id = ?", "1", rec.ID).Error)

	w := env.do(http.MethodPost, "/api/v1/admin/recalculate", env.staffToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(http.MethodPost, "/api/v1/admin/recalculate", env.adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	result := decode[RecalculateResponse](t, w)
	assert.Equal(t, 1, result.Scanned["todis"])
	assert.Equal(t, 1, result.Changed["todis"])

	w = env.do(http.MethodGet, "/api/v1/todis/"+rec.ID.String(), env.staffToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assertDecimal(t, "12.49", decode[inventory.IntakeResponse](t, w).FinalCost)

	// a second sweep finds nothing to change
	w = env.do(http.MethodPost, "/api/v1/admin/recalculate", env.adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, decode[RecalculateResponse](t, w).Changed["todis"])
}

// =============================================================================
// System
// =============================================================================

func TestSystemHandler_Health(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	health := decode[HealthResponse](t, w)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "up", health.Checks["database"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = env.do(http.MethodGet, "/api/v1/system/info", env.staffToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Stone Trade API", decode[SystemInfoResponse](t, w).Name)
}
