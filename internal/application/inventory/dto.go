package inventory

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stonetrade/backend/internal/domain/block"
	"github.com/stonetrade/backend/internal/domain/costing"
	"github.com/stonetrade/backend/internal/domain/intake"
	"github.com/stonetrade/backend/internal/domain/shared"
	"github.com/stonetrade/backend/internal/domain/stone"
)

// dateLayout is the calendar date format used on the wire
const dateLayout = "2006-01-02"

// Date is a calendar date that also accepts RFC 3339 timestamps and null.
type Date struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		d.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return shared.NewDomainError("INVALID_DATE", "Date must be YYYY-MM-DD or RFC 3339: "+s)
	}
	d.Time = t
	return nil
}

// MarshalJSON implements json.Marshaler
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(dateLayout))
}

// =============================================================================
// Shared inputs
// =============================================================================

// DimensionsInput holds l, b and h as entered
type DimensionsInput struct {
	L costing.Number `json:"l"`
	B costing.Number `json:"b"`
	H costing.Number `json:"h"`
}

func (d DimensionsInput) toDimensions() costing.Dimensions {
	return costing.Dimensions{L: d.L.Decimal, B: d.B.Decimal, H: d.H.Decimal}
}

// MeasureInput is one measured piece. Area and cost are always computed server-side.
type MeasureInput struct {
	L    costing.Number  `json:"l"`
	B    costing.Number  `json:"b"`
	H    costing.Number  `json:"h"`
	Rate *costing.Number `json:"rate"`
}

// BlockInput is a labelled list of measures
type BlockInput struct {
	Label    string         `json:"label" binding:"max=100"`
	Measures []MeasureInput `json:"measures" binding:"dive"`
}

// GroupInput is a delivery of blocks with its own hydra and truck charges
type GroupInput struct {
	HydraCost costing.Number `json:"hydra_cost"`
	TruckCost costing.Number `json:"truck_cost"`
	Date      *Date          `json:"date"`
	Blocks    []BlockInput   `json:"blocks" binding:"dive"`
}

// PaymentInput is one received amount
type PaymentInput struct {
	Amount      costing.Number `json:"amount"`
	Date        Date           `json:"date"`
	Description string         `json:"description" binding:"max=500"`
}

func (p PaymentInput) toEntry() costing.PaymentEntry {
	return costing.PaymentEntry{
		Amount:      p.Amount.Decimal,
		Date:        p.Date.Time,
		Description: p.Description,
	}
}

func toGroups(in []GroupInput) []costing.Group {
	if in == nil {
		return nil
	}
	groups := make([]costing.Group, len(in))
	for i, g := range in {
		groups[i] = costing.Group{
			HydraCost: g.HydraCost.Decimal,
			TruckCost: g.TruckCost.Decimal,
			Blocks:    make([]costing.Block, len(g.Blocks)),
		}
		if g.Date != nil && !g.Date.IsZero() {
			t := g.Date.Time
			groups[i].Date = &t
		}
		for j, b := range g.Blocks {
			measures := make([]costing.Measure, len(b.Measures))
			for k, m := range b.Measures {
				measures[k] = costing.Measure{L: m.L.Decimal, B: m.B.Decimal, H: m.H.Decimal}
				if m.Rate != nil {
					rate := m.Rate.Decimal
					measures[k].Rate = &rate
				}
			}
			groups[i].Blocks[j] = costing.Block{Label: b.Label, Measures: measures}
		}
	}
	return groups
}

func toEntries(in []PaymentInput) []costing.PaymentEntry {
	if in == nil {
		return nil
	}
	entries := make([]costing.PaymentEntry, len(in))
	for i, p := range in {
		entries[i] = p.toEntry()
	}
	return entries
}

// AddPaymentRequest appends one received amount to a record
type AddPaymentRequest struct {
	Amount      costing.Number `json:"amount"`
	Date        Date           `json:"date"`
	Description string         `json:"description" binding:"max=500"`
}

func (r AddPaymentRequest) toEntry() costing.PaymentEntry {
	return PaymentInput(r).toEntry()
}

// ListFilter represents the query options shared by the inventory lists
type ListFilter struct {
	Search   string     `form:"search"`
	VendorID string     `form:"vendor_id" binding:"omitempty,uuid"`
	MineID   string     `form:"mine_id" binding:"omitempty,uuid"`
	Type     string     `form:"type"`
	DateFrom *time.Time `form:"date_from" time_format:"2006-01-02"`
	DateTo   *time.Time `form:"date_to" time_format:"2006-01-02"`
	Page     int        `form:"page" binding:"omitempty,min=1"`
	PageSize int        `form:"page_size" binding:"omitempty,min=1,max=1000"`
	OrderBy  string     `form:"order_by"`
	OrderDir string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

func (f ListFilter) toDomain() shared.Filter {
	filter := shared.DefaultFilter()
	if f.Page > 0 {
		filter.Page = f.Page
	}
	if f.PageSize > 0 {
		filter.PageSize = f.PageSize
	}
	if f.OrderBy != "" {
		filter.OrderBy = f.OrderBy
	} else {
		filter.OrderBy = "date"
	}
	if f.OrderDir != "" {
		filter.OrderDir = f.OrderDir
	}
	filter.Search = f.Search
	filter.DateFrom = f.DateFrom
	filter.DateTo = f.DateTo
	if id, err := uuid.Parse(f.VendorID); err == nil {
		filter.Filters["vendor_id"] = id
	}
	if id, err := uuid.Parse(f.MineID); err == nil {
		filter.Filters["mine_id"] = id
	}
	if t := strings.ToLower(strings.TrimSpace(f.Type)); t != "" {
		filter.Filters["type"] = t
	}
	return filter
}

// =============================================================================
// Intake records (todi, gala, todi raskat)
// =============================================================================

// IntakeRequest carries the raw fields of an intake record.
// Derived fields are not accepted; they are recomputed on every save.
type IntakeRequest struct {
	Type           string          `json:"type" binding:"max=50"`
	VendorID       *uuid.UUID      `json:"vendor_id"`
	Munim          string          `json:"munim" binding:"max=100"`
	Date           Date            `json:"date"`
	Dimensions     DimensionsInput `json:"dimensions"`
	MaterialCost   costing.Number  `json:"material_cost"`
	HydraCost      costing.Number  `json:"hydra_cost"`
	TruckCost      costing.Number  `json:"truck_cost"`
	Depreciation   costing.Number  `json:"depreciation"`
	Groups         []GroupInput    `json:"groups" binding:"dive"`
	ReceivedAmount []PaymentInput  `json:"received_amount" binding:"dive"`
	Version        *int            `json:"version"` // Expected version on update; omitted skips the check
}

func (r IntakeRequest) toInput() intake.Input {
	return intake.Input{
		StoneType:    r.Type,
		VendorID:     r.VendorID,
		Munim:        r.Munim,
		Date:         r.Date.Time,
		Dimensions:   r.Dimensions.toDimensions(),
		MaterialCost: r.MaterialCost.Decimal,
		HydraCost:    r.HydraCost.Decimal,
		TruckCost:    r.TruckCost.Decimal,
		Depreciation: r.Depreciation.Decimal,
		Groups:       toGroups(r.Groups),
		Received:     toEntries(r.ReceivedAmount),
	}
}

// PreviewRequest runs the intake roll-up without saving
type PreviewRequest struct {
	Kind string `json:"kind" binding:"omitempty,intake_kind"`
	IntakeRequest
}

// IntakeResponse represents an intake record in API responses
type IntakeResponse struct {
	ID                    uuid.UUID              `json:"id"`
	Kind                  string                 `json:"kind"`
	Type                  string                 `json:"type"`
	VendorID              *uuid.UUID             `json:"vendor_id"`
	Munim                 string                 `json:"munim"`
	Date                  Date                   `json:"date"`
	Dimensions            costing.Dimensions     `json:"dimensions"`
	MaterialCost          decimal.Decimal        `json:"material_cost"`
	HydraCost             decimal.Decimal        `json:"hydra_cost"`
	TruckCost             decimal.Decimal        `json:"truck_cost"`
	TotalArea             decimal.Decimal        `json:"total_area"`
	TotalCost             decimal.Decimal        `json:"total_cost"`
	TotalBlockCost        decimal.Decimal        `json:"total_block_cost"`
	EstimateCost          decimal.Decimal        `json:"estimate_cost"`
	Depreciation          decimal.Decimal        `json:"depreciation"`
	FinalCost             decimal.Decimal        `json:"final_cost"`
	Groups                []costing.Group        `json:"groups"`
	ReceivedAmount        []costing.PaymentEntry `json:"received_amount"`
	TotalReceived         decimal.Decimal        `json:"total_received"`
	PartyRemainingPayment decimal.Decimal        `json:"party_remaining_payment"`
	CreatedAt             time.Time              `json:"created_at"`
	UpdatedAt             time.Time              `json:"updated_at"`
	Version               int                    `json:"version"`
}

// ToIntakeResponse converts a record to its response DTO
func ToIntakeResponse(r *intake.Record) IntakeResponse {
	return IntakeResponse{
		ID:                    r.ID,
		Kind:                  string(r.Kind),
		Type:                  r.StoneType,
		VendorID:              r.VendorID,
		Munim:                 r.Munim,
		Date:                  Date{r.Date},
		Dimensions:            r.Dimensions(),
		MaterialCost:          r.MaterialCost,
		HydraCost:             r.HydraCost,
		TruckCost:             r.TruckCost,
		TotalArea:             r.TotalArea,
		TotalCost:             r.TotalCost,
		TotalBlockCost:        r.TotalBlockCost,
		EstimateCost:          r.EstimateCost,
		Depreciation:          r.Depreciation,
		FinalCost:             r.FinalCost,
		Groups:                r.Groups,
		ReceivedAmount:        r.ReceivedAmount,
		TotalReceived:         r.TotalReceived(),
		PartyRemainingPayment: r.PartyRemainingPayment,
		CreatedAt:             r.CreatedAt,
		UpdatedAt:             r.UpdatedAt,
		Version:               r.Version,
	}
}

// ToIntakeResponses converts a slice of records
func ToIntakeResponses(records []intake.Record) []IntakeResponse {
	out := make([]IntakeResponse, len(records))
	for i := range records {
		out[i] = ToIntakeResponse(&records[i])
	}
	return out
}

// =============================================================================
// Blocks
// =============================================================================

// BlockRequest carries the raw fields of a quarry block
type BlockRequest struct {
	BlockNumber    string          `json:"block_number" binding:"max=50"`
	VendorID       *uuid.UUID      `json:"vendor_id"`
	MineID         *uuid.UUID      `json:"mine_id"`
	Munim          string          `json:"munim" binding:"max=100"`
	Date           Date            `json:"date"`
	Front          DimensionsInput `json:"front"`
	Back           DimensionsInput `json:"back"`
	Rate           costing.Number  `json:"rate"`
	HydraCost      costing.Number  `json:"hydra_cost"`
	TruckCost      costing.Number  `json:"truck_cost"`
	Depreciation   costing.Number  `json:"depreciation"`
	ReceivedAmount []PaymentInput  `json:"received_amount" binding:"dive"`
	Version        *int            `json:"version"`
}

func (r BlockRequest) toInput() block.Input {
	return block.Input{
		BlockNumber:  r.BlockNumber,
		VendorID:     r.VendorID,
		MineID:       r.MineID,
		Munim:        r.Munim,
		Date:         r.Date.Time,
		Front:        r.Front.toDimensions(),
		Back:         r.Back.toDimensions(),
		Rate:         r.Rate.Decimal,
		HydraCost:    r.HydraCost.Decimal,
		TruckCost:    r.TruckCost.Decimal,
		Depreciation: r.Depreciation.Decimal,
		Received:     toEntries(r.ReceivedAmount),
	}
}

// BlockResponse represents a block in API responses
type BlockResponse struct {
	ID                    uuid.UUID              `json:"id"`
	BlockNumber           string                 `json:"block_number"`
	VendorID              *uuid.UUID             `json:"vendor_id"`
	MineID                *uuid.UUID             `json:"mine_id"`
	Munim                 string                 `json:"munim"`
	Date                  Date                   `json:"date"`
	Front                 costing.Dimensions     `json:"front"`
	Back                  costing.Dimensions     `json:"back"`
	FrontVolume           decimal.Decimal        `json:"front_volume"`
	BackVolume            decimal.Decimal        `json:"back_volume"`
	TotalArea             decimal.Decimal        `json:"total_area"`
	Rate                  decimal.Decimal        `json:"rate"`
	TotalCost             decimal.Decimal        `json:"total_cost"`
	HydraCost             decimal.Decimal        `json:"hydra_cost"`
	TruckCost             decimal.Decimal        `json:"truck_cost"`
	BlockAmount           decimal.Decimal        `json:"block_amount"`
	Depreciation          decimal.Decimal        `json:"depreciation"`
	FinalTotal            decimal.Decimal        `json:"final_total"`
	ReceivedAmount        []costing.PaymentEntry `json:"received_amount"`
	PartyRemainingPayment decimal.Decimal        `json:"party_remaining_payment"`
	CreatedAt             time.Time              `json:"created_at"`
	UpdatedAt             time.Time              `json:"updated_at"`
	Version               int                    `json:"version"`
}

// ToBlockResponse converts a block to its response DTO
func ToBlockResponse(b *block.Block) BlockResponse {
	return BlockResponse{
		ID:                    b.ID,
		BlockNumber:           b.BlockNumber,
		VendorID:              b.VendorID,
		MineID:                b.MineID,
		Munim:                 b.Munim,
		Date:                  Date{b.Date},
		Front:                 b.Front(),
		Back:                  b.Back(),
		FrontVolume:           b.FrontVolume,
		BackVolume:            b.BackVolume,
		TotalArea:             b.TotalArea,
		Rate:                  b.Rate,
		TotalCost:             b.TotalCost,
		HydraCost:             b.HydraCost,
		TruckCost:             b.TruckCost,
		BlockAmount:           b.BlockAmount,
		Depreciation:          b.Depreciation,
		FinalTotal:            b.FinalTotal,
		ReceivedAmount:        b.ReceivedAmount,
		PartyRemainingPayment: b.PartyRemainingPayment,
		CreatedAt:             b.CreatedAt,
		UpdatedAt:             b.UpdatedAt,
		Version:               b.Version,
	}
}

// ToBlockResponses converts a slice of blocks
func ToBlockResponses(blocks []block.Block) []BlockResponse {
	out := make([]BlockResponse, len(blocks))
	for i := range blocks {
		out[i] = ToBlockResponse(&blocks[i])
	}
	return out
}

// =============================================================================
// Stones
// =============================================================================

// StoneRequest carries the raw fields of a stone entry
type StoneRequest struct {
	Type           string         `json:"type" binding:"required,max=50"`
	Date           Date           `json:"date"`
	Rate           costing.Number `json:"rate"`
	TotalQuantity  costing.Number `json:"total_quantity"`
	IssuedQuantity costing.Number `json:"issued_quantity"`
	HydraCost      costing.Number `json:"hydra_cost"`
	Version        *int           `json:"version"`
}

func (r StoneRequest) toInput() stone.Input {
	return stone.Input{
		StoneType:      r.Type,
		Date:           r.Date.Time,
		Rate:           r.Rate.Decimal,
		TotalQuantity:  r.TotalQuantity.Decimal,
		IssuedQuantity: r.IssuedQuantity.Decimal,
		HydraCost:      r.HydraCost.Decimal,
	}
}

// IssueStoneRequest hands quantity out of stock
type IssueStoneRequest struct {
	Quantity costing.Number `json:"quantity"`
}

// StoneResponse represents a stone entry in API responses
type StoneResponse struct {
	ID             uuid.UUID       `json:"id"`
	Type           string          `json:"type"`
	Date           Date            `json:"date"`
	Rate           decimal.Decimal `json:"rate"`
	TotalQuantity  decimal.Decimal `json:"total_quantity"`
	IssuedQuantity decimal.Decimal `json:"issued_quantity"`
	LeftQuantity   decimal.Decimal `json:"left_quantity"`
	HydraCost      decimal.Decimal `json:"hydra_cost"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	Version        int             `json:"version"`
}

// ToStoneResponse converts a stone to its response DTO
func ToStoneResponse(s *stone.Stone) StoneResponse {
	return StoneResponse{
		ID:             s.ID,
		Type:           s.StoneType,
		Date:           Date{s.Date},
		Rate:           s.Rate,
		TotalQuantity:  s.TotalQuantity,
		IssuedQuantity: s.IssuedQuantity,
		LeftQuantity:   s.LeftQuantity,
		HydraCost:      s.HydraCost,
		TotalAmount:    s.TotalAmount,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
		Version:        s.Version,
	}
}

// ToStoneResponses converts a slice of stones
func ToStoneResponses(stones []stone.Stone) []StoneResponse {
	out := make([]StoneResponse, len(stones))
	for i := range stones {
		out[i] = ToStoneResponse(&stones[i])
	}
	return out
}
