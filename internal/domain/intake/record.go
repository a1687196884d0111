package intake

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stonetrade/backend/internal/domain/costing"
	"github.com/stonetrade/backend/internal/domain/shared"
)

// Record is a todi, gala or todi raskat purchase.
// Groups carry the measured blocks; the top-level dimensions are used only when there are no groups.
type Record struct {
	shared.BaseAggregateRoot
	Kind                  Kind                                   `gorm:"type:varchar(20);not null;index"`
	StoneType             string                                 `gorm:"column:type;type:varchar(50);index"`
	VendorID              *uuid.UUID                             `gorm:"type:uuid;index"`
	Munim                 string                                 `gorm:"type:varchar(100)"`
	Date                  time.Time                              `gorm:"type:date;not null;index"`
	L                     decimal.Decimal                        `gorm:"column:l;type:decimal(18,4);not null;default:0"`
	B                     decimal.Decimal                        `gorm:"column:b;type:decimal(18,4);not null;default:0"`
	H                     decimal.Decimal                        `gorm:"column:h;type:decimal(18,4);not null;default:0"`
	MaterialCost          decimal.Decimal                        `gorm:"type:decimal(18,4);not null;default:0"`
	HydraCost             decimal.Decimal                        `gorm:"type:decimal(18,4);not null;default:0"`
	TruckCost             decimal.Decimal                        `gorm:"type:decimal(18,4);not null;default:0"`
	TotalArea             decimal.Decimal                        `gorm:"type:numeric;not null;default:0"`
	TotalCost             decimal.Decimal                        `gorm:"type:numeric;not null;default:0"`
	TotalBlockCost        decimal.Decimal                        `gorm:"type:numeric;not null;default:0"`
	EstimateCost          decimal.Decimal                        `gorm:"type:numeric;not null;default:0"`
	Depreciation          decimal.Decimal                        `gorm:"type:decimal(18,4);not null;default:0"`
	FinalCost             decimal.Decimal                        `gorm:"type:numeric;not null;default:0"`
	Groups                shared.JSONSlice[costing.Group]        `gorm:"type:jsonb;not null;default:'[]'"`
	ReceivedAmount        shared.JSONSlice[costing.PaymentEntry] `gorm:"type:jsonb;not null;default:'[]'"`
	PartyRemainingPayment decimal.Decimal                        `gorm:"type:numeric;not null;default:0"`
}

// TableName returns the table name for GORM
func (Record) TableName() string {
	return "intake_records"
}

// Input holds the raw, user-entered fields of a record
type Input struct {
	StoneType    string
	VendorID     *uuid.UUID
	Munim        string
	Date         time.Time
	Dimensions   costing.Dimensions
	MaterialCost decimal.Decimal
	HydraCost    decimal.Decimal
	TruckCost    decimal.Decimal
	Depreciation decimal.Decimal
	Groups       []costing.Group
	Received     []costing.PaymentEntry
}

// NewRecord creates a record of the given kind. Derived fields stay zero until Recalculate.
func NewRecord(kind Kind, in Input) (*Record, error) {
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_KIND", "Unknown intake kind: "+string(kind))
	}
	r := &Record{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Kind:              kind,
	}
	if err := r.apply(in); err != nil {
		return nil, err
	}
	return r, nil
}

// Update replaces every raw field. Received payments are replaced too.
// On error the record is left unchanged.
func (r *Record) Update(in Input) error {
	if err := r.apply(in); err != nil {
		return err
	}
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	return nil
}

// apply copies the raw fields, rounded to their stored scale.
// Received entries follow the same rules as AddPayment.
func (r *Record) apply(in Input) error {
	received, err := costing.NormalizePayments(in.Received)
	if err != nil {
		return err
	}
	r.StoneType = strings.ToLower(strings.TrimSpace(in.StoneType))
	r.VendorID = in.VendorID
	if r.VendorID != nil && *r.VendorID == uuid.Nil {
		r.VendorID = nil
	}
	r.Munim = strings.TrimSpace(in.Munim)
	r.Date = in.Date
	if r.Date.IsZero() {
		r.Date = time.Now()
	}
	dims := in.Dimensions.Rounded()
	r.L, r.B, r.H = dims.L, dims.B, dims.H
	r.MaterialCost = costing.RoundInput(in.MaterialCost)
	r.HydraCost = costing.RoundInput(in.HydraCost)
	r.TruckCost = costing.RoundInput(in.TruckCost)
	r.Depreciation = costing.RoundInput(in.Depreciation)
	r.Groups = shared.JSONSlice[costing.Group](costing.NormalizeGroups(in.Groups))
	r.ReceivedAmount = shared.JSONSlice[costing.PaymentEntry](received)
	return nil
}

// Dimensions returns the record's own l, b and h
func (r *Record) Dimensions() costing.Dimensions {
	return costing.Dimensions{L: r.L, B: r.B, H: r.H}
}

// Variant is the area formula used for this record under c
func (r *Record) Variant(c *costing.Calculator) costing.Variant {
	return c.VariantFor(string(r.Kind), costing.VariantBoard)
}

// Recalculate overwrites every derived field from the raw inputs.
// TotalBlockCost is the grand total of the group costs, or area × TotalCost
// when the record has no groups.
func (r *Record) Recalculate(c *costing.Calculator) {
	v := r.Variant(c)
	groupArea, groupCost := c.RollUpGroups(r.Groups, v, r.MaterialCost)
	if len(r.Groups) > 0 {
		r.TotalArea = groupArea
	} else {
		r.TotalArea = c.Area(v, r.Dimensions())
	}
	r.TotalCost = costing.Sum(r.MaterialCost, r.HydraCost, r.TruckCost)
	r.EstimateCost = c.Estimate(r.TotalArea, r.TotalCost)
	if len(r.Groups) > 0 {
		r.TotalBlockCost = groupCost
	} else {
		r.TotalBlockCost = r.EstimateCost
	}
	r.FinalCost = c.Final(r.EstimateCost, r.Depreciation)
	r.PartyRemainingPayment = c.Remaining(r.FinalCost, r.ReceivedAmount)
}

// AddPayment appends a received amount. A zero date means today.
func (r *Record) AddPayment(entry costing.PaymentEntry) error {
	entry, err := costing.NormalizePayment(entry)
	if err != nil {
		return err
	}
	r.ReceivedAmount = append(r.ReceivedAmount, entry)
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	return nil
}

// TotalReceived sums the payments received so far
func (r *Record) TotalReceived() decimal.Decimal {
	return costing.TotalReceived(r.ReceivedAmount)
}

var _ costing.Recalculable = (*Record)(nil)
