package block

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stonetrade/backend/internal/domain/costing"
	"github.com/stonetrade/backend/internal/domain/shared"
)

// Block is a raw quarry block bought by volume.
// Front and back faces are measured separately and priced together at a board-foot rate.
type Block struct {
	shared.BaseAggregateRoot
	BlockNumber           string                                 `gorm:"type:varchar(50);index"`
	VendorID              *uuid.UUID                             `gorm:"type:uuid;index"`
	MineID                *uuid.UUID                             `gorm:"type:uuid;index"`
	Munim                 string                                 `gorm:"type:varchar(100)"`
	Date                  time.Time                              `gorm:"type:date;not null;index"`
	FrontL                decimal.Decimal                        `gorm:"column:front_l;type:decimal(18,4);not null;default:0"`
	FrontB                decimal.Decimal                        `gorm:"column:front_b;type:decimal(18,4);not null;default:0"`
	FrontH                decimal.Decimal                        `gorm:"column:front_h;type:decimal(18,4);not null;default:0"`
	BackL                 decimal.Decimal                        `gorm:"column:back_l;type:decimal(18,4);not null;default:0"`
	BackB                 decimal.Decimal                        `gorm:"column:back_b;type:decimal(18,4);not null;default:0"`
	BackH                 decimal.Decimal                        `gorm:"column:back_h;type:decimal(18,4);not null;default:0"`
	FrontVolume           decimal.Decimal                        `gorm:"type:numeric;not null;default:0"`
	BackVolume            decimal.Decimal                        `gorm:"type:numeric;not null;default:0"`
	TotalArea             decimal.Decimal                        `gorm:"type:numeric;not null;default:0"`
	Rate                  decimal.Decimal                        `gorm:"type:decimal(18,4);not null;default:0"`
	TotalCost             decimal.Decimal                        `gorm:"type:numeric;not null;default:0"`
	HydraCost             decimal.Decimal                        `gorm:"type:decimal(18,4);not null;default:0"`
	TruckCost             decimal.Decimal                        `gorm:"type:decimal(18,4);not null;default:0"`
	BlockAmount           decimal.Decimal                        `gorm:"type:numeric;not null;default:0"`
	Depreciation          decimal.Decimal                        `gorm:"type:decimal(18,4);not null;default:0"`
	FinalTotal            decimal.Decimal                        `gorm:"type:numeric;not null;default:0"`
	ReceivedAmount        shared.JSONSlice[costing.PaymentEntry] `gorm:"type:jsonb;not null;default:'[]'"`
	PartyRemainingPayment decimal.Decimal                        `gorm:"type:numeric;not null;default:0"`
}

// TableName returns the table name for GORM
func (Block) TableName() string {
	return "blocks"
}

// Input holds the raw, user-entered fields of a block
type Input struct {
	BlockNumber  string
	VendorID     *uuid.UUID
	MineID       *uuid.UUID
	Munim        string
	Date         time.Time
	Front        costing.Dimensions
	Back         costing.Dimensions
	Rate         decimal.Decimal
	HydraCost    decimal.Decimal
	TruckCost    decimal.Decimal
	Depreciation decimal.Decimal
	Received     []costing.PaymentEntry
}

// NewBlock creates a block. Derived fields stay zero until Recalculate.
func NewBlock(in Input) (*Block, error) {
	b := &Block{BaseAggregateRoot: shared.NewBaseAggregateRoot()}
	if err := b.apply(in); err != nil {
		return nil, err
	}
	return b, nil
}

// Update replaces every raw field
func (b *Block) Update(in Input) error {
	if err := b.apply(in); err != nil {
		return err
	}
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
	return nil
}

func (b *Block) apply(in Input) error {
	number := strings.TrimSpace(in.BlockNumber)
	if len(number) > 50 {
		return shared.NewDomainError("INVALID_BLOCK_NUMBER", "Block number cannot exceed 50 characters")
	}
	received, err := costing.NormalizePayments(in.Received)
	if err != nil {
		return err
	}
	b.BlockNumber = number
	b.VendorID = nonNilID(in.VendorID)
	b.MineID = nonNilID(in.MineID)
	b.Munim = strings.TrimSpace(in.Munim)
	b.Date = in.Date
	if b.Date.IsZero() {
		b.Date = time.Now()
	}
	front, back := in.Front.Rounded(), in.Back.Rounded()
	b.FrontL, b.FrontB, b.FrontH = front.L, front.B, front.H
	b.BackL, b.BackB, b.BackH = back.L, back.B, back.H
	b.Rate = costing.RoundInput(in.Rate)
	b.HydraCost = costing.RoundInput(in.HydraCost)
	b.TruckCost = costing.RoundInput(in.TruckCost)
	b.Depreciation = costing.RoundInput(in.Depreciation)
	b.ReceivedAmount = shared.JSONSlice[costing.PaymentEntry](received)
	return nil
}

// Front returns the front face dimensions
func (b *Block) Front() costing.Dimensions {
	return costing.Dimensions{L: b.FrontL, B: b.FrontB, H: b.FrontH}
}

// Back returns the back face dimensions
func (b *Block) Back() costing.Dimensions {
	return costing.Dimensions{L: b.BackL, B: b.BackB, H: b.BackH}
}

// Recalculate overwrites every derived field from the raw inputs.
func (b *Block) Recalculate(c *costing.Calculator) {
	b.FrontVolume = c.Area(costing.VariantRaw, b.Front())
	b.BackVolume = c.Area(costing.VariantRaw, b.Back())
	b.TotalArea = b.FrontVolume.Add(b.BackVolume)
	b.TotalCost = c.BoardCost(b.TotalArea, b.Rate)
	b.BlockAmount = c.Total(b.TotalCost, b.HydraCost, b.TruckCost)
	b.FinalTotal = c.Final(b.BlockAmount, b.Depreciation)
	b.PartyRemainingPayment = c.Remaining(b.FinalTotal, b.ReceivedAmount)
}

// AddPayment appends a received amount. A zero date means today.
func (b *Block) AddPayment(entry costing.PaymentEntry) error {
	entry, err := costing.NormalizePayment(entry)
	if err != nil {
		return err
	}
	b.ReceivedAmount = append(b.ReceivedAmount, entry)
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
	return nil
}

func nonNilID(id *uuid.UUID) *uuid.UUID {
	if id == nil || *id == uuid.Nil {
		return nil
	}
	return id
}

var _ costing.Recalculable = (*Block)(nil)
