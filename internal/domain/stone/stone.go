package stone

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stonetrade/backend/internal/domain/costing"
	"github.com/stonetrade/backend/internal/domain/shared"
)

// Stone is finished stock counted by quantity
type Stone struct {
	shared.BaseAggregateRoot
	StoneType      string          `gorm:"column:type;type:varchar(50);not null;index"`
	Date           time.Time       `gorm:"type:date;not null;index"`
	Rate           decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	TotalQuantity  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	IssuedQuantity decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	LeftQuantity   decimal.Decimal `gorm:"type:numeric;not null;default:0"`
	HydraCost      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	TotalAmount    decimal.Decimal `gorm:"type:numeric;not null;default:0"`
}

// TableName returns the table name for GORM
func (Stone) TableName() string {
	return "stones"
}

// Input holds the raw, user-entered fields of a stone entry
type Input struct {
	StoneType      string
	Date           time.Time
	Rate           decimal.Decimal
	TotalQuantity  decimal.Decimal
	IssuedQuantity decimal.Decimal
	HydraCost      decimal.Decimal
}

// NewStone creates a stone entry. The type is a free lowercase code.
func NewStone(in Input) (*Stone, error) {
	s := &Stone{BaseAggregateRoot: shared.NewBaseAggregateRoot()}
	if err := s.apply(in); err != nil {
		return nil, err
	}
	return s, nil
}

// Update replaces every raw field
func (s *Stone) Update(in Input) error {
	if err := s.apply(in); err != nil {
		return err
	}
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

func (s *Stone) apply(in Input) error {
	stoneType := strings.ToLower(strings.TrimSpace(in.StoneType))
	if stoneType == "" {
		return shared.NewDomainError("INVALID_TYPE", "Stone type cannot be empty")
	}
	if len(stoneType) > 50 {
		return shared.NewDomainError("INVALID_TYPE", "Stone type cannot exceed 50 characters")
	}
	s.StoneType = stoneType
	s.Date = in.Date
	if s.Date.IsZero() {
		s.Date = time.Now()
	}
	s.Rate = costing.RoundInput(in.Rate)
	s.TotalQuantity = costing.RoundInput(in.TotalQuantity)
	s.IssuedQuantity = costing.RoundInput(in.IssuedQuantity)
	s.HydraCost = costing.RoundInput(in.HydraCost)
	return nil
}

// Issue records quantity handed out of stock. Issuing more than the total is allowed
// and leaves a negative balance.
func (s *Stone) Issue(quantity decimal.Decimal) error {
	quantity = costing.RoundInput(quantity)
	if !quantity.IsPositive() {
		return shared.NewDomainError("INVALID_QUANTITY", "Issued quantity must be positive")
	}
	s.IssuedQuantity = s.IssuedQuantity.Add(quantity)
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// Recalculate overwrites the left quantity and total amount.
func (s *Stone) Recalculate(c *costing.Calculator) {
	s.LeftQuantity = s.TotalQuantity.Sub(s.IssuedQuantity)
	s.TotalAmount = c.Amount(s.TotalQuantity, s.Rate, s.HydraCost)
}

var _ costing.Recalculable = (*Stone)(nil)
