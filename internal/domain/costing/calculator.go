package costing

import (
	"github.com/shopspring/decimal"
)

const (
	// DefaultAreaScale is the number of decimal places areas are rounded to.
	DefaultAreaScale = 3
	// DefaultMoneyScale is the number of decimal places money amounts are rounded to.
	DefaultMoneyScale = 2
)

// Calculator performs every area, cost and payment computation.
// It is immutable after construction and safe for concurrent use.
type Calculator struct {
	areaScale  int32
	moneyScale int32
	variants   map[string]Variant
}

// Option configures a Calculator
type Option func(*Calculator)

// WithAreaScale sets the rounding scale for areas. A negative scale disables rounding.
func WithAreaScale(scale int) Option {
	return func(c *Calculator) {
		c.areaScale = int32(scale)
	}
}

// WithMoneyScale sets the rounding scale for money. A negative scale disables rounding.
func WithMoneyScale(scale int) Option {
	return func(c *Calculator) {
		c.moneyScale = int32(scale)
	}
}

// WithVariant overrides the area variant used for records of the given kind.
func WithVariant(kind string, v Variant) Option {
	return func(c *Calculator) {
		c.variants[kind] = v
	}
}

// NewCalculator creates a Calculator with the default scales
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{
		areaScale:  DefaultAreaScale,
		moneyScale: DefaultMoneyScale,
		variants:   make(map[string]Variant),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultCalculator = NewCalculator()

// Default returns the shared calculator with default settings.
func Default() *Calculator {
	return defaultCalculator
}

// VariantFor returns the configured variant for kind, or fallback when none is set.
func (c *Calculator) VariantFor(kind string, fallback Variant) Variant {
	if v, ok := c.variants[kind]; ok {
		return v
	}
	return fallback
}

// AreaScale returns the configured area rounding scale
func (c *Calculator) AreaScale() int {
	return int(c.areaScale)
}

// MoneyScale returns the configured money rounding scale
func (c *Calculator) MoneyScale() int {
	return int(c.moneyScale)
}

func (c *Calculator) roundArea(d decimal.Decimal) decimal.Decimal {
	if c.areaScale < 0 {
		return d
	}
	return d.Round(c.areaScale)
}

func (c *Calculator) roundMoney(d decimal.Decimal) decimal.Decimal {
	if c.moneyScale < 0 {
		return d
	}
	return d.Round(c.moneyScale)
}

// Recalculable is implemented by records whose derived fields are computed
// from their raw inputs. Recalculate must overwrite every derived field.
type Recalculable interface {
	Recalculate(c *Calculator)
}
