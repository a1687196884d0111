package costing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Variant selects the area formula
type Variant int

const (
	// VariantRaw is l × b × h.
	VariantRaw Variant = iota
	// VariantBoard is (l × b × h) / 144, converting square inches to square feet.
	VariantBoard
)

var boardDivisor = decimal.NewFromInt(144)

// String returns the configuration name of the variant
func (v Variant) String() string {
	switch v {
	case VariantRaw:
		return "raw"
	case VariantBoard:
		return "board"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// ParseVariant parses "raw" or "board" (case-insensitive)
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "raw":
		return VariantRaw, nil
	case "board":
		return VariantBoard, nil
	default:
		return VariantRaw, fmt.Errorf("unknown area variant %q", s)
	}
}

// Dimensions are the length, breadth and height of a measured piece
type Dimensions struct {
	L decimal.Decimal `json:"l"`
	B decimal.Decimal `json:"b"`
	H decimal.Decimal `json:"h"`
}

// Rounded returns d with each side rounded to InputScale
func (d Dimensions) Rounded() Dimensions {
	return Dimensions{L: RoundInput(d.L), B: RoundInput(d.B), H: RoundInput(d.H)}
}

// Area computes the area of d under variant v. Negative dimensions count as zero.
func (c *Calculator) Area(v Variant, d Dimensions) decimal.Decimal {
	area := NonNegative(d.L).Mul(NonNegative(d.B)).Mul(NonNegative(d.H))
	if v == VariantBoard {
		area = area.Div(boardDivisor)
	}
	return c.roundArea(area)
}
