package costing

import (
	"bytes"
	"encoding/json"
	"math"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// leadingNumber matches the numeric prefix of a string, so "12.5ft" reads as 12.5.
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

const (
	// MaxIntegerDigits bounds the integer part of an accepted value; anything
	// at or above 10^MaxIntegerDigits is treated as out of range.
	MaxIntegerDigits = 14
	// InputScale is the number of decimal places raw inputs are stored with.
	InputScale = 4

	maxSignificantDigits = 40
)

// Coerce converts a loosely typed numeric input into a decimal.
// Empty, unparseable, non-finite and out-of-range values become zero. Sign is
// preserved; callers that need non-negative inputs clamp with NonNegative.
func Coerce(v any) decimal.Decimal {
	return bounded(coerce(v))
}

// RoundInput rounds a raw input to the scale it is stored with.
func RoundInput(d decimal.Decimal) decimal.Decimal {
	return d.Round(InputScale)
}

// bounded zeroes values that no column can hold. Only the exponent and digit
// count are inspected, so huge exponents never get expanded.
func bounded(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return decimal.Zero
	}
	digits := int64(d.NumDigits())
	exp := int64(d.Exponent())
	if digits > maxSignificantDigits || digits+exp > MaxIntegerDigits {
		return decimal.Zero
	}
	// below any representable fraction
	if digits+exp < -maxSignificantDigits {
		return decimal.Zero
	}
	return d
}

func coerce(v any) decimal.Decimal {
	switch x := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return x
	case *decimal.Decimal:
		if x == nil {
			return decimal.Zero
		}
		return *x
	case Number:
		return x.Decimal
	case int:
		return decimal.NewFromInt(int64(x))
	case int32:
		return decimal.NewFromInt32(x)
	case int64:
		return decimal.NewFromInt(x)
	case float32:
		return fromFloat(float64(x))
	case float64:
		return fromFloat(x)
	case json.Number:
		return parseNumeric(string(x))
	case string:
		return parseNumeric(x)
	default:
		return decimal.Zero
	}
}

// NonNegative clamps negative values to zero.
func NonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func fromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

func parseNumeric(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	if d, err := decimal.NewFromString(s); err == nil {
		return d
	}
	prefix := leadingNumber.FindString(s)
	if prefix == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(prefix)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Number is a decimal that accepts JSON numbers, numeric strings and null.
// Anything else decodes to zero instead of failing the whole request.
type Number struct {
	decimal.Decimal
}

// NewNumber builds a Number from any value Coerce understands.
func NewNumber(v any) Number {
	return Number{Decimal: Coerce(v)}
}

// UnmarshalJSON implements json.Unmarshaler
func (n *Number) UnmarshalJSON(b []byte) error {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		n.Decimal = decimal.Zero
		return nil
	}
	n.Decimal = Coerce(raw)
	return nil
}

// MarshalJSON implements json.Marshaler
func (n Number) MarshalJSON() ([]byte, error) {
	return n.Decimal.MarshalJSON()
}
