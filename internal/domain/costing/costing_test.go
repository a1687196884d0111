package costing

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, d(expected).Equal(actual), "expected %s, got %s", expected, actual.String())
}

// ==================== Coerce ====================

func TestCoerce(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"nil", nil, "0"},
		{"int", 12, "12"},
		{"int64", int64(7), "7"},
		{"float", 2.5, "2.5"},
		{"NaN", math.NaN(), "0"},
		{"infinity", math.Inf(1), "0"},
		{"numeric string", "10.25", "10.25"},
		{"padded string", "  4 ", "4"},
		{"empty string", "", "0"},
		{"garbage", "abc", "0"},
		{"numeric prefix", "12.5ft", "12.5"},
		{"negative string", "-3", "-3"},
		{"exponent", "1e2", "100"},
		{"json number", json.Number("3.75"), "3.75"},
		{"bool", true, "0"},
		{"decimal", d("1.1"), "1.1"},
		{"overflowing exponent", "1e400", "0"},
		{"huge exponent", "1e2000000000", "0"},
		{"vanishing exponent", "1e-2000000000", "0"},
		{"above storage range", "1e20", "0"},
		{"largest stored integer part", "99999999999999.9999", "99999999999999.9999"},
		{"first value out of range", "100000000000000", "0"},
		{"negative out of range", "-1e15", "0"},
		{"huge float", 1e300, "0"},
		{"huge decimal", decimal.New(1, 400), "0"},
		{"too many digits", "1.0000000000000000000000000000000000000000001", "0"},
		{"prefix with huge exponent", "1e999999999ft", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimal(t, tt.expected, Coerce(tt.input))
		})
	}
}

func TestNumber_UnmarshalJSON(t *testing.T) {
	var body struct {
		A Number `json:"a"`
		B Number `json:"b"`
		C Number `json:"c"`
		D Number `json:"d"`
		E Number `json:"e"`
		F Number `json:"f"`
		G Number `json:"g"`
	}
	err := json.Unmarshal([]byte(`{"a": 10, "b": "5.5", "c": null, "d": "x", "e": {"k": 1}, "f": 1e400, "g": "1e2000000000"}`), &body)
	require.NoError(t, err)

	assertDecimal(t, "10", body.A.Decimal)
	assertDecimal(t, "5.5", body.B.Decimal)
	assertDecimal(t, "0", body.C.Decimal)
	assertDecimal(t, "0", body.D.Decimal)
	assertDecimal(t, "0", body.E.Decimal)
	assertDecimal(t, "0", body.F.Decimal)
	assertDecimal(t, "0", body.G.Decimal)

	out, err := json.Marshal(body.B)
	require.NoError(t, err)
	assert.Equal(t, `"5.5"`, string(out))
}

func TestCalculator_Area_HugeInputIsZero(t *testing.T) {
	c := NewCalculator()
	area := c.Area(VariantBoard, Dimensions{L: Coerce("1e3000000"), B: Coerce("1"), H: Coerce("1")})
	assert.True(t, area.IsZero())
}

func TestRoundInput(t *testing.T) {
	assertDecimal(t, "10.1235", RoundInput(d("10.12345")))
	assertDecimal(t, "-2.5", RoundInput(d("-2.50004")))
	assert.True(t, d("3").Equal(Dimensions{L: d("2.99996")}.Rounded().L))
}

func TestNormalizePayments(t *testing.T) {
	out, err := NormalizePayments(nil)
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)

	out, err = NormalizePayments([]PaymentEntry{{Amount: d("1.00005")}})
	require.NoError(t, err)
	assertDecimal(t, "1.0001", out[0].Amount)
	assert.False(t, out[0].Date.IsZero())

	// rounds to zero at the stored scale
	_, err = NormalizePayments([]PaymentEntry{{Amount: d("0.00001")}})
	assert.Error(t, err)
	_, err = NormalizePayments([]PaymentEntry{{Amount: d("5")}, {Amount: d("-5")}})
	assert.Error(t, err)
}

// ==================== Area ====================

func TestCalculator_Area(t *testing.T) {
	exact := NewCalculator(WithAreaScale(-1))

	t.Run("raw variant", func(t *testing.T) {
		area := exact.Area(VariantRaw, Dimensions{L: d("10"), B: d("5"), H: d("2")})
		assertDecimal(t, "100", area)
	})

	t.Run("board variant divides by 144", func(t *testing.T) {
		area := exact.Area(VariantBoard, Dimensions{L: d("12"), B: d("12"), H: d("3")})
		assertDecimal(t, "3", area)
	})

	t.Run("negative dimensions count as zero", func(t *testing.T) {
		area := exact.Area(VariantRaw, Dimensions{L: d("-10"), B: d("5"), H: d("2")})
		assert.True(t, area.IsZero())
	})

	t.Run("default rounds to three places", func(t *testing.T) {
		area := NewCalculator().Area(VariantBoard, Dimensions{L: d("10"), B: d("5"), H: d("2")})
		assertDecimal(t, "0.694", area)
	})
}

func TestCalculator_Area_BoardMonotone(t *testing.T) {
	c := NewCalculator()
	values := []string{"0", "0.5", "1", "7", "12", "144", "1000.25"}
	fixed := d("6")
	prev := decimal.Zero
	for _, v := range values {
		area := c.Area(VariantBoard, Dimensions{L: d(v), B: fixed, H: fixed})
		assert.True(t, area.GreaterThanOrEqual(prev), "area for l=%s dropped below %s", v, prev)
		prev = area
	}
}

func TestParseVariant(t *testing.T) {
	v, err := ParseVariant("Board")
	require.NoError(t, err)
	assert.Equal(t, VariantBoard, v)

	v, err = ParseVariant("raw")
	require.NoError(t, err)
	assert.Equal(t, VariantRaw, v)

	_, err = ParseVariant("cubic")
	assert.Error(t, err)
}

// ==================== Roll-up ====================

func TestCalculator_RollUpGroup(t *testing.T) {
	c := NewCalculator(WithAreaScale(-1), WithMoneyScale(-1))
	g := Group{
		HydraCost: d("1"),
		TruckCost: d("2"),
		Blocks: []Block{
			{Measures: []Measure{
				{L: d("12"), B: d("12"), H: d("1")},
				{L: d("12"), B: d("12"), H: d("2")},
			}},
			{Measures: []Measure{
				{L: d("24"), B: d("12"), H: d("1")},
			}},
		},
	}

	c.RollUpGroup(&g, VariantBoard, d("3"))

	assertDecimal(t, "1", g.Blocks[0].Measures[0].Area)
	assertDecimal(t, "2", g.Blocks[0].Measures[1].Area)
	assertDecimal(t, "2", g.Blocks[1].Measures[0].Area)
	assertDecimal(t, "6", g.Blocks[0].Measures[0].Cost)
	assertDecimal(t, "5", g.TotalBlockArea)
	assertDecimal(t, "30", g.TotalBlockCost)
}

func TestCalculator_RollUpGroups_Empty(t *testing.T) {
	c := NewCalculator()
	area, cost := c.RollUpGroups(nil, VariantBoard, d("10"))
	assert.True(t, area.IsZero())
	assert.True(t, cost.IsZero())

	groups := []Group{{HydraCost: d("5")}}
	area, cost = c.RollUpGroups(groups, VariantBoard, d("10"))
	assert.True(t, area.IsZero())
	assert.True(t, cost.IsZero())
}

func TestCalculator_RollUpGroups_OverwritesStaleValues(t *testing.T) {
	c := NewCalculator()
	groups := []Group{{
		HydraCost:      d("50"),
		TruckCost:      d("30"),
		TotalBlockArea: d("999"),
		TotalBlockCost: d("999"),
		Blocks: []Block{{Measures: []Measure{
			{L: d("10"), B: d("5"), H: d("2"), Area: d("123"), Cost: d("456")},
		}}},
	}}

	area, cost := c.RollUpGroups(groups, VariantBoard, d("20"))
	assertDecimal(t, "0.694", area)
	assertDecimal(t, "69.4", cost)
	assertDecimal(t, "0.694", groups[0].Blocks[0].Measures[0].Area)
	assertDecimal(t, "69.4", groups[0].TotalBlockCost)
}

// ==================== Settlement ====================

func TestCalculator_Final(t *testing.T) {
	c := NewCalculator()
	assertDecimal(t, "1000", c.Final(d("1000"), decimal.Zero))
	assertDecimal(t, "800", c.Final(d("1000"), d("20")))
	assertDecimal(t, "-100", c.Final(d("1000"), d("110")))
	assertDecimal(t, "1100", c.Final(d("1000"), d("-10")))
}

func TestCalculator_Remaining(t *testing.T) {
	c := NewCalculator()
	received := []PaymentEntry{{Amount: d("300")}, {Amount: d("200")}}
	assertDecimal(t, "300", c.Remaining(d("800"), received))
	assertDecimal(t, "800", c.Remaining(d("800"), nil))
	assertDecimal(t, "-200", c.Remaining(d("300"), received))
}

func TestCalculator_Estimate(t *testing.T) {
	c := NewCalculator()
	assertDecimal(t, "69.4", c.Estimate(d("0.694"), d("100")))
	assertDecimal(t, "0", c.Estimate(decimal.Zero, d("100")))
}

func TestCalculator_VariantFor(t *testing.T) {
	c := NewCalculator(WithVariant("gala", VariantRaw))
	assert.Equal(t, VariantRaw, c.VariantFor("gala", VariantBoard))
	assert.Equal(t, VariantBoard, c.VariantFor("todi", VariantBoard))
}

func TestCalculator_BoardCostAndAmount(t *testing.T) {
	c := NewCalculator()
	assertDecimal(t, "100", c.BoardCost(d("288"), d("50")))
	assertDecimal(t, "600", c.Amount(d("10"), d("20"), d("3")))
	assertDecimal(t, "0", c.Amount())
	assertDecimal(t, "10.01", c.Total(d("5.005"), d("5")))
}
