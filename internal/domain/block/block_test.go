package block

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stonetrade/backend/internal/domain/costing"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, d(expected).Equal(actual), "expected %s, got %s", expected, actual.String())
}

func TestNewBlock(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		nilID := uuid.Nil
		b, err := NewBlock(Input{BlockNumber: " B-17 ", VendorID: &nilID})
		require.NoError(t, err)
		assert.Equal(t, "B-17", b.BlockNumber)
		assert.Nil(t, b.VendorID)
		assert.False(t, b.Date.IsZero())
	})

	t.Run("block number too long", func(t *testing.T) {
		long := make([]byte, 51)
		for i := range long {
			long[i] = 'x'
		}
		_, err := NewBlock(Input{BlockNumber: string(long)})
		assert.Error(t, err)
	})
}

func TestBlock_Recalculate(t *testing.T) {
	b, err := NewBlock(Input{
		Front:        costing.Dimensions{L: d("12"), B: d("6"), H: d("2")},
		Back:         costing.Dimensions{L: d("12"), B: d("6"), H: d("2")},
		Rate:         d("50"),
		HydraCost:    d("25"),
		TruckCost:    d("75"),
		Depreciation: d("20"),
		Received:     []costing.PaymentEntry{{Amount: d("100")}},
	})
	require.NoError(t, err)

	b.Recalculate(costing.NewCalculator())

	assertDecimal(t, "144", b.FrontVolume)
	assertDecimal(t, "144", b.BackVolume)
	assertDecimal(t, "288", b.TotalArea)
	assertDecimal(t, "100", b.TotalCost)
	assertDecimal(t, "200", b.BlockAmount)
	assertDecimal(t, "160", b.FinalTotal)
	assertDecimal(t, "60", b.PartyRemainingPayment)

	before := b.FinalTotal
	b.Recalculate(costing.NewCalculator())
	assert.True(t, before.Equal(b.FinalTotal))
}

func TestBlock_Recalculate_NegativeDimensions(t *testing.T) {
	b, err := NewBlock(Input{
		Front: costing.Dimensions{L: d("-12"), B: d("6"), H: d("2")},
		Back:  costing.Dimensions{L: d("1"), B: d("1"), H: d("1")},
		Rate:  d("144"),
	})
	require.NoError(t, err)

	b.Recalculate(costing.NewCalculator())
	assert.True(t, b.FrontVolume.IsZero())
	assertDecimal(t, "1", b.TotalCost)
}

func TestBlock_AddPayment(t *testing.T) {
	b, err := NewBlock(Input{})
	require.NoError(t, err)
	require.NoError(t, b.AddPayment(costing.PaymentEntry{Amount: d("5")}))
	assert.Len(t, b.ReceivedAmount, 1)
	assert.Error(t, b.AddPayment(costing.PaymentEntry{Amount: d("-5")}))
}

func TestBlock_Update_ValidatesReceived(t *testing.T) {
	b, err := NewBlock(Input{Rate: d("12.34567")})
	require.NoError(t, err)
	assertDecimal(t, "12.3457", b.Rate)

	err = b.Update(Input{Received: []costing.PaymentEntry{{Amount: d("0")}}})
	assert.Error(t, err)
	assert.Equal(t, 1, b.Version)

	_, err = NewBlock(Input{Received: []costing.PaymentEntry{{Amount: d("-1")}}})
	assert.Error(t, err)

	require.NoError(t, b.Update(Input{Received: []costing.PaymentEntry{{Amount: d("7")}}}))
	require.Len(t, b.ReceivedAmount, 1)
	assert.False(t, b.ReceivedAmount[0].Date.IsZero())
}
