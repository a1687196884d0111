package costing

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stonetrade/backend/internal/domain/shared"
)

var hundred = decimal.NewFromInt(100)

// Estimate is total area multiplied by the per-unit total cost
func (c *Calculator) Estimate(totalArea, totalCost decimal.Decimal) decimal.Decimal {
	return c.roundMoney(totalArea.Mul(totalCost))
}

// Final deducts depreciation (a percentage) from estimate.
// Out-of-range percentages are applied as given.
func (c *Calculator) Final(estimate, depreciation decimal.Decimal) decimal.Decimal {
	if depreciation.IsZero() {
		return c.roundMoney(estimate)
	}
	return c.roundMoney(estimate.Sub(depreciation.Div(hundred).Mul(estimate)))
}

// PaymentEntry is one amount received from a party
type PaymentEntry struct {
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description,omitempty"`
}

// ValidatePayment rejects zero and negative amounts
func ValidatePayment(entry PaymentEntry) error {
	if !entry.Amount.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	return nil
}

// NormalizePayment validates entry, rounds its amount and dates it today when no date is given.
func NormalizePayment(entry PaymentEntry) (PaymentEntry, error) {
	entry.Amount = RoundInput(entry.Amount)
	if err := ValidatePayment(entry); err != nil {
		return entry, err
	}
	if entry.Date.IsZero() {
		entry.Date = time.Now()
	}
	return entry, nil
}

// NormalizePayments applies NormalizePayment to every entry. A nil list becomes empty.
func NormalizePayments(entries []PaymentEntry) ([]PaymentEntry, error) {
	out := make([]PaymentEntry, 0, len(entries))
	for _, e := range entries {
		n, err := NormalizePayment(e)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// TotalReceived sums the payment amounts
func TotalReceived(received []PaymentEntry) decimal.Decimal {
	total := decimal.Zero
	for _, p := range received {
		total = total.Add(p.Amount)
	}
	return total
}

// Remaining is final minus everything received. Overpayment yields a negative value.
func (c *Calculator) Remaining(final decimal.Decimal, received []PaymentEntry) decimal.Decimal {
	return c.roundMoney(final.Sub(TotalReceived(received)))
}
