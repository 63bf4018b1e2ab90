package service

import (
	"fmt"
	"math"
	"strings"
)

// Nigerian VAT applied to NG checkouts.
const nigerianVATRate = 0.075

type Money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type TaxBreakdownItem struct {
	Name        string  `json:"name"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
}

type TaxCalculation struct {
	Amount    float64            `json:"amount"`
	Rate      float64            `json:"rate"`
	Currency  string             `json:"currency"`
	Breakdown []TaxBreakdownItem `json:"breakdown"`
}

// PricedItem is one checkout line after price resolution.
type PricedItem struct {
	UnitPrice float64
	Quantity  int
	LineTotal float64
	Currency  string
}

// Round2 rounds half away from zero to 2 decimal places. Applied at every
// aggregation step, not only at the end.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// CalculateSubtotal sums line totals. All items must share one currency.
func CalculateSubtotal(items []PricedItem) (Money, error) {
	if len(items) == 0 {
		return Money{}, ErrEmptyItems
	}

	currency := items[0].Currency
	var sum float64
	for _, it := range items {
		if it.Currency != currency {
			return Money{}, fmt.Errorf("%w: %s and %s", ErrMixedCurrency, currency, it.Currency)
		}
		sum += it.LineTotal
	}

	return Money{Amount: Round2(sum), Currency: currency}, nil
}

// CalculateTax returns 7.5% VAT on the subtotal for Nigeria
// (case-insensitive country match), zero tax with an empty breakdown for
// everyone else.
func CalculateTax(country string, subtotal Money) TaxCalculation {
	if !strings.EqualFold(strings.TrimSpace(country), "NG") {
		return TaxCalculation{
			Amount:    0,
			Rate:      0,
			Currency:  subtotal.Currency,
			Breakdown: []TaxBreakdownItem{},
		}
	}

	vat := Round2(subtotal.Amount * nigerianVATRate)
	return TaxCalculation{
		Amount:   vat,
		Rate:     nigerianVATRate,
		Currency: "NGN",
		Breakdown: []TaxBreakdownItem{
			{
				Name:        "VAT",
				Rate:        nigerianVATRate,
				Amount:      vat,
				Description: "Value Added Tax",
			},
		},
	}
}
