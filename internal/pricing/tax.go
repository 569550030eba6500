package pricing

import (
	"math"
	"strings"

	"plancheck/internal/types"
)

// genericTaxName is the label used when no better name is available: a
// single unnamed line, or multiple lines (individual names are never
// listed).
const genericTaxName = "VAT"

// TaxSummary aggregates the externally supplied tax lines of a check result
// into a single displayable figure.
type TaxSummary struct {
	Amount    int64   `json:"amount"`
	Rate      float64 `json:"rate"`
	Name      string  `json:"name"`
	Count     int     `json:"count"`
	Inclusive bool    `json:"inclusive"`
}

// FormatTax returns the aggregated tax summary, or nil when the check
// result carries no tax lines.
//
// Rates sum additively (a federal and a state tax each apply to the base,
// not to each other); the summed rate is rounded to 4 decimal places.
func FormatTax(check *types.CheckResult) *TaxSummary {
	if check == nil || len(check.Taxes) == 0 {
		return nil
	}

	var amount int64
	var rate float64
	for _, line := range check.Taxes {
		amount += line.Amount
		rate += line.Rate
	}

	name := genericTaxName
	if len(check.Taxes) == 1 {
		if n := strings.TrimSpace(check.Taxes[0].Name); n != "" {
			name = n
		}
	}

	return &TaxSummary{
		Amount:    amount,
		Rate:      math.Round(rate*10000) / 10000,
		Name:      name,
		Count:     len(check.Taxes),
		Inclusive: check.TaxInclusive,
	}
}
