package entities

import (
	"strings"

	"github.com/shopspring/decimal"
)

var decimalOneHundred = decimal.NewFromInt(100)

// Totals are the derived financials of a draft. No intermediate rounding is
// applied; values are rounded to 2 decimal places only when rendered or
// submitted.
type Totals struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// LineTotal computes quantity * rate * (1 + taxPercent/100).
func LineTotal(quantity, unitRate, taxPercent decimal.Decimal) decimal.Decimal {
	base := quantity.Mul(unitRate)
	return base.Add(base.Mul(taxPercent).Div(decimalOneHundred))
}

// SumTaxPercents folds the rates of all components into the effective percent.
func SumTaxPercents(taxes []TaxComponent) decimal.Decimal {
	sum := decimal.Zero
	for _, tax := range taxes {
		sum = sum.Add(tax.Rate)
	}
	return sum
}

// ComputeTotals derives subtotal, tax and grand total for a set of rows.
func ComputeTotals(items []LineItem) Totals {
	totals := Totals{Subtotal: decimal.Zero, Tax: decimal.Zero, GrandTotal: decimal.Zero}
	for _, item := range items {
		base := item.Quantity.Mul(item.UnitRate)
		tax := base.Mul(item.TaxPercent()).Div(decimalOneHundred)
		totals.Subtotal = totals.Subtotal.Add(base)
		totals.Tax = totals.Tax.Add(tax)
	}
	totals.GrandTotal = totals.Subtotal.Add(totals.Tax)
	return totals
}

// ParseAmount turns free-text numeric input into a decimal. Empty or
// non-numeric input parses to zero so live previews keep recomputing;
// submission-time validation still rejects invalid rows.
func ParseAmount(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return value
}
