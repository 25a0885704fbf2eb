package entities

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrLineItemReference = errors.New("line item requires a product reference")
	ErrLineItemQuantity  = errors.New("line item quantity must be greater than zero")
	ErrLineItemRate      = errors.New("line item rate must not be negative")
	ErrLineItemTaxRate   = errors.New("line item tax rate must not be negative")
)

// TaxComponent is one tax slice applied to a line (e.g. CGST 9% + SGST 9%).
type TaxComponent struct {
	Name string          `json:"name"`
	Rate decimal.Decimal `json:"rate"`
}

// LineItem is one quantity/rate/tax-bearing row of a Draft.
//
// RowID identifies the row inside its Draft only. It is assigned when the row
// is added so the same product can appear in several rows and each row can be
// removed independently. It never reaches the upstream payload.
type LineItem struct {
	RowID     string          `json:"row_id"`
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitRate  decimal.Decimal `json:"unit_rate"`
	Taxes     []TaxComponent  `json:"taxes,omitempty"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// NewLineItem validates the candidate row and derives its total.
func NewLineItem(rowID, productID, name string, quantity, unitRate decimal.Decimal, taxes []TaxComponent) (LineItem, error) {
	if productID == "" {
		return LineItem{}, ErrLineItemReference
	}
	if !quantity.IsPositive() {
		return LineItem{}, ErrLineItemQuantity
	}
	if unitRate.IsNegative() {
		return LineItem{}, ErrLineItemRate
	}
	for _, tax := range taxes {
		if tax.Rate.IsNegative() {
			return LineItem{}, ErrLineItemTaxRate
		}
	}

	item := LineItem{
		RowID:     rowID,
		ProductID: productID,
		Name:      name,
		Quantity:  quantity,
		UnitRate:  unitRate,
		Taxes:     taxes,
	}
	item.Recompute()
	return item, nil
}

// TaxPercent is the sum of all tax components attached to the row.
func (i LineItem) TaxPercent() decimal.Decimal {
	return SumTaxPercents(i.Taxes)
}

// Recompute refreshes the derived total from the row's inputs.
func (i *LineItem) Recompute() {
	i.LineTotal = LineTotal(i.Quantity, i.UnitRate, i.TaxPercent())
}

// LineItemPatch carries a partial row update; nil fields are left untouched.
type LineItemPatch struct {
	Name     *string
	Quantity *decimal.Decimal
	UnitRate *decimal.Decimal
	Taxes    *[]TaxComponent
}

// Apply patches the row. The patch is staged on a copy so a rejected field
// leaves the row exactly as it was, accepted fields included.
func (i *LineItem) Apply(patch LineItemPatch) error {
	next := *i
	if patch.Name != nil {
		next.Name = *patch.Name
	}
	if patch.Quantity != nil {
		if !patch.Quantity.IsPositive() {
			return ErrLineItemQuantity
		}
		next.Quantity = *patch.Quantity
	}
	if patch.UnitRate != nil {
		if patch.UnitRate.IsNegative() {
			return ErrLineItemRate
		}
		next.UnitRate = *patch.UnitRate
	}
	if patch.Taxes != nil {
		for _, tax := range *patch.Taxes {
			if tax.Rate.IsNegative() {
				return ErrLineItemTaxRate
			}
		}
		next.Taxes = *patch.Taxes
	}
	next.Recompute()
	*i = next
	return nil
}
