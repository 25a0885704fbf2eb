package request

import (
	"strings"

	"corpculture/internal/usecase"
)

// DraftRequest opens an editing session. RemoteID is set when the session
// edits an existing upstream document instead of composing a new one.
type DraftRequest struct {
	Kind     string `json:"kind" binding:"required"`
	RemoteID string `json:"remote_id"`
}

func (r DraftRequest) ResolveKind() string {
	return strings.TrimSpace(r.Kind)
}

func (r DraftRequest) ResolveRemoteID() string {
	return strings.TrimSpace(r.RemoteID)
}

// HeaderFieldRequest sets one header field on a draft. Value may be empty to
// clear the field.
type HeaderFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

type TaxComponentRequest struct {
	Name string `json:"name"`
	Rate string `json:"rate"`
}

// LineItemRequest is a candidate row. Quantity and rate are free-text form
// input and are parsed downstream.
type LineItemRequest struct {
	ProductID string                `json:"product_id"`
	Name      string                `json:"name"`
	Quantity  string                `json:"quantity" binding:"required"`
	Rate      string                `json:"rate" binding:"required"`
	Taxes     []TaxComponentRequest `json:"taxes"`
	GroupID   string                `json:"group_id"`
}

func (r LineItemRequest) ToInput() usecase.LineItemInput {
	return usecase.LineItemInput{
		ProductID: r.ProductID,
		Name:      r.Name,
		Quantity:  r.Quantity,
		UnitRate:  r.Rate,
		Taxes:     toTaxInputs(r.Taxes),
		GroupID:   strings.TrimSpace(r.GroupID),
	}
}

// LineItemUpdateRequest is a partial row edit; absent fields stay untouched.
type LineItemUpdateRequest struct {
	Name     *string                `json:"name"`
	Quantity *string                `json:"quantity"`
	Rate     *string                `json:"rate"`
	Taxes    *[]TaxComponentRequest `json:"taxes"`
}

func (r LineItemUpdateRequest) ToUpdate() usecase.LineItemUpdate {
	update := usecase.LineItemUpdate{
		Name:     r.Name,
		Quantity: r.Quantity,
		UnitRate: r.Rate,
	}
	if r.Taxes != nil {
		taxes := toTaxInputs(*r.Taxes)
		update.Taxes = &taxes
	}
	return update
}

type GroupRequest struct {
	Name string `json:"name" binding:"required"`
}

func (r GroupRequest) ResolveName() string {
	return strings.TrimSpace(r.Name)
}

func toTaxInputs(taxes []TaxComponentRequest) []usecase.TaxComponentInput {
	if len(taxes) == 0 {
		return nil
	}
	inputs := make([]usecase.TaxComponentInput, 0, len(taxes))
	for _, tax := range taxes {
		inputs = append(inputs, usecase.TaxComponentInput{Name: tax.Name, Rate: tax.Rate})
	}
	return inputs
}
