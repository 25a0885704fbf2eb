package response

import (
	"time"

	"corpculture/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type TaxComponentResponse struct {
	Name string  `json:"name"`
	Rate float64 `json:"rate"`
}

type LineItemResponse struct {
	RowID     string                 `json:"row_id"`
	ProductID string                 `json:"product_id"`
	Name      string                 `json:"name"`
	Quantity  float64                `json:"quantity"`
	Rate      float64                `json:"rate"`
	Total     float64                `json:"total"`
	Taxes     []TaxComponentResponse `json:"taxes,omitempty"`
}

type GroupResponse struct {
	GroupID string             `json:"group_id"`
	Name    string             `json:"name"`
	Items   []LineItemResponse `json:"items"`
}

type TotalsResponse struct {
	Subtotal   float64 `json:"subtotal"`
	Tax        float64 `json:"tax"`
	GrandTotal float64 `json:"grand_total"`
}

type HeaderResponse struct {
	Company   string `json:"company"`
	Vendor    string `json:"vendor,omitempty"`
	Branch    string `json:"branch,omitempty"`
	Date      string `json:"date,omitempty"`
	Reference string `json:"reference,omitempty"`
	Notes     string `json:"notes,omitempty"`
	Status    string `json:"status,omitempty"`
}

// DraftResponse is the full editing-session state returned after every draft
// mutation, totals included so the form never computes money on its own.
type DraftResponse struct {
	ID        string             `json:"id"`
	Kind      string             `json:"kind"`
	RemoteID  string             `json:"remote_id,omitempty"`
	EditMode  bool               `json:"edit_mode"`
	Header    HeaderResponse     `json:"header"`
	Items     []LineItemResponse `json:"items"`
	Groups    []GroupResponse    `json:"groups,omitempty"`
	Totals    TotalsResponse     `json:"totals"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

func FromDraft(d entities.Draft) DraftResponse {
	items := make([]LineItemResponse, 0, len(d.Items))
	for _, item := range d.Items {
		items = append(items, fromLineItem(item))
	}

	var groups []GroupResponse
	for _, group := range d.Groups {
		groupItems := make([]LineItemResponse, 0, len(group.Items))
		for _, item := range group.Items {
			groupItems = append(groupItems, fromLineItem(item))
		}
		groups = append(groups, GroupResponse{
			GroupID: group.GroupID,
			Name:    group.Name,
			Items:   groupItems,
		})
	}

	totals := d.Totals()
	return DraftResponse{
		ID:       d.ID,
		Kind:     string(d.Kind),
		RemoteID: d.RemoteID,
		EditMode: d.EditMode(),
		Header: HeaderResponse{
			Company:   d.Header.CompanyID,
			Vendor:    d.Header.VendorID,
			Branch:    d.Header.BranchID,
			Date:      d.Header.Date,
			Reference: d.Header.Reference,
			Notes:     d.Header.Notes,
			Status:    d.Header.Status,
		},
		Items:  items,
		Groups: groups,
		Totals: TotalsResponse{
			Subtotal:   rounded(totals.Subtotal),
			Tax:        rounded(totals.Tax),
			GrandTotal: rounded(totals.GrandTotal),
		},
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func fromLineItem(item entities.LineItem) LineItemResponse {
	var taxes []TaxComponentResponse
	for _, tax := range item.Taxes {
		taxes = append(taxes, TaxComponentResponse{Name: tax.Name, Rate: rounded(tax.Rate)})
	}
	return LineItemResponse{
		RowID:     item.RowID,
		ProductID: item.ProductID,
		Name:      item.Name,
		Quantity:  rounded(item.Quantity),
		Rate:      rounded(item.UnitRate),
		Total:     rounded(item.LineTotal),
		Taxes:     taxes,
	}
}

// Amounts render with two decimal places of precision.
func rounded(v decimal.Decimal) float64 {
	return v.Round(2).InexactFloat64()
}
