package response

import (
	"testing"

	"corpculture/internal/domain/entities"
	"corpculture/internal/usecase"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestFromDraft(t *testing.T) {
	item, err := entities.NewLineItem("row-1", "prod-1", "Toner", dec("2"), dec("100"), []entities.TaxComponent{
		{Name: "GST", Rate: dec("18")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d := entities.Draft{
		ID:       "draft-1",
		Kind:     entities.KindInvoice,
		RemoteID: "inv-1",
		Header:   entities.Header{CompanyID: "comp-1", Date: "2026-08-31"},
	}
	d.AddItem(item)

	resp := FromDraft(d)
	if resp.ID != "draft-1" || resp.Kind != "invoice" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if !resp.EditMode {
		t.Fatal("expected edit mode when remote id is set")
	}
	if resp.Header.Company != "comp-1" {
		t.Fatalf("unexpected header: %+v", resp.Header)
	}
	if len(resp.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(resp.Items))
	}
	if resp.Items[0].Total != 236 {
		t.Fatalf("expected item total 236, got %v", resp.Items[0].Total)
	}
	if resp.Totals.Subtotal != 200 || resp.Totals.Tax != 36 || resp.Totals.GrandTotal != 236 {
		t.Fatalf("unexpected totals: %+v", resp.Totals)
	}
}

func TestFromDraftRoundsToTwoPlaces(t *testing.T) {
	item, err := entities.NewLineItem("row-1", "prod-1", "Paper", dec("3"), dec("1.115"), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d := entities.Draft{ID: "draft-1", Kind: entities.KindQuotation}
	d.AddItem(item)

	resp := FromDraft(d)
	if resp.Items[0].Total != 3.35 {
		t.Fatalf("expected 3.35, got %v", resp.Items[0].Total)
	}
	if resp.Totals.GrandTotal != 3.35 {
		t.Fatalf("expected grand total 3.35, got %v", resp.Totals.GrandTotal)
	}
}

func TestFromPage(t *testing.T) {
	t.Run("NilRowsBecomeEmptyList", func(t *testing.T) {
		resp := FromPage(entities.Page{TotalRows: 0, TotalPages: 0, PageIndex: 0})
		if resp.Rows == nil {
			t.Fatal("expected non-nil rows")
		}
	})

	t.Run("CopiesCursorFields", func(t *testing.T) {
		resp := FromPage(entities.Page{
			Rows:       []map[string]any{{"_id": "inv-1"}},
			TotalRows:  11,
			TotalPages: 2,
			PageIndex:  1,
		})
		if resp.TotalRows != 11 || resp.TotalPages != 2 || resp.Page != 1 {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})
}

func TestFromSubmission(t *testing.T) {
	resp := FromSubmission(map[string]any{"_id": "inv-9", "invoiceNumber": "25-26/00009"})
	if resp.RemoteID != "inv-9" {
		t.Fatalf("expected remote id inv-9, got %q", resp.RemoteID)
	}
	if resp.Document["invoiceNumber"] != "25-26/00009" {
		t.Fatalf("unexpected document: %v", resp.Document)
	}
}

func TestFromOptions(t *testing.T) {
	resp := FromOptions(nil, true)
	if resp.Options == nil || !resp.Degraded {
		t.Fatalf("unexpected response: %+v", resp)
	}
	resp = FromOptions([]usecase.Option{{ID: "c-1", Label: "Acme"}}, false)
	if len(resp.Options) != 1 || resp.Options[0].Label != "Acme" {
		t.Fatalf("unexpected options: %+v", resp.Options)
	}
}
