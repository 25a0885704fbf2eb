package usecase

import (
	"context"
	"errors"

	"corpculture/internal/config"
	"corpculture/internal/domain/entities"
	"corpculture/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrDraftEmpty     = errors.New("draft has no line items")
	ErrMissingCompany = errors.New("company is required")
	ErrMissingVendor  = errors.New("vendor is required")
	ErrInvalidRows    = errors.New("draft contains invalid line items")
)

// ISubmissionUseCase turns a finished draft into an upstream entity.
//
// Validation happens entirely locally and fails fast on the first unmet
// condition; the gateway is never called for an invalid draft. On upstream
// failure the draft session is preserved so the user can retry without
// re-entering anything. Retried submissions after an unknown-outcome network
// failure may create a duplicate upstream entity; there is no idempotency key.
type ISubmissionUseCase interface {
	Submit(ctx context.Context, draftID string) (SubmissionResult, error)
}

// SubmissionResult is the confirmed upstream entity plus whether the dispatch
// updated an existing document or created a new one.
type SubmissionResult struct {
	Document map[string]any
	Updated  bool
}

type SubmissionUseCase struct {
	repo    interfaces.IDraftRepository
	gateway interfaces.IRemoteGateway
}

var _ ISubmissionUseCase = (*SubmissionUseCase)(nil)

func NewSubmissionUseCase(repo interfaces.IDraftRepository, gateway interfaces.IRemoteGateway) *SubmissionUseCase {
	return &SubmissionUseCase{repo: repo, gateway: gateway}
}

func (u *SubmissionUseCase) Submit(ctx context.Context, draftID string) (SubmissionResult, error) {
	logger := config.GetLogger()

	d, err := loadDraft(ctx, u.repo, draftID)
	if err != nil {
		return SubmissionResult{}, err
	}

	if err := validateDraft(d); err != nil {
		logger.WithField("draft_id", d.ID).WithField("kind", d.Kind).Infof("submit rejected: %v", err)
		return SubmissionResult{}, err
	}

	payload := buildPayload(d)
	resource := d.Kind.Resource()
	updated := d.EditMode()

	var entity map[string]any
	if updated {
		entity, err = u.gateway.Update(ctx, resource, d.RemoteID, payload)
	} else {
		entity, err = u.gateway.Create(ctx, resource, payload)
	}
	if err != nil {
		// Draft stays intact for a manual retry.
		config.LogError(logger, "submission", "Submit", "upstream dispatch", map[string]any{"draft_id": d.ID, "resource": resource, "edit": updated}, err)
		return SubmissionResult{}, err
	}

	if err := u.repo.Delete(ctx, d.ID); err != nil {
		// The entity was created; a stale session is not worth failing over.
		config.LogError(logger, "submission", "Submit", "draft cleanup", map[string]any{"draft_id": d.ID}, err)
	}
	logger.WithField("draft_id", d.ID).WithField("resource", resource).Info("submit success")

	return SubmissionResult{Document: entity, Updated: updated}, nil
}

func validateDraft(d entities.Draft) error {
	switch d.Kind {
	case entities.KindPurchase:
		if d.Header.VendorID == "" {
			return ErrMissingVendor
		}
	default:
		if d.Header.CompanyID == "" {
			return ErrMissingCompany
		}
	}

	if d.Empty() {
		return ErrDraftEmpty
	}

	// Hydrated rows may carry upstream values the add-time checks never saw.
	for _, item := range d.AllItems() {
		if item.ProductID == "" || !item.Quantity.IsPositive() || item.UnitRate.IsNegative() {
			return ErrInvalidRows
		}
	}
	return nil
}

// buildPayload shapes the draft into the upstream request schema: header
// fields, rows without their client-local ids, groups, and the derived totals
// rounded to 2 decimal places.
func buildPayload(d entities.Draft) map[string]any {
	payload := map[string]any{
		"items": payloadItems(d.Items),
	}

	if d.Header.CompanyID != "" {
		payload["company"] = d.Header.CompanyID
	}
	if d.Header.VendorID != "" {
		payload["vendor"] = d.Header.VendorID
	}
	if d.Header.BranchID != "" {
		payload["branch"] = d.Header.BranchID
	}
	if d.Header.Date != "" {
		payload["date"] = d.Header.Date
	}
	if d.Header.Reference != "" {
		payload["reference"] = d.Header.Reference
	}
	if d.Header.Notes != "" {
		payload["notes"] = d.Header.Notes
	}
	if d.Header.Status != "" {
		payload["status"] = d.Header.Status
	}

	if len(d.Groups) > 0 {
		groups := make([]map[string]any, 0, len(d.Groups))
		for _, g := range d.Groups {
			groups = append(groups, map[string]any{
				"name":  g.Name,
				"items": payloadItems(g.Items),
			})
		}
		payload["groups"] = groups
	}

	totals := d.Totals()
	payload["subTotal"] = rounded(totals.Subtotal)
	payload["taxTotal"] = rounded(totals.Tax)
	payload["grandTotal"] = rounded(totals.GrandTotal)

	return payload
}

func payloadItems(items []entities.LineItem) []map[string]any {
	rows := make([]map[string]any, 0, len(items))
	for _, item := range items {
		row := map[string]any{
			"product":  item.ProductID,
			"name":     item.Name,
			"quantity": item.Quantity.InexactFloat64(),
			"rate":     item.UnitRate.InexactFloat64(),
			"total":    rounded(item.LineTotal),
		}
		if len(item.Taxes) > 0 {
			taxes := make([]map[string]any, 0, len(item.Taxes))
			for _, tax := range item.Taxes {
				taxes = append(taxes, map[string]any{"name": tax.Name, "rate": tax.Rate.InexactFloat64()})
			}
			row["taxes"] = taxes
		}
		rows = append(rows, row)
	}
	return rows
}

// rounded applies the render/submit-time 2dp rounding; intermediate math
// stays exact.
func rounded(v decimal.Decimal) float64 {
	return v.Round(2).InexactFloat64()
}
