package usecase

import (
	"context"
	"errors"
	"strings"

	"corpculture/internal/config"
	"corpculture/internal/domain/entities"
	"corpculture/internal/usecase/interfaces"
)

var ErrInvalidResource = errors.New("invalid resource")

// defaultSearchFields are the whitelisted match columns when the caller does
// not narrow them; they mirror the admin tables' visible columns.
var defaultSearchFields = []string{"invoiceNumber", "company.name", "vendor.name", "name", "status", "date"}

// Option is one entry of a dependent select (products of a company, branches).
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// IListingUseCase serves the admin list views: the upstream API returns the
// full collection, and query refinement plus pagination happen here on every
// request.
type IListingUseCase interface {
	ListDocuments(ctx context.Context, resource, query string, page, pageSize int, fields []string) (entities.Page, error)
	ScopedOptions(ctx context.Context, resource, scopeID string) ([]Option, bool)
}

type ListingUseCase struct {
	gateway interfaces.IRemoteGateway
}

var _ IListingUseCase = (*ListingUseCase)(nil)

func NewListingUseCase(gateway interfaces.IRemoteGateway) *ListingUseCase {
	return &ListingUseCase{gateway: gateway}
}

func (u *ListingUseCase) ListDocuments(ctx context.Context, resource, query string, page, pageSize int, fields []string) (entities.Page, error) {
	resource = strings.TrimSpace(resource)
	if resource == "" {
		return entities.Page{}, ErrInvalidResource
	}
	if len(fields) == 0 {
		fields = defaultSearchFields
	}

	rows, err := u.gateway.List(ctx, resource, nil)
	if err != nil {
		return entities.Page{}, err
	}

	view := entities.NewCollection(rows, fields, pageSize)
	view.SetQuery(query)
	view.SetPage(page)
	return view.Visible(), nil
}

// ScopedOptions loads a dependent option list (e.g. the products available to
// the selected company). A failed fetch degrades to an empty list with the
// degraded flag set instead of blocking the rest of the form.
func (u *ListingUseCase) ScopedOptions(ctx context.Context, resource, scopeID string) ([]Option, bool) {
	resource = strings.TrimSpace(resource)
	if resource == "" {
		return []Option{}, true
	}

	var params map[string]string
	if scopeID = strings.TrimSpace(scopeID); scopeID != "" {
		params = map[string]string{"company": scopeID}
	}

	rows, err := u.gateway.List(ctx, resource, params)
	if err != nil {
		config.LogError(config.GetLogger(), "listing", "ScopedOptions", "dependent fetch", map[string]any{"resource": resource, "scope": scopeID}, err)
		return []Option{}, true
	}

	options := make([]Option, 0, len(rows))
	for _, row := range rows {
		id := entities.ReferenceID(row["_id"])
		if id == "" {
			id = entities.ReferenceID(row["id"])
		}
		label, _ := row["name"].(string)
		options = append(options, Option{ID: id, Label: label})
	}
	return options, false
}
