package usecase

import (
	"context"
	"errors"
	"testing"

	"corpculture/internal/domain/entities"
	mock_interfaces "corpculture/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestListingUseCase_ListDocuments(t *testing.T) {
	t.Run("invalid resource", func(t *testing.T) {
		uc := NewListingUseCase(nil)
		_, err := uc.ListDocuments(context.Background(), "  ", "", 0, 10, nil)
		if !errors.Is(err, ErrInvalidResource) {
			t.Fatalf("expected ErrInvalidResource, got %v", err)
		}
	})

	t.Run("gateway failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIRemoteGateway(ctrl)
		gateway.EXPECT().List(gomock.Any(), "invoices", nil).Return(nil, &entities.RemoteError{StatusCode: 500})

		uc := NewListingUseCase(gateway)
		_, err := uc.ListDocuments(context.Background(), "invoices", "", 0, 10, nil)
		var remoteErr *entities.RemoteError
		if !errors.As(err, &remoteErr) {
			t.Fatalf("expected RemoteError, got %v", err)
		}
	})

	t.Run("filters and paginates the full collection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		rows := []map[string]any{
			{"invoiceNumber": "25-26/00001", "company": map[string]any{"name": "Acme"}},
			{"invoiceNumber": "25-26/00002", "company": map[string]any{"name": "Zenith"}},
			{"invoiceNumber": "25-26/00003", "company": map[string]any{"name": "Acme Traders"}},
		}
		gateway := mock_interfaces.NewMockIRemoteGateway(ctrl)
		gateway.EXPECT().List(gomock.Any(), "invoices", nil).Return(rows, nil)

		uc := NewListingUseCase(gateway)
		page, err := uc.ListDocuments(context.Background(), "invoices", "acme", 0, 10, []string{"company.name"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.TotalRows != 2 || len(page.Rows) != 2 {
			t.Fatalf("unexpected page: %+v", page)
		}
	})

	t.Run("out of range page clamps to the first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		rows := []map[string]any{
			{"invoiceNumber": "25-26/00001"},
			{"invoiceNumber": "25-26/00002"},
		}
		gateway := mock_interfaces.NewMockIRemoteGateway(ctrl)
		gateway.EXPECT().List(gomock.Any(), "invoices", nil).Return(rows, nil)

		uc := NewListingUseCase(gateway)
		page, err := uc.ListDocuments(context.Background(), "invoices", "", 7, 10, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.PageIndex != 0 || len(page.Rows) != 2 {
			t.Fatalf("unexpected page: %+v", page)
		}
	})
}

func TestListingUseCase_ScopedOptions(t *testing.T) {
	t.Run("degrades to empty list on failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIRemoteGateway(ctrl)
		gateway.EXPECT().List(gomock.Any(), "products", map[string]string{"company": "comp-1"}).Return(nil, errors.New("timeout"))

		uc := NewListingUseCase(gateway)
		options, degraded := uc.ScopedOptions(context.Background(), "products", "comp-1")
		if !degraded {
			t.Fatalf("expected degraded flag")
		}
		if len(options) != 0 {
			t.Fatalf("expected empty options, got %+v", options)
		}
	})

	t.Run("maps rows to options", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIRemoteGateway(ctrl)
		gateway.EXPECT().List(gomock.Any(), "products", map[string]string{"company": "comp-1"}).Return([]map[string]any{
			{"_id": "prod-1", "name": "Toner"},
			{"id": "prod-2", "name": "Drum"},
		}, nil)

		uc := NewListingUseCase(gateway)
		options, degraded := uc.ScopedOptions(context.Background(), "products", "comp-1")
		if degraded {
			t.Fatalf("unexpected degraded flag")
		}
		if len(options) != 2 || options[0].ID != "prod-1" || options[1].ID != "prod-2" {
			t.Fatalf("unexpected options: %+v", options)
		}
	})
}
