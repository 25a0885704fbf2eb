package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"corpculture/internal/domain/entities"
	mock_interfaces "corpculture/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSequenceUseCase_NextDocumentNumber(t *testing.T) {
	t.Run("invalid resource", func(t *testing.T) {
		uc := NewSequenceUseCase(nil)
		_, err := uc.NextDocumentNumber(context.Background(), "")
		if !errors.Is(err, ErrInvalidResource) {
			t.Fatalf("expected ErrInvalidResource, got %v", err)
		}
	})

	t.Run("gateway failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIRemoteGateway(ctrl)
		gateway.EXPECT().NextCounter(gomock.Any(), "invoices").Return(entities.SequenceCounter{}, errors.New("timeout"))

		uc := NewSequenceUseCase(gateway)
		if _, err := uc.NextDocumentNumber(context.Background(), "invoices"); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("formats the server counter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIRemoteGateway(ctrl)
		gateway.EXPECT().NextCounter(gomock.Any(), "invoices").Return(entities.SequenceCounter{Value: 7, Template: "INV/00001"}, nil)

		uc := NewSequenceUseCase(gateway)
		got, err := uc.NextDocumentNumber(context.Background(), "invoices")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "INV/00007" {
			t.Fatalf("expected INV/00007, got %q", got)
		}
	})

	t.Run("year template follows the clock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIRemoteGateway(ctrl)
		gateway.EXPECT().NextCounter(gomock.Any(), "invoices").Return(entities.SequenceCounter{Value: 3, Template: "YY-YY/00001"}, nil)

		uc := NewSequenceUseCase(gateway)
		got, err := uc.NextDocumentNumber(context.Background(), "invoices")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		year := time.Now().Year()
		want := fmt.Sprintf("%02d-%02d/00003", year%100, (year+1)%100)
		if got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	})
}
