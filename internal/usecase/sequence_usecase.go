package usecase

import (
	"context"
	"strings"

	"corpculture/internal/domain/entities"
	"corpculture/internal/usecase/interfaces"
)

// ISequenceUseCase previews the next human-readable document number for a
// resource. The counter itself is server-owned; it only advances upstream on
// successful creation, so previewing never consumes a value.
type ISequenceUseCase interface {
	NextDocumentNumber(ctx context.Context, resource string) (string, error)
}

type SequenceUseCase struct {
	gateway interfaces.IRemoteGateway
}

var _ ISequenceUseCase = (*SequenceUseCase)(nil)

func NewSequenceUseCase(gateway interfaces.IRemoteGateway) *SequenceUseCase {
	return &SequenceUseCase{gateway: gateway}
}

func (u *SequenceUseCase) NextDocumentNumber(ctx context.Context, resource string) (string, error) {
	resource = strings.TrimSpace(resource)
	if resource == "" {
		return "", ErrInvalidResource
	}

	counter, err := u.gateway.NextCounter(ctx, resource)
	if err != nil {
		return "", err
	}
	return entities.NextIdentifier(counter.Value, counter.Template), nil
}
