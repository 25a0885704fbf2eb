package interfaces

import (
	"context"

	"corpculture/internal/domain/entities"
)

//go:generate mockgen -source=draft_repository_interface.go -destination=mocks/draft_repository_mock.go

// IDraftRepository holds in-progress draft sessions. Drafts are transient:
// they live only until submit-success or discard, so the default
// implementation is an in-memory store.
//
// GetByID returns the zero Draft when the id is unknown; callers check
// Draft.ID.
type IDraftRepository interface {
	Save(ctx context.Context, d entities.Draft) (entities.Draft, error)
	GetByID(ctx context.Context, id string) (entities.Draft, error)
	Delete(ctx context.Context, id string) error
}
