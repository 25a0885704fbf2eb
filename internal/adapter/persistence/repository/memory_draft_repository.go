package repository

import (
	"context"
	"sync"

	"corpculture/internal/domain/entities"
	"corpculture/internal/usecase/interfaces"
)

// MemoryDraftRepository keeps draft sessions in process memory. Drafts are
// staging copies only: they exist between form-open and submit/discard, so
// nothing here survives a restart and nothing needs to.
//
// Drafts are cloned on the way in and out, so callers can mutate their copy
// freely without reaching the stored one through shared slice storage.

type MemoryDraftRepository struct {
	mu     sync.RWMutex
	drafts map[string]entities.Draft
}

var _ interfaces.IDraftRepository = (*MemoryDraftRepository)(nil)

func NewMemoryDraftRepository() *MemoryDraftRepository {
	return &MemoryDraftRepository{drafts: make(map[string]entities.Draft)}
}

func (r *MemoryDraftRepository) Save(_ context.Context, d entities.Draft) (entities.Draft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drafts[d.ID] = d.Clone()
	return d, nil
}

func (r *MemoryDraftRepository) GetByID(_ context.Context, id string) (entities.Draft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.drafts[id].Clone(), nil
}

func (r *MemoryDraftRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.drafts, id)
	return nil
}

// Len reports the number of live sessions.
func (r *MemoryDraftRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.drafts)
}
