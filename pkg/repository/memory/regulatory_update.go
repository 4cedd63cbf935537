package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/regtrack/regtrack/pkg/domain/interfaces"
	"github.com/regtrack/regtrack/pkg/domain/model"
)

type regulatoryUpdateRepository struct {
	mu      sync.RWMutex
	updates map[int64]*model.RegulatoryUpdate
	nextID  int64
}

func newRegulatoryUpdateRepository() *regulatoryUpdateRepository {
	return &regulatoryUpdateRepository{
		updates: make(map[int64]*model.RegulatoryUpdate),
		nextID:  1,
	}
}

func copyUpdate(u *model.RegulatoryUpdate) *model.RegulatoryUpdate {
	copied := *u
	return &copied
}

func (r *regulatoryUpdateRepository) Create(ctx context.Context, update *model.RegulatoryUpdate) (*model.RegulatoryUpdate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyUpdate(update)
	created.ID = r.nextID
	created.CreatedAt = now
	created.UpdatedAt = now
	r.nextID++

	r.updates[created.ID] = created
	return copyUpdate(created), nil
}

func (r *regulatoryUpdateRepository) Get(ctx context.Context, id int64) (*model.RegulatoryUpdate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	update, exists := r.updates[id]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "regulatory update not found", goerr.V("id", id))
	}

	return copyUpdate(update), nil
}

func (r *regulatoryUpdateRepository) List(ctx context.Context, opts interfaces.ListUpdatesOptions) ([]*model.RegulatoryUpdate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	updates := make([]*model.RegulatoryUpdate, 0, len(r.updates))
	for _, u := range r.updates {
		updates = append(updates, copyUpdate(u))
	}

	return opts.Apply(updates), nil
}

func (r *regulatoryUpdateRepository) Update(ctx context.Context, update *model.RegulatoryUpdate) (*model.RegulatoryUpdate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.updates[update.ID]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "regulatory update not found", goerr.V("id", update.ID))
	}

	updated := copyUpdate(update)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.updates[updated.ID] = updated
	return copyUpdate(updated), nil
}

func (r *regulatoryUpdateRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.updates[id]; !exists {
		return goerr.Wrap(interfaces.ErrNotFound, "regulatory update not found", goerr.V("id", id))
	}

	delete(r.updates, id)
	return nil
}
