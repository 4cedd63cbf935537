package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/regtrack/regtrack/pkg/domain/interfaces"
	"github.com/regtrack/regtrack/pkg/domain/model"
)

type licenseRepository struct {
	mu       sync.RWMutex
	licenses map[int64]*model.License
	nextID   int64
}

func newLicenseRepository() *licenseRepository {
	return &licenseRepository{
		licenses: make(map[int64]*model.License),
		nextID:   1,
	}
}

func copyLicense(l *model.License) *model.License {
	copied := *l
	return &copied
}

func (r *licenseRepository) Create(ctx context.Context, license *model.License) (*model.License, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyLicense(license)
	created.ID = r.nextID
	created.CreatedAt = now
	created.UpdatedAt = now
	r.nextID++

	r.licenses[created.ID] = created
	return copyLicense(created), nil
}

func (r *licenseRepository) Get(ctx context.Context, id int64) (*model.License, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	license, exists := r.licenses[id]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "license not found", goerr.V("id", id))
	}

	return copyLicense(license), nil
}

func (r *licenseRepository) List(ctx context.Context, opts interfaces.ListLicensesOptions) ([]*model.License, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	licenses := make([]*model.License, 0, len(r.licenses))
	for _, l := range r.licenses {
		licenses = append(licenses, copyLicense(l))
	}

	return opts.Apply(licenses), nil
}

func (r *licenseRepository) Update(ctx context.Context, license *model.License) (*model.License, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.licenses[license.ID]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "license not found", goerr.V("id", license.ID))
	}

	updated := copyLicense(license)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.licenses[updated.ID] = updated
	return copyLicense(updated), nil
}

func (r *licenseRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.licenses[id]; !exists {
		return goerr.Wrap(interfaces.ErrNotFound, "license not found", goerr.V("id", id))
	}

	delete(r.licenses, id)
	return nil
}
