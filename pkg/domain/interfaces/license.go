package interfaces

import (
	"context"

	"github.com/regtrack/regtrack/pkg/domain/model"
)

type LicenseRepository interface {
	// Create creates a new license with auto-generated ID
	Create(ctx context.Context, license *model.License) (*model.License, error)

	// Get retrieves a license by ID
	Get(ctx context.Context, id int64) (*model.License, error)

	// List retrieves licenses matching the options
	List(ctx context.Context, opts ListLicensesOptions) ([]*model.License, error)

	// Update updates an existing license
	Update(ctx context.Context, license *model.License) (*model.License, error)

	// Delete deletes a license by ID
	Delete(ctx context.Context, id int64) error
}
