package interfaces

import (
	"context"

	"github.com/regtrack/regtrack/pkg/domain/model"
)

type RegulatoryUpdateRepository interface {
	// Create creates a new regulatory update with auto-generated ID
	Create(ctx context.Context, update *model.RegulatoryUpdate) (*model.RegulatoryUpdate, error)

	// Get retrieves a regulatory update by ID
	Get(ctx context.Context, id int64) (*model.RegulatoryUpdate, error)

	// List retrieves regulatory updates matching the options
	List(ctx context.Context, opts ListUpdatesOptions) ([]*model.RegulatoryUpdate, error)

	// Update updates an existing regulatory update
	Update(ctx context.Context, update *model.RegulatoryUpdate) (*model.RegulatoryUpdate, error)

	// Delete deletes a regulatory update by ID
	Delete(ctx context.Context, id int64) error
}
