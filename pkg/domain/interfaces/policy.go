package interfaces

import (
	"context"

	"github.com/regtrack/regtrack/pkg/domain/model"
)

type PolicyRepository interface {
	// Create creates a new policy with auto-generated ID
	Create(ctx context.Context, policy *model.Policy) (*model.Policy, error)

	// Get retrieves a policy by ID
	Get(ctx context.Context, id int64) (*model.Policy, error)

	// List retrieves policies matching the options
	List(ctx context.Context, opts ListPoliciesOptions) ([]*model.Policy, error)

	// Update updates an existing policy
	Update(ctx context.Context, policy *model.Policy) (*model.Policy, error)

	// Delete deletes a policy by ID
	Delete(ctx context.Context, id int64) error
}
