package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/regtrack/regtrack/pkg/domain/interfaces"
	"github.com/regtrack/regtrack/pkg/domain/model"
)

type policyRepository struct {
	mu       sync.RWMutex
	policies map[int64]*model.Policy
	nextID   int64
}

func newPolicyRepository() *policyRepository {
	return &policyRepository{
		policies: make(map[int64]*model.Policy),
		nextID:   1,
	}
}

func copyPolicy(p *model.Policy) *model.Policy {
	copied := *p
	return &copied
}

func (r *policyRepository) Create(ctx context.Context, policy *model.Policy) (*model.Policy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyPolicy(policy)
	created.ID = r.nextID
	if created.Version == 0 {
		created.Version = 1
	}
	created.CreatedAt = now
	created.UpdatedAt = now
	r.nextID++

	r.policies[created.ID] = created
	return copyPolicy(created), nil
}

func (r *policyRepository) Get(ctx context.Context, id int64) (*model.Policy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	policy, exists := r.policies[id]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "policy not found", goerr.V("id", id))
	}

	return copyPolicy(policy), nil
}

func (r *policyRepository) List(ctx context.Context, opts interfaces.ListPoliciesOptions) ([]*model.Policy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	policies := make([]*model.Policy, 0, len(r.policies))
	for _, p := range r.policies {
		policies = append(policies, copyPolicy(p))
	}

	return opts.Apply(policies), nil
}

func (r *policyRepository) Update(ctx context.Context, policy *model.Policy) (*model.Policy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.policies[policy.ID]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "policy not found", goerr.V("id", policy.ID))
	}

	updated := copyPolicy(policy)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.policies[updated.ID] = updated
	return copyPolicy(updated), nil
}

func (r *policyRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.policies[id]; !exists {
		return goerr.Wrap(interfaces.ErrNotFound, "policy not found", goerr.V("id", id))
	}

	delete(r.policies, id)
	return nil
}
