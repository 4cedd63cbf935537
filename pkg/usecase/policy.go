package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/regtrack/regtrack/pkg/domain/interfaces"
	"github.com/regtrack/regtrack/pkg/domain/model"
	"github.com/regtrack/regtrack/pkg/domain/model/config"
	"github.com/regtrack/regtrack/pkg/domain/types"
)

type PolicyUseCase struct {
	repo interfaces.Repository
	cfg  *config.ComplianceConfig
}

func NewPolicyUseCase(repo interfaces.Repository, cfg *config.ComplianceConfig) *PolicyUseCase {
	return &PolicyUseCase{repo: repo, cfg: cfg}
}

func (uc *PolicyUseCase) validate(policy *model.Policy) error {
	if policy.Title == "" {
		return goerr.New("policy title is required")
	}
	if !policy.Status.IsValid() {
		return goerr.Wrap(types.ErrInvalidEnum, "invalid policy status", goerr.V("status", policy.Status))
	}
	if policy.Category != "" {
		if err := policy.Category.Validate(); err != nil {
			return goerr.Wrap(err, "invalid policy category")
		}
		if len(uc.cfg.PolicyCategories) > 0 && !uc.cfg.HasPolicyCategory(policy.Category.String()) {
			return goerr.New("policy category is not configured", goerr.V("category", policy.Category))
		}
	}
	return nil
}

func (uc *PolicyUseCase) Create(ctx context.Context, policy *model.Policy) (*model.Policy, error) {
	policy.Status = policy.Status.Normalize()
	policy.Version = 1
	if err := uc.validate(policy); err != nil {
		return nil, err
	}

	created, err := uc.repo.Policy().Create(ctx, policy)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create policy")
	}
	return created, nil
}

func (uc *PolicyUseCase) Get(ctx context.Context, id int64) (*model.Policy, error) {
	return uc.repo.Policy().Get(ctx, id)
}

func (uc *PolicyUseCase) List(ctx context.Context, opts interfaces.ListPoliciesOptions) ([]*model.Policy, error) {
	return uc.repo.Policy().List(ctx, opts)
}

// Update replaces the policy content and bumps its version. The version in
// the request is ignored; it is always derived from the stored policy.
func (uc *PolicyUseCase) Update(ctx context.Context, policy *model.Policy) (*model.Policy, error) {
	policy.Status = policy.Status.Normalize()
	if err := uc.validate(policy); err != nil {
		return nil, err
	}

	existing, err := uc.repo.Policy().Get(ctx, policy.ID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get policy", goerr.V("id", policy.ID))
	}
	policy.Version = existing.Version + 1

	updated, err := uc.repo.Policy().Update(ctx, policy)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update policy", goerr.V("id", policy.ID))
	}
	return updated, nil
}

// Archive moves the policy to ARCHIVED without touching its content or version
func (uc *PolicyUseCase) Archive(ctx context.Context, id int64) (*model.Policy, error) {
	policy, err := uc.repo.Policy().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get policy", goerr.V("id", id))
	}

	if policy.Status == types.PolicyStatusArchived {
		return policy, nil
	}

	policy.Status = types.PolicyStatusArchived
	updated, err := uc.repo.Policy().Update(ctx, policy)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to archive policy", goerr.V("id", id))
	}
	return updated, nil
}

func (uc *PolicyUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Policy().Delete(ctx, id)
}
