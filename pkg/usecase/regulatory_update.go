package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/regtrack/regtrack/pkg/domain/interfaces"
	"github.com/regtrack/regtrack/pkg/domain/model"
	"github.com/regtrack/regtrack/pkg/domain/model/config"
	"github.com/regtrack/regtrack/pkg/domain/types"
)

type RegulatoryUpdateUseCase struct {
	repo interfaces.Repository
	cfg  *config.ComplianceConfig
}

func NewRegulatoryUpdateUseCase(repo interfaces.Repository, cfg *config.ComplianceConfig) *RegulatoryUpdateUseCase {
	return &RegulatoryUpdateUseCase{repo: repo, cfg: cfg}
}

// allowedTransitions maps each update status to the statuses it may move to.
// DISMISSED and ACTIONED are terminal except for reopening into review.
var allowedTransitions = map[types.UpdateStatus][]types.UpdateStatus{
	types.UpdateStatusNew:         {types.UpdateStatusUnderReview, types.UpdateStatusDismissed},
	types.UpdateStatusUnderReview: {types.UpdateStatusActioned, types.UpdateStatusDismissed},
	types.UpdateStatusActioned:    {},
	types.UpdateStatusDismissed:   {types.UpdateStatusUnderReview},
}

func (uc *RegulatoryUpdateUseCase) validate(update *model.RegulatoryUpdate) error {
	if update.Title == "" {
		return goerr.New("update title is required")
	}
	if !update.Status.IsValid() {
		return goerr.Wrap(types.ErrInvalidEnum, "invalid update status", goerr.V("status", update.Status))
	}
	if update.Jurisdiction != "" {
		if err := update.Jurisdiction.Validate(); err != nil {
			return goerr.Wrap(err, "invalid jurisdiction")
		}
		if len(uc.cfg.Jurisdictions) > 0 && !uc.cfg.HasJurisdiction(update.Jurisdiction.String()) {
			return goerr.New("jurisdiction is not configured", goerr.V("jurisdiction", update.Jurisdiction))
		}
	}
	return nil
}

func (uc *RegulatoryUpdateUseCase) Create(ctx context.Context, update *model.RegulatoryUpdate) (*model.RegulatoryUpdate, error) {
	update.Status = update.Status.Normalize()
	if err := uc.validate(update); err != nil {
		return nil, err
	}

	created, err := uc.repo.RegulatoryUpdate().Create(ctx, update)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create regulatory update")
	}
	return created, nil
}

func (uc *RegulatoryUpdateUseCase) Get(ctx context.Context, id int64) (*model.RegulatoryUpdate, error) {
	return uc.repo.RegulatoryUpdate().Get(ctx, id)
}

func (uc *RegulatoryUpdateUseCase) List(ctx context.Context, opts interfaces.ListUpdatesOptions) ([]*model.RegulatoryUpdate, error) {
	return uc.repo.RegulatoryUpdate().List(ctx, opts)
}

// Update modifies the descriptive fields of a regulatory update. Status is
// preserved; use Transition to move it through the review workflow.
func (uc *RegulatoryUpdateUseCase) Update(ctx context.Context, update *model.RegulatoryUpdate) (*model.RegulatoryUpdate, error) {
	existing, err := uc.repo.RegulatoryUpdate().Get(ctx, update.ID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get regulatory update", goerr.V("id", update.ID))
	}
	update.Status = existing.Status

	if err := uc.validate(update); err != nil {
		return nil, err
	}

	updated, err := uc.repo.RegulatoryUpdate().Update(ctx, update)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update regulatory update", goerr.V("id", update.ID))
	}
	return updated, nil
}

// Transition moves the update to the given status, enforcing the review
// workflow. Transitioning to the current status is a no-op.
func (uc *RegulatoryUpdateUseCase) Transition(ctx context.Context, id int64, to types.UpdateStatus) (*model.RegulatoryUpdate, error) {
	if !to.IsValid() {
		return nil, goerr.Wrap(types.ErrInvalidEnum, "invalid update status", goerr.V("status", to))
	}

	update, err := uc.repo.RegulatoryUpdate().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get regulatory update", goerr.V("id", id))
	}

	if update.Status == to {
		return update, nil
	}

	allowed := false
	for _, next := range allowedTransitions[update.Status] {
		if next == to {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, goerr.Wrap(ErrInvalidTransition, "cannot transition regulatory update",
			goerr.V("id", id),
			goerr.V("from", update.Status),
			goerr.V("to", to),
		)
	}

	update.Status = to
	updated, err := uc.repo.RegulatoryUpdate().Update(ctx, update)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to transition regulatory update", goerr.V("id", id))
	}
	return updated, nil
}

func (uc *RegulatoryUpdateUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.RegulatoryUpdate().Delete(ctx, id)
}
