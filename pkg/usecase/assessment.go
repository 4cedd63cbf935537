package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/regtrack/regtrack/pkg/domain/interfaces"
	"github.com/regtrack/regtrack/pkg/domain/model"
	"github.com/regtrack/regtrack/pkg/domain/scoring"
	"github.com/regtrack/regtrack/pkg/domain/types"
)

// AssessmentUseCase manages risk assessments and keeps their derived risk
// ratings consistent: every mutation of the identified risks rescoring the
// whole assessment before it is stored.
type AssessmentUseCase struct {
	repo interfaces.Repository
}

func NewAssessmentUseCase(repo interfaces.Repository) *AssessmentUseCase {
	return &AssessmentUseCase{repo: repo}
}

func (uc *AssessmentUseCase) Create(ctx context.Context, assessment *model.RiskAssessment) (*model.RiskAssessment, error) {
	if assessment.Title == "" {
		return nil, goerr.New("assessment title is required")
	}

	assessment.Status = types.AssessmentStatusDraft
	if err := scoring.Recalculate(assessment); err != nil {
		return nil, err
	}
	assessment.AssessedAt = time.Now().UTC()

	created, err := uc.repo.RiskAssessment().Create(ctx, assessment)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create risk assessment")
	}
	return created, nil
}

func (uc *AssessmentUseCase) Get(ctx context.Context, id int64) (*model.RiskAssessment, error) {
	return uc.repo.RiskAssessment().Get(ctx, id)
}

func (uc *AssessmentUseCase) List(ctx context.Context, opts interfaces.ListAssessmentsOptions) ([]*model.RiskAssessment, error) {
	return uc.repo.RiskAssessment().List(ctx, opts)
}

func (uc *AssessmentUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.RiskAssessment().Delete(ctx, id)
}

// getDraft loads the assessment and rejects mutations on finalized ones
func (uc *AssessmentUseCase) getDraft(ctx context.Context, id int64) (*model.RiskAssessment, error) {
	assessment, err := uc.repo.RiskAssessment().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get risk assessment", goerr.V("id", id))
	}
	if assessment.IsFinal() {
		return nil, goerr.Wrap(ErrAssessmentFinalized, "cannot modify assessment", goerr.V("id", id))
	}
	return assessment, nil
}

// rescoreAndStore refreshes the derived ratings and persists the assessment
func (uc *AssessmentUseCase) rescoreAndStore(ctx context.Context, assessment *model.RiskAssessment) (*model.RiskAssessment, error) {
	if err := scoring.Recalculate(assessment); err != nil {
		return nil, err
	}
	assessment.AssessedAt = time.Now().UTC()

	updated, err := uc.repo.RiskAssessment().Update(ctx, assessment)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update risk assessment", goerr.V("id", assessment.ID))
	}
	return updated, nil
}

// UpdateDetails changes the title and description of a draft assessment
func (uc *AssessmentUseCase) UpdateDetails(ctx context.Context, id int64, title, description string) (*model.RiskAssessment, error) {
	if title == "" {
		return nil, goerr.New("assessment title is required")
	}

	assessment, err := uc.getDraft(ctx, id)
	if err != nil {
		return nil, err
	}

	assessment.Title = title
	assessment.Description = description
	return uc.rescoreAndStore(ctx, assessment)
}

// AddRiskItem appends a risk item to a draft assessment and rescores it
func (uc *AssessmentUseCase) AddRiskItem(ctx context.Context, id int64, item model.RiskItem) (*model.RiskAssessment, error) {
	assessment, err := uc.getDraft(ctx, id)
	if err != nil {
		return nil, err
	}

	assessment.IdentifiedRisks = append(assessment.IdentifiedRisks, item.Clone())
	return uc.rescoreAndStore(ctx, assessment)
}

// UpdateRiskItem applies a partial update to the risk item at the given
// position and rescores the assessment. Fields left nil are untouched.
func (uc *AssessmentUseCase) UpdateRiskItem(ctx context.Context, id int64, index int, update model.RiskItemUpdate) (*model.RiskAssessment, error) {
	assessment, err := uc.getDraft(ctx, id)
	if err != nil {
		return nil, err
	}

	if index < 0 || index >= len(assessment.IdentifiedRisks) {
		return nil, goerr.Wrap(ErrRiskItemOutOfRange, "no risk item at index",
			goerr.V("id", id),
			goerr.V("index", index),
			goerr.V("count", len(assessment.IdentifiedRisks)),
		)
	}

	assessment.IdentifiedRisks[index].Apply(update)
	return uc.rescoreAndStore(ctx, assessment)
}

// RemoveRiskItem deletes the risk item at the given position and rescores
// the assessment
func (uc *AssessmentUseCase) RemoveRiskItem(ctx context.Context, id int64, index int) (*model.RiskAssessment, error) {
	assessment, err := uc.getDraft(ctx, id)
	if err != nil {
		return nil, err
	}

	if index < 0 || index >= len(assessment.IdentifiedRisks) {
		return nil, goerr.Wrap(ErrRiskItemOutOfRange, "no risk item at index",
			goerr.V("id", id),
			goerr.V("index", index),
			goerr.V("count", len(assessment.IdentifiedRisks)),
		)
	}

	assessment.IdentifiedRisks = append(
		assessment.IdentifiedRisks[:index],
		assessment.IdentifiedRisks[index+1:]...,
	)
	return uc.rescoreAndStore(ctx, assessment)
}

// Recalculate re-derives all cached ratings of a draft assessment. The
// ratings are already refreshed on every mutation, so this is only needed
// after the scoring rules themselves change.
func (uc *AssessmentUseCase) Recalculate(ctx context.Context, id int64) (*model.RiskAssessment, error) {
	assessment, err := uc.getDraft(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.rescoreAndStore(ctx, assessment)
}

// Finalize rescores the assessment one last time and moves it to FINAL.
// Finalized assessments are immutable.
func (uc *AssessmentUseCase) Finalize(ctx context.Context, id int64) (*model.RiskAssessment, error) {
	assessment, err := uc.getDraft(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := scoring.Recalculate(assessment); err != nil {
		return nil, err
	}
	assessment.Status = types.AssessmentStatusFinal
	assessment.AssessedAt = time.Now().UTC()

	updated, err := uc.repo.RiskAssessment().Update(ctx, assessment)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to finalize risk assessment", goerr.V("id", id))
	}
	return updated, nil
}
