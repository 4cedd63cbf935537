package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/regtrack/regtrack/pkg/domain/model"
	"github.com/regtrack/regtrack/pkg/domain/types"
	"github.com/regtrack/regtrack/pkg/repository/memory"
	"github.com/regtrack/regtrack/pkg/usecase"
)

func newAssessmentUC(t *testing.T) *usecase.UseCases {
	t.Helper()
	return usecase.New(memory.New())
}

func TestAssessmentUseCase_CreateScoresItems(t *testing.T) {
	ctx := context.Background()
	uc := newAssessmentUC(t)

	created, err := uc.Assessment.Create(ctx, &model.RiskAssessment{
		Title: "vendor onboarding",
		IdentifiedRisks: []model.RiskItem{
			{
				Description: "unvetted subprocessor",
				Likelihood:  types.LikelihoodHigh,
				Impact:      types.ImpactHigh,
			},
		},
	})
	gt.NoError(t, err).Required()

	gt.V(t, created.Status).Equal(types.AssessmentStatusDraft)
	gt.V(t, created.IdentifiedRisks[0].InherentRisk).Equal(types.RiskLevelCritical)
	gt.V(t, created.OverallRiskRating).Equal(types.RiskLevelCritical)
	gt.B(t, created.AssessedAt.IsZero()).False()
}

func TestAssessmentUseCase_CreateRejectsInvalidEnum(t *testing.T) {
	ctx := context.Background()
	uc := newAssessmentUC(t)

	_, err := uc.Assessment.Create(ctx, &model.RiskAssessment{
		Title: "bad",
		IdentifiedRisks: []model.RiskItem{
			{Likelihood: "Extreme", Impact: types.ImpactLow},
		},
	})
	gt.Error(t, err)
	gt.B(t, errors.Is(err, types.ErrInvalidEnum)).True()
}

func TestAssessmentUseCase_RiskItemLifecycle(t *testing.T) {
	ctx := context.Background()
	uc := newAssessmentUC(t)

	created, err := uc.Assessment.Create(ctx, &model.RiskAssessment{Title: "empty start"})
	gt.NoError(t, err).Required()
	gt.V(t, created.OverallRiskRating).Equal(types.RiskLevelLow)

	// Add an unmitigated critical risk
	updated, err := uc.Assessment.AddRiskItem(ctx, created.ID, model.RiskItem{
		Description: "credentials in source",
		Likelihood:  types.LikelihoodHigh,
		Impact:      types.ImpactHigh,
	})
	gt.NoError(t, err).Required()
	gt.A(t, updated.IdentifiedRisks).Length(1)
	gt.V(t, updated.OverallRiskRating).Equal(types.RiskLevelCritical)

	// Mitigating it demotes the residual and the overall rating
	controls := []string{"secret scanning", "vault migration"}
	updated, err = uc.Assessment.UpdateRiskItem(ctx, created.ID, 0, model.RiskItemUpdate{
		MitigationControls: &controls,
	})
	gt.NoError(t, err).Required()
	gt.V(t, updated.IdentifiedRisks[0].InherentRisk).Equal(types.RiskLevelCritical)
	gt.V(t, updated.IdentifiedRisks[0].ResidualRisk).Equal(types.RiskLevelHigh)
	gt.V(t, updated.OverallRiskRating).Equal(types.RiskLevelHigh)

	// Removing the only item resets the rating
	updated, err = uc.Assessment.RemoveRiskItem(ctx, created.ID, 0)
	gt.NoError(t, err).Required()
	gt.A(t, updated.IdentifiedRisks).Length(0)
	gt.V(t, updated.OverallRiskRating).Equal(types.RiskLevelLow)
}

func TestAssessmentUseCase_RiskItemIndexOutOfRange(t *testing.T) {
	ctx := context.Background()
	uc := newAssessmentUC(t)

	created, err := uc.Assessment.Create(ctx, &model.RiskAssessment{Title: "t"})
	gt.NoError(t, err).Required()

	_, err = uc.Assessment.UpdateRiskItem(ctx, created.ID, 0, model.RiskItemUpdate{})
	gt.Error(t, err)
	gt.B(t, errors.Is(err, usecase.ErrRiskItemOutOfRange)).True()

	_, err = uc.Assessment.RemoveRiskItem(ctx, created.ID, -1)
	gt.Error(t, err)
	gt.B(t, errors.Is(err, usecase.ErrRiskItemOutOfRange)).True()
}

func TestAssessmentUseCase_Finalize(t *testing.T) {
	ctx := context.Background()
	uc := newAssessmentUC(t)

	created, err := uc.Assessment.Create(ctx, &model.RiskAssessment{
		Title: "annual review",
		IdentifiedRisks: []model.RiskItem{
			{Likelihood: types.LikelihoodMedium, Impact: types.ImpactMedium},
		},
	})
	gt.NoError(t, err).Required()

	finalized, err := uc.Assessment.Finalize(ctx, created.ID)
	gt.NoError(t, err).Required()
	gt.V(t, finalized.Status).Equal(types.AssessmentStatusFinal)
	gt.V(t, finalized.OverallRiskRating).Equal(types.RiskLevelHigh)

	// All mutations are rejected afterwards
	_, err = uc.Assessment.AddRiskItem(ctx, created.ID, model.RiskItem{
		Likelihood: types.LikelihoodLow, Impact: types.ImpactLow,
	})
	gt.Error(t, err)
	gt.B(t, errors.Is(err, usecase.ErrAssessmentFinalized)).True()

	_, err = uc.Assessment.UpdateDetails(ctx, created.ID, "new title", "")
	gt.Error(t, err)
	gt.B(t, errors.Is(err, usecase.ErrAssessmentFinalized)).True()

	_, err = uc.Assessment.Finalize(ctx, created.ID)
	gt.Error(t, err)
	gt.B(t, errors.Is(err, usecase.ErrAssessmentFinalized)).True()

	// Deleting a finalized assessment is still allowed
	gt.NoError(t, uc.Assessment.Delete(ctx, created.ID))
}

func TestAssessmentUseCase_Recalculate(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	uc := usecase.New(repo)

	created, err := uc.Assessment.Create(ctx, &model.RiskAssessment{
		Title: "drifted",
		IdentifiedRisks: []model.RiskItem{
			{Likelihood: types.LikelihoodLow, Impact: types.ImpactLow},
		},
	})
	gt.NoError(t, err).Required()

	// Corrupt the cached ratings behind the use case's back
	stale := created.Clone()
	stale.OverallRiskRating = types.RiskLevelCritical
	stale.IdentifiedRisks[0].ResidualRisk = types.RiskLevelCritical
	_, err = repo.RiskAssessment().Update(ctx, stale)
	gt.NoError(t, err).Required()

	fixed, err := uc.Assessment.Recalculate(ctx, created.ID)
	gt.NoError(t, err).Required()
	gt.V(t, fixed.OverallRiskRating).Equal(types.RiskLevelLow)
	gt.V(t, fixed.IdentifiedRisks[0].ResidualRisk).Equal(types.RiskLevelLow)
}
