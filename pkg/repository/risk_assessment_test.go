package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/regtrack/regtrack/pkg/domain/interfaces"
	"github.com/regtrack/regtrack/pkg/domain/model"
	"github.com/regtrack/regtrack/pkg/domain/types"
)

func runRiskAssessmentRepositoryTest(t *testing.T, newRepo repoFactory) {
	t.Helper()

	t.Run("Create stores risk items in entry order", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.RiskAssessment().Create(ctx, &model.RiskAssessment{
			Title: "Vendor Review",
			IdentifiedRisks: []model.RiskItem{
				{Description: "first", Likelihood: types.LikelihoodLow, Impact: types.ImpactLow},
				{Description: "second", Likelihood: types.LikelihoodHigh, Impact: types.ImpactHigh},
			},
		})
		if err != nil {
			t.Fatalf("failed to create assessment: %v", err)
		}

		got, err := repo.RiskAssessment().Get(ctx, created.ID)
		if err != nil {
			t.Fatalf("failed to get assessment: %v", err)
		}
		if len(got.IdentifiedRisks) != 2 {
			t.Fatalf("expected 2 risk items, got %d", len(got.IdentifiedRisks))
		}
		if got.IdentifiedRisks[0].Description != "first" || got.IdentifiedRisks[1].Description != "second" {
			t.Error("risk item order was not preserved")
		}
	})

	t.Run("Update replaces risk items", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.RiskAssessment().Create(ctx, &model.RiskAssessment{
			Title: "Annual Review",
			IdentifiedRisks: []model.RiskItem{
				{Description: "to be removed"},
			},
		})
		if err != nil {
			t.Fatalf("failed to create assessment: %v", err)
		}

		created.IdentifiedRisks = []model.RiskItem{
			{Description: "replacement", Likelihood: types.LikelihoodMedium, Impact: types.ImpactMedium},
		}
		created.OverallRiskRating = types.RiskLevelHigh

		updated, err := repo.RiskAssessment().Update(ctx, created)
		if err != nil {
			t.Fatalf("failed to update assessment: %v", err)
		}
		if len(updated.IdentifiedRisks) != 1 || updated.IdentifiedRisks[0].Description != "replacement" {
			t.Errorf("unexpected risk items: %+v", updated.IdentifiedRisks)
		}
		if updated.OverallRiskRating != types.RiskLevelHigh {
			t.Errorf("expected overall rating HIGH, got %s", updated.OverallRiskRating)
		}
	})

	t.Run("stored items are isolated from caller slices", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		items := []model.RiskItem{
			{Description: "original", MitigationControls: []string{"control"}},
		}
		created, err := repo.RiskAssessment().Create(ctx, &model.RiskAssessment{
			Title:           "Isolation",
			IdentifiedRisks: items,
		})
		if err != nil {
			t.Fatalf("failed to create assessment: %v", err)
		}

		items[0].Description = "mutated"
		items[0].MitigationControls[0] = "mutated"

		got, err := repo.RiskAssessment().Get(ctx, created.ID)
		if err != nil {
			t.Fatalf("failed to get assessment: %v", err)
		}
		if got.IdentifiedRisks[0].Description != "original" {
			t.Error("assessment items aliased the caller slice")
		}
		if got.IdentifiedRisks[0].MitigationControls[0] != "control" {
			t.Error("mitigation controls aliased the caller slice")
		}
	})

	t.Run("Get unknown ID returns ErrNotFound", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.RiskAssessment().Get(context.Background(), 12345)
		if !errors.Is(err, interfaces.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("List filters by minimum rating", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		ratings := []types.RiskLevel{
			types.RiskLevelLow,
			types.RiskLevelHigh,
			types.RiskLevelCritical,
		}
		for _, rating := range ratings {
			if _, err := repo.RiskAssessment().Create(ctx, &model.RiskAssessment{
				Title:             "rated " + rating.String(),
				OverallRiskRating: rating,
			}); err != nil {
				t.Fatalf("failed to seed assessment: %v", err)
			}
		}

		got, err := repo.RiskAssessment().List(ctx, interfaces.ListAssessmentsOptions{
			MinRating:  types.RiskLevelHigh,
			SortBy:     interfaces.SortByRiskRating,
			Descending: true,
		})
		if err != nil {
			t.Fatalf("failed to list assessments: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 assessments, got %d", len(got))
		}
		if got[0].OverallRiskRating != types.RiskLevelCritical {
			t.Errorf("expected CRITICAL first, got %s", got[0].OverallRiskRating)
		}
	})
}

func TestMemoryRiskAssessmentRepository(t *testing.T) {
	runRiskAssessmentRepositoryTest(t, newMemoryRepository)
}

func TestFirestoreRiskAssessmentRepository(t *testing.T) {
	runRiskAssessmentRepositoryTest(t, newFirestoreRepository)
}
