package scoring_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/regtrack/regtrack/pkg/domain/model"
	"github.com/regtrack/regtrack/pkg/domain/scoring"
	"github.com/regtrack/regtrack/pkg/domain/types"
)

func TestScoreItem_InherentTable(t *testing.T) {
	// Exhaustive 3x3 table of likelihood x impact
	tests := []struct {
		likelihood types.Likelihood
		impact     types.Impact
		want       types.RiskLevel
	}{
		{types.LikelihoodLow, types.ImpactLow, types.RiskLevelLow},           // 1
		{types.LikelihoodLow, types.ImpactMedium, types.RiskLevelMedium},     // 2
		{types.LikelihoodLow, types.ImpactHigh, types.RiskLevelMedium},       // 3
		{types.LikelihoodMedium, types.ImpactLow, types.RiskLevelMedium},     // 2
		{types.LikelihoodMedium, types.ImpactMedium, types.RiskLevelHigh},    // 4
		{types.LikelihoodMedium, types.ImpactHigh, types.RiskLevelCritical},  // 6
		{types.LikelihoodHigh, types.ImpactLow, types.RiskLevelMedium},       // 3
		{types.LikelihoodHigh, types.ImpactMedium, types.RiskLevelCritical},  // 6
		{types.LikelihoodHigh, types.ImpactHigh, types.RiskLevelCritical},    // 9
	}

	for _, tt := range tests {
		t.Run(tt.likelihood.String()+"x"+tt.impact.String(), func(t *testing.T) {
			score, err := scoring.ScoreItem(tt.likelihood, tt.impact, false)
			gt.NoError(t, err).Required()
			gt.V(t, score.Inherent).Equal(tt.want)
			// Without mitigation residual equals inherent
			gt.V(t, score.Residual).Equal(tt.want)
		})
	}
}

func TestScoreItem_Deterministic(t *testing.T) {
	for _, l := range types.AllLikelihoods() {
		for _, i := range types.AllImpacts() {
			for _, mitigated := range []bool{false, true} {
				first, err := scoring.ScoreItem(l, i, mitigated)
				gt.NoError(t, err).Required()
				second, err := scoring.ScoreItem(l, i, mitigated)
				gt.NoError(t, err).Required()
				gt.V(t, second).Equal(first)
			}
		}
	}
}

func TestScoreItem_Monotonic(t *testing.T) {
	likelihoods := types.AllLikelihoods()
	impacts := types.AllImpacts()

	// Raising likelihood with impact fixed never lowers the inherent rating
	for _, i := range impacts {
		prev := 0
		for _, l := range likelihoods {
			score, err := scoring.ScoreItem(l, i, false)
			gt.NoError(t, err).Required()
			gt.B(t, score.Inherent.Rank() >= prev).
				Describef("likelihood %s impact %s decreased the rating", l, i).
				True()
			prev = score.Inherent.Rank()
		}
	}

	// And symmetrically for impact
	for _, l := range likelihoods {
		prev := 0
		for _, i := range impacts {
			score, err := scoring.ScoreItem(l, i, false)
			gt.NoError(t, err).Required()
			gt.B(t, score.Inherent.Rank() >= prev).True()
			prev = score.Inherent.Rank()
		}
	}
}

func TestScoreItem_MitigationDemotion(t *testing.T) {
	tests := []struct {
		name         string
		likelihood   types.Likelihood
		impact       types.Impact
		wantInherent types.RiskLevel
		wantResidual types.RiskLevel
	}{
		{
			name:         "critical demotes to high",
			likelihood:   types.LikelihoodHigh,
			impact:       types.ImpactHigh,
			wantInherent: types.RiskLevelCritical,
			wantResidual: types.RiskLevelHigh,
		},
		{
			name:         "high demotes to medium",
			likelihood:   types.LikelihoodMedium,
			impact:       types.ImpactMedium,
			wantInherent: types.RiskLevelHigh,
			wantResidual: types.RiskLevelMedium,
		},
		{
			name:         "medium demotes to low",
			likelihood:   types.LikelihoodLow,
			impact:       types.ImpactMedium,
			wantInherent: types.RiskLevelMedium,
			wantResidual: types.RiskLevelLow,
		},
		{
			name:         "low has no demotion floor below it",
			likelihood:   types.LikelihoodLow,
			impact:       types.ImpactLow,
			wantInherent: types.RiskLevelLow,
			wantResidual: types.RiskLevelLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, err := scoring.ScoreItem(tt.likelihood, tt.impact, true)
			gt.NoError(t, err).Required()
			gt.V(t, score.Inherent).Equal(tt.wantInherent)
			gt.V(t, score.Residual).Equal(tt.wantResidual)
		})
	}
}

func TestScoreItem_InvalidEnum(t *testing.T) {
	_, err := scoring.ScoreItem(types.Likelihood("Extreme"), types.ImpactLow, false)
	gt.Error(t, err)
	gt.B(t, errors.Is(err, types.ErrInvalidEnum)).True()

	_, err = scoring.ScoreItem(types.LikelihoodLow, types.Impact("Severe"), false)
	gt.Error(t, err)
	gt.B(t, errors.Is(err, types.ErrInvalidEnum)).True()

	_, err = scoring.ScoreItem("", "", true)
	gt.Error(t, err)
	gt.B(t, errors.Is(err, types.ErrInvalidEnum)).True()
}

func TestScoreAssessment(t *testing.T) {
	t.Run("empty assessment defaults to low", func(t *testing.T) {
		gt.V(t, scoring.ScoreAssessment(nil)).Equal(types.RiskLevelLow)
		gt.V(t, scoring.ScoreAssessment([]model.RiskItem{})).Equal(types.RiskLevelLow)
	})

	t.Run("maximum residual wins regardless of order", func(t *testing.T) {
		items := []model.RiskItem{
			{ResidualRisk: types.RiskLevelLow},
			{ResidualRisk: types.RiskLevelHigh},
			{ResidualRisk: types.RiskLevelMedium},
		}
		gt.V(t, scoring.ScoreAssessment(items)).Equal(types.RiskLevelHigh)

		reversed := []model.RiskItem{items[2], items[1], items[0]}
		gt.V(t, scoring.ScoreAssessment(reversed)).Equal(types.RiskLevelHigh)
	})
}

func TestRecalculate(t *testing.T) {
	t.Run("refreshes all derived fields", func(t *testing.T) {
		assessment := &model.RiskAssessment{
			IdentifiedRisks: []model.RiskItem{
				{
					Description: "unpatched server",
					Likelihood:  types.LikelihoodHigh,
					Impact:      types.ImpactHigh,
				},
				{
					Description:        "vendor contract lapse",
					Likelihood:         types.LikelihoodMedium,
					Impact:             types.ImpactMedium,
					MitigationControls: []string{"automated renewal alerts"},
				},
			},
		}

		gt.NoError(t, scoring.Recalculate(assessment)).Required()

		gt.V(t, assessment.IdentifiedRisks[0].InherentRisk).Equal(types.RiskLevelCritical)
		gt.V(t, assessment.IdentifiedRisks[0].ResidualRisk).Equal(types.RiskLevelCritical)
		gt.V(t, assessment.IdentifiedRisks[1].InherentRisk).Equal(types.RiskLevelHigh)
		gt.V(t, assessment.IdentifiedRisks[1].ResidualRisk).Equal(types.RiskLevelMedium)
		gt.V(t, assessment.OverallRiskRating).Equal(types.RiskLevelCritical)
	})

	t.Run("stale cached ratings are overwritten", func(t *testing.T) {
		assessment := &model.RiskAssessment{
			IdentifiedRisks: []model.RiskItem{
				{
					Likelihood:   types.LikelihoodLow,
					Impact:       types.ImpactLow,
					InherentRisk: types.RiskLevelCritical, // stale
					ResidualRisk: types.RiskLevelCritical, // stale
				},
			},
			OverallRiskRating: types.RiskLevelCritical,
		}

		gt.NoError(t, scoring.Recalculate(assessment)).Required()
		gt.V(t, assessment.IdentifiedRisks[0].InherentRisk).Equal(types.RiskLevelLow)
		gt.V(t, assessment.IdentifiedRisks[0].ResidualRisk).Equal(types.RiskLevelLow)
		gt.V(t, assessment.OverallRiskRating).Equal(types.RiskLevelLow)
	})

	t.Run("invalid item leaves assessment untouched", func(t *testing.T) {
		assessment := &model.RiskAssessment{
			IdentifiedRisks: []model.RiskItem{
				{
					Likelihood:   types.LikelihoodHigh,
					Impact:       types.ImpactHigh,
					InherentRisk: types.RiskLevelMedium, // stale, must survive the failure
					ResidualRisk: types.RiskLevelMedium,
				},
				{
					Likelihood: types.Likelihood("Extreme"),
					Impact:     types.ImpactLow,
				},
			},
			OverallRiskRating: types.RiskLevelMedium,
		}

		err := scoring.Recalculate(assessment)
		gt.Error(t, err)
		gt.B(t, errors.Is(err, types.ErrInvalidEnum)).True()

		gt.V(t, assessment.IdentifiedRisks[0].InherentRisk).Equal(types.RiskLevelMedium)
		gt.V(t, assessment.OverallRiskRating).Equal(types.RiskLevelMedium)
	})

	t.Run("empty assessment resets rating to low", func(t *testing.T) {
		assessment := &model.RiskAssessment{
			OverallRiskRating: types.RiskLevelHigh,
		}
		gt.NoError(t, scoring.Recalculate(assessment)).Required()
		gt.V(t, assessment.OverallRiskRating).Equal(types.RiskLevelLow)
	})
}
