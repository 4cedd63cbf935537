// Package scoring derives risk ratings from qualitative likelihood and
// impact inputs. All functions are pure: results depend only on the
// arguments and repeated calls return identical values, so the package is
// safe for concurrent use without locking.
package scoring

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/regtrack/regtrack/pkg/domain/model"
	"github.com/regtrack/regtrack/pkg/domain/types"
)

// ItemScore holds the derived ratings for a single risk item
type ItemScore struct {
	Inherent types.RiskLevel
	Residual types.RiskLevel
}

// ScoreItem computes the inherent and residual risk ratings for one risk
// item. The inherent rating is the product of the likelihood and impact
// ranks (1..9) bucketed into a fixed step function; boundary scores land
// in the higher bucket (exactly 4 is HIGH, exactly 6 is CRITICAL).
//
// With mitigation present the residual rating is demoted one level, with
// LOW as the floor; without mitigation it equals the inherent rating.
//
// Values outside the likelihood/impact enumerations fail with
// types.ErrInvalidEnum. That is the only failure mode.
func ScoreItem(likelihood types.Likelihood, impact types.Impact, hasMitigation bool) (ItemScore, error) {
	if !likelihood.IsValid() {
		return ItemScore{}, goerr.Wrap(types.ErrInvalidEnum, "invalid likelihood",
			goerr.V("likelihood", likelihood))
	}
	if !impact.IsValid() {
		return ItemScore{}, goerr.Wrap(types.ErrInvalidEnum, "invalid impact",
			goerr.V("impact", impact))
	}

	inherent := bucketInherent(likelihood.Rank() * impact.Rank())

	residual := inherent
	if hasMitigation {
		residual = inherent.Demote()
	}

	return ItemScore{Inherent: inherent, Residual: residual}, nil
}

// bucketInherent maps an inherent score in [1,9] to a risk level
func bucketInherent(score int) types.RiskLevel {
	switch {
	case score >= 6:
		return types.RiskLevelCritical
	case score >= 4:
		return types.RiskLevelHigh
	case score >= 2:
		return types.RiskLevelMedium
	default:
		return types.RiskLevelLow
	}
}

// ScoreAssessment rolls up already-scored items into one overall rating:
// the maximum residual risk across the items. The result is
// order-independent. An empty item list yields LOW by definition, not an
// error.
func ScoreAssessment(items []model.RiskItem) types.RiskLevel {
	overall := types.RiskLevelLow
	for i := range items {
		overall = types.MaxRiskLevel(overall, items[i].ResidualRisk)
	}
	return overall
}

// Recalculate rescores every item of the assessment in place and updates
// the overall rating. Either all derived fields are refreshed or, on the
// first invalid item, the assessment is left untouched.
func Recalculate(assessment *model.RiskAssessment) error {
	scores := make([]ItemScore, len(assessment.IdentifiedRisks))
	for i := range assessment.IdentifiedRisks {
		item := &assessment.IdentifiedRisks[i]
		score, err := ScoreItem(item.Likelihood, item.Impact, item.HasMitigation())
		if err != nil {
			return goerr.Wrap(err, "failed to score risk item", goerr.V("index", i))
		}
		scores[i] = score
	}

	for i := range assessment.IdentifiedRisks {
		assessment.IdentifiedRisks[i].InherentRisk = scores[i].Inherent
		assessment.IdentifiedRisks[i].ResidualRisk = scores[i].Residual
	}
	assessment.OverallRiskRating = ScoreAssessment(assessment.IdentifiedRisks)

	return nil
}
