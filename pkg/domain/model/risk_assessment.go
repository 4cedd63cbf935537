package model

import (
	"time"

	"github.com/regtrack/regtrack/pkg/domain/types"
)

// RiskItem is a single identified risk within an assessment.
//
// InherentRisk and ResidualRisk are cached projections of Likelihood,
// Impact and MitigationControls. They are recomputed by the scoring
// engine whenever any of the three inputs change and must never be
// treated as independent state.
type RiskItem struct {
	Description        string
	Likelihood         types.Likelihood
	Impact             types.Impact
	MitigationControls []string
	InherentRisk       types.RiskLevel
	ResidualRisk       types.RiskLevel
}

// HasMitigation reports whether at least one mitigation control is recorded
func (r *RiskItem) HasMitigation() bool {
	return len(r.MitigationControls) > 0
}

// Clone returns a deep copy of the risk item
func (r *RiskItem) Clone() RiskItem {
	copied := *r
	if r.MitigationControls != nil {
		copied.MitigationControls = make([]string, len(r.MitigationControls))
		copy(copied.MitigationControls, r.MitigationControls)
	}
	return copied
}

// RiskItemUpdate is a typed partial update over the closed set of editable
// risk item fields. Nil fields are left untouched. Derived ratings are NOT
// part of the update surface; callers must rescore after applying.
type RiskItemUpdate struct {
	Description        *string
	Likelihood         *types.Likelihood
	Impact             *types.Impact
	MitigationControls *[]string
}

// Apply copies the non-nil fields of the update onto the item. The caller
// is responsible for rescoring the item afterwards; Apply alone leaves the
// derived ratings stale.
func (r *RiskItem) Apply(upd RiskItemUpdate) {
	if upd.Description != nil {
		r.Description = *upd.Description
	}
	if upd.Likelihood != nil {
		r.Likelihood = *upd.Likelihood
	}
	if upd.Impact != nil {
		r.Impact = *upd.Impact
	}
	if upd.MitigationControls != nil {
		controls := make([]string, len(*upd.MitigationControls))
		copy(controls, *upd.MitigationControls)
		r.MitigationControls = controls
	}
}

// RiskAssessment groups identified risks and carries their rolled-up
// rating. IdentifiedRisks keeps entry order; items are addressed by
// position.
type RiskAssessment struct {
	ID                int64
	Title             string
	Description       string
	Status            types.AssessmentStatus
	IdentifiedRisks   []RiskItem
	OverallRiskRating types.RiskLevel
	AssessedAt        time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Clone returns a deep copy of the assessment
func (a *RiskAssessment) Clone() *RiskAssessment {
	copied := *a
	if a.IdentifiedRisks != nil {
		copied.IdentifiedRisks = make([]RiskItem, len(a.IdentifiedRisks))
		for i := range a.IdentifiedRisks {
			copied.IdentifiedRisks[i] = a.IdentifiedRisks[i].Clone()
		}
	}
	return &copied
}

// IsFinal reports whether the assessment has been finalized
func (a *RiskAssessment) IsFinal() bool {
	return a.Status == types.AssessmentStatusFinal
}
