package types

import "github.com/m-mizutani/goerr/v2"

// AssessmentStatus represents the lifecycle status of a risk assessment.
// A FINAL assessment has been recalculated and is immutable.
type AssessmentStatus string

const (
	AssessmentStatusDraft AssessmentStatus = "DRAFT"
	AssessmentStatusFinal AssessmentStatus = "FINAL"
)

// AllAssessmentStatuses returns all valid assessment statuses
func AllAssessmentStatuses() []AssessmentStatus {
	return []AssessmentStatus{
		AssessmentStatusDraft,
		AssessmentStatusFinal,
	}
}

// IsValid checks if the assessment status is valid
func (s AssessmentStatus) IsValid() bool {
	switch s {
	case AssessmentStatusDraft,
		AssessmentStatusFinal:
		return true
	default:
		return false
	}
}

// Normalize returns the status, treating empty as AssessmentStatusDraft.
func (s AssessmentStatus) Normalize() AssessmentStatus {
	if s == "" {
		return AssessmentStatusDraft
	}
	return s
}

// String returns the string representation of the assessment status
func (s AssessmentStatus) String() string {
	return string(s)
}

// ParseAssessmentStatus parses a string into an AssessmentStatus
func ParseAssessmentStatus(s string) (AssessmentStatus, error) {
	status := AssessmentStatus(s)
	if !status.IsValid() {
		return "", goerr.Wrap(ErrInvalidEnum, "invalid assessment status", goerr.V("value", s))
	}
	return status, nil
}
