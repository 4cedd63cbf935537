package types

import "github.com/m-mizutani/goerr/v2"

// PolicyStatus represents the lifecycle status of a policy document
type PolicyStatus string

const (
	PolicyStatusDraft    PolicyStatus = "DRAFT"
	PolicyStatusActive   PolicyStatus = "ACTIVE"
	PolicyStatusArchived PolicyStatus = "ARCHIVED"
)

// AllPolicyStatuses returns all valid policy statuses
func AllPolicyStatuses() []PolicyStatus {
	return []PolicyStatus{
		PolicyStatusDraft,
		PolicyStatusActive,
		PolicyStatusArchived,
	}
}

// IsValid checks if the policy status is valid
func (s PolicyStatus) IsValid() bool {
	switch s {
	case PolicyStatusDraft,
		PolicyStatusActive,
		PolicyStatusArchived:
		return true
	default:
		return false
	}
}

// Normalize returns the status, treating empty as PolicyStatusDraft.
func (s PolicyStatus) Normalize() PolicyStatus {
	if s == "" {
		return PolicyStatusDraft
	}
	return s
}

// String returns the string representation of the policy status
func (s PolicyStatus) String() string {
	return string(s)
}

// ParsePolicyStatus parses a string into a PolicyStatus
func ParsePolicyStatus(s string) (PolicyStatus, error) {
	status := PolicyStatus(s)
	if !status.IsValid() {
		return "", goerr.Wrap(ErrInvalidEnum, "invalid policy status", goerr.V("value", s))
	}
	return status, nil
}
