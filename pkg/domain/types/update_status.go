package types

import "github.com/m-mizutani/goerr/v2"

// UpdateStatus represents the review status of a regulatory update
type UpdateStatus string

const (
	UpdateStatusNew         UpdateStatus = "NEW"
	UpdateStatusUnderReview UpdateStatus = "UNDER_REVIEW"
	UpdateStatusActioned    UpdateStatus = "ACTIONED"
	UpdateStatusDismissed   UpdateStatus = "DISMISSED"
)

// AllUpdateStatuses returns all valid regulatory update statuses
func AllUpdateStatuses() []UpdateStatus {
	return []UpdateStatus{
		UpdateStatusNew,
		UpdateStatusUnderReview,
		UpdateStatusActioned,
		UpdateStatusDismissed,
	}
}

// IsValid checks if the update status is valid
func (s UpdateStatus) IsValid() bool {
	switch s {
	case UpdateStatusNew,
		UpdateStatusUnderReview,
		UpdateStatusActioned,
		UpdateStatusDismissed:
		return true
	default:
		return false
	}
}

// Normalize returns the status, treating empty as UpdateStatusNew.
func (s UpdateStatus) Normalize() UpdateStatus {
	if s == "" {
		return UpdateStatusNew
	}
	return s
}

// String returns the string representation of the update status
func (s UpdateStatus) String() string {
	return string(s)
}

// ParseUpdateStatus parses a string into an UpdateStatus
func ParseUpdateStatus(s string) (UpdateStatus, error) {
	status := UpdateStatus(s)
	if !status.IsValid() {
		return "", goerr.Wrap(ErrInvalidEnum, "invalid update status", goerr.V("value", s))
	}
	return status, nil
}
