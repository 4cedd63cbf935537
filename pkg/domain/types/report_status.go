package types

import "github.com/m-mizutani/goerr/v2"

// ReportStatus represents the generation status of a compliance report
type ReportStatus string

const (
	ReportStatusPending   ReportStatus = "PENDING"
	ReportStatusCompleted ReportStatus = "COMPLETED"
	ReportStatusFailed    ReportStatus = "FAILED"
)

// AllReportStatuses returns all valid report statuses
func AllReportStatuses() []ReportStatus {
	return []ReportStatus{
		ReportStatusPending,
		ReportStatusCompleted,
		ReportStatusFailed,
	}
}

// IsValid checks if the report status is valid
func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportStatusPending,
		ReportStatusCompleted,
		ReportStatusFailed:
		return true
	default:
		return false
	}
}

// String returns the string representation of the report status
func (s ReportStatus) String() string {
	return string(s)
}

// ParseReportStatus parses a string into a ReportStatus
func ParseReportStatus(s string) (ReportStatus, error) {
	status := ReportStatus(s)
	if !status.IsValid() {
		return "", goerr.Wrap(ErrInvalidEnum, "invalid report status", goerr.V("value", s))
	}
	return status, nil
}
