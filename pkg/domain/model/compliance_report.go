package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/regtrack/regtrack/pkg/domain/types"
)

// ReportID is a unique identifier for a compliance report
type ReportID string

// NewReportID generates a new unique report ID
func NewReportID() ReportID {
	return ReportID(uuid.New().String())
}

// String returns the string representation of ReportID
func (r ReportID) String() string {
	return string(r)
}

// ComplianceReport is the stored result of one AI compliance check run.
// Content is the generated report text; Error is set when Status is FAILED.
type ComplianceReport struct {
	ID          ReportID
	Status      types.ReportStatus
	Content     string
	Error       string
	RequestedAt time.Time
	CompletedAt time.Time
}
