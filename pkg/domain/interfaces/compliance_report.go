package interfaces

import (
	"context"

	"github.com/regtrack/regtrack/pkg/domain/model"
)

type ComplianceReportRepository interface {
	// Create stores a new report under its ReportID
	Create(ctx context.Context, report *model.ComplianceReport) (*model.ComplianceReport, error)

	// Get retrieves a report by ID
	Get(ctx context.Context, id model.ReportID) (*model.ComplianceReport, error)

	// List retrieves all reports, newest first
	List(ctx context.Context) ([]*model.ComplianceReport, error)

	// Update updates an existing report
	Update(ctx context.Context, report *model.ComplianceReport) (*model.ComplianceReport, error)
}
