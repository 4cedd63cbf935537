package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/regtrack/regtrack/pkg/domain/interfaces"
	"github.com/regtrack/regtrack/pkg/domain/model"
)

type complianceReportRepository struct {
	mu      sync.RWMutex
	reports map[model.ReportID]*model.ComplianceReport
}

func newComplianceReportRepository() *complianceReportRepository {
	return &complianceReportRepository{
		reports: make(map[model.ReportID]*model.ComplianceReport),
	}
}

func copyReport(r *model.ComplianceReport) *model.ComplianceReport {
	copied := *r
	return &copied
}

func (r *complianceReportRepository) Create(ctx context.Context, report *model.ComplianceReport) (*model.ComplianceReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyReport(report)
	if created.ID == "" {
		created.ID = model.NewReportID()
	}
	if created.RequestedAt.IsZero() {
		created.RequestedAt = time.Now().UTC()
	}

	r.reports[created.ID] = created
	return copyReport(created), nil
}

func (r *complianceReportRepository) Get(ctx context.Context, id model.ReportID) (*model.ComplianceReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	report, exists := r.reports[id]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "compliance report not found", goerr.V("id", id))
	}

	return copyReport(report), nil
}

func (r *complianceReportRepository) List(ctx context.Context) ([]*model.ComplianceReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reports := make([]*model.ComplianceReport, 0, len(r.reports))
	for _, report := range r.reports {
		reports = append(reports, copyReport(report))
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].RequestedAt.After(reports[j].RequestedAt)
	})

	return reports, nil
}

func (r *complianceReportRepository) Update(ctx context.Context, report *model.ComplianceReport) (*model.ComplianceReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.reports[report.ID]; !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "compliance report not found", goerr.V("id", report.ID))
	}

	updated := copyReport(report)
	r.reports[updated.ID] = updated
	return copyReport(updated), nil
}
