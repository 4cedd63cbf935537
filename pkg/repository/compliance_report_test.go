package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/regtrack/regtrack/pkg/domain/interfaces"
	"github.com/regtrack/regtrack/pkg/domain/model"
	"github.com/regtrack/regtrack/pkg/domain/types"
)

func runComplianceReportRepositoryTest(t *testing.T, newRepo repoFactory) {
	t.Helper()

	t.Run("Create assigns ID and request time", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.ComplianceReport().Create(ctx, &model.ComplianceReport{
			Status: types.ReportStatusPending,
		})
		if err != nil {
			t.Fatalf("failed to create report: %v", err)
		}
		if created.ID == "" {
			t.Error("expected generated report ID")
		}
		if created.RequestedAt.IsZero() {
			t.Error("expected RequestedAt to be set")
		}
	})

	t.Run("Update transitions status", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.ComplianceReport().Create(ctx, &model.ComplianceReport{
			Status: types.ReportStatusPending,
		})
		if err != nil {
			t.Fatalf("failed to create report: %v", err)
		}

		created.Status = types.ReportStatusCompleted
		created.Content = "All licenses current."
		created.CompletedAt = time.Now().UTC()

		updated, err := repo.ComplianceReport().Update(ctx, created)
		if err != nil {
			t.Fatalf("failed to update report: %v", err)
		}
		if updated.Status != types.ReportStatusCompleted || updated.Content == "" {
			t.Errorf("unexpected report: %+v", updated)
		}
	})

	t.Run("List returns newest first", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		older, err := repo.ComplianceReport().Create(ctx, &model.ComplianceReport{
			Status:      types.ReportStatusCompleted,
			RequestedAt: time.Now().UTC().Add(-time.Hour),
		})
		if err != nil {
			t.Fatalf("failed to create older report: %v", err)
		}
		newer, err := repo.ComplianceReport().Create(ctx, &model.ComplianceReport{
			Status:      types.ReportStatusPending,
			RequestedAt: time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("failed to create newer report: %v", err)
		}

		reports, err := repo.ComplianceReport().List(ctx)
		if err != nil {
			t.Fatalf("failed to list reports: %v", err)
		}
		if len(reports) != 2 {
			t.Fatalf("expected 2 reports, got %d", len(reports))
		}
		if reports[0].ID != newer.ID || reports[1].ID != older.ID {
			t.Error("expected newest-first ordering")
		}
	})

	t.Run("Get unknown ID returns ErrNotFound", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.ComplianceReport().Get(context.Background(), model.NewReportID())
		if !errors.Is(err, interfaces.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestMemoryComplianceReportRepository(t *testing.T) {
	runComplianceReportRepositoryTest(t, newMemoryRepository)
}

func TestFirestoreComplianceReportRepository(t *testing.T) {
	runComplianceReportRepositoryTest(t, newFirestoreRepository)
}
