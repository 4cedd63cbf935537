package worker

import (
	"context"
	"time"

	"github.com/regtrack/regtrack/pkg/usecase"
	"github.com/regtrack/regtrack/pkg/utils/logging"
)

// LicenseExpiryWorker sweeps the license records on a fixed interval and
// marks overdue ones as EXPIRED.
//
// Architecture assumptions:
// - Single server instance (no distributed locking)
// - For future horizontal scaling, implement distributed locking or leader election
type LicenseExpiryWorker struct {
	licenses *usecase.LicenseUseCase
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewLicenseExpiryWorker creates a new worker for expiring overdue licenses
func NewLicenseExpiryWorker(licenses *usecase.LicenseUseCase, interval time.Duration) *LicenseExpiryWorker {
	return &LicenseExpiryWorker{
		licenses: licenses,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background sweep loop. The initial sweep and the
// periodic ones run in a goroutine, so server startup is not blocked.
func (w *LicenseExpiryWorker) Start(ctx context.Context) error {
	logging.From(ctx).Info("license expiry worker starting",
		"interval", w.interval.String())

	go w.run(ctx)

	return nil
}

// Stop signals the worker to stop and waits for completion
func (w *LicenseExpiryWorker) Stop() {
	logging.Default().Info("license expiry worker stopping")
	close(w.stopCh)
	<-w.doneCh
	logging.Default().Info("license expiry worker stopped")
}

// run is the main worker loop (runs in goroutine)
func (w *LicenseExpiryWorker) run(ctx context.Context) {
	defer close(w.doneCh)

	if err := w.sweep(ctx); err != nil {
		logging.From(ctx).Error("initial license expiry sweep failed (will retry next interval)",
			"error", err.Error())
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.sweep(ctx); err != nil {
				// Log error but continue worker
				logging.From(ctx).Error("license expiry sweep failed (will retry next interval)",
					"error", err.Error())
			}

		case <-w.stopCh:
			logging.From(ctx).Info("license expiry worker received stop signal")
			return

		case <-ctx.Done():
			logging.From(ctx).Info("license expiry worker context cancelled")
			return
		}
	}
}

// sweep performs a single expiry pass
func (w *LicenseExpiryWorker) sweep(ctx context.Context) error {
	start := time.Now()

	expired, err := w.licenses.ExpireOverdue(ctx, start.UTC())
	if err != nil {
		return err
	}

	if len(expired) > 0 {
		logging.From(ctx).Info("license expiry sweep completed",
			"expired", len(expired),
			"duration", time.Since(start).String())
	}

	return nil
}
