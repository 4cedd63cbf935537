package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/regtrack/regtrack/pkg/domain/interfaces"
	"github.com/regtrack/regtrack/pkg/domain/model"
	"github.com/regtrack/regtrack/pkg/domain/model/config"
	"github.com/regtrack/regtrack/pkg/domain/types"
	"github.com/regtrack/regtrack/pkg/utils/logging"
)

type LicenseUseCase struct {
	repo interfaces.Repository
	cfg  *config.ComplianceConfig
}

func NewLicenseUseCase(repo interfaces.Repository, cfg *config.ComplianceConfig) *LicenseUseCase {
	return &LicenseUseCase{repo: repo, cfg: cfg}
}

func (uc *LicenseUseCase) validate(license *model.License) error {
	if license.Name == "" {
		return goerr.New("license name is required")
	}
	if !license.Status.IsValid() {
		return goerr.Wrap(types.ErrInvalidEnum, "invalid license status", goerr.V("status", license.Status))
	}
	if license.Type != "" {
		if err := license.Type.Validate(); err != nil {
			return goerr.Wrap(err, "invalid license type")
		}
		if len(uc.cfg.LicenseTypes) > 0 && !uc.cfg.HasLicenseType(license.Type.String()) {
			return goerr.New("license type is not configured", goerr.V("type", license.Type))
		}
	}
	if license.Jurisdiction != "" {
		if err := license.Jurisdiction.Validate(); err != nil {
			return goerr.Wrap(err, "invalid jurisdiction")
		}
		if len(uc.cfg.Jurisdictions) > 0 && !uc.cfg.HasJurisdiction(license.Jurisdiction.String()) {
			return goerr.New("jurisdiction is not configured", goerr.V("jurisdiction", license.Jurisdiction))
		}
	}
	return nil
}

func (uc *LicenseUseCase) Create(ctx context.Context, license *model.License) (*model.License, error) {
	license.Status = license.Status.Normalize()
	if err := uc.validate(license); err != nil {
		return nil, err
	}

	created, err := uc.repo.License().Create(ctx, license)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create license")
	}
	return created, nil
}

func (uc *LicenseUseCase) Get(ctx context.Context, id int64) (*model.License, error) {
	return uc.repo.License().Get(ctx, id)
}

func (uc *LicenseUseCase) List(ctx context.Context, opts interfaces.ListLicensesOptions) ([]*model.License, error) {
	return uc.repo.License().List(ctx, opts)
}

func (uc *LicenseUseCase) Update(ctx context.Context, license *model.License) (*model.License, error) {
	license.Status = license.Status.Normalize()
	if err := uc.validate(license); err != nil {
		return nil, err
	}

	updated, err := uc.repo.License().Update(ctx, license)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update license", goerr.V("id", license.ID))
	}
	return updated, nil
}

func (uc *LicenseUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.License().Delete(ctx, id)
}

// ExpireOverdue marks active licenses past their expiry date as EXPIRED and
// returns the licenses it transitioned. The expiry worker calls this on a
// fixed interval.
func (uc *LicenseUseCase) ExpireOverdue(ctx context.Context, now time.Time) ([]*model.License, error) {
	licenses, err := uc.repo.License().List(ctx, interfaces.ListLicensesOptions{})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list licenses for expiry sweep")
	}

	var expired []*model.License
	for _, license := range licenses {
		if !license.IsOverdue(now) {
			continue
		}

		license.Status = types.LicenseStatusExpired
		updated, err := uc.repo.License().Update(ctx, license)
		if err != nil {
			return expired, goerr.Wrap(err, "failed to expire license", goerr.V("id", license.ID))
		}

		logging.From(ctx).Info("license expired",
			"id", updated.ID,
			"name", updated.Name,
			"expired_at", updated.ExpiresAt,
		)
		expired = append(expired, updated)
	}

	return expired, nil
}
