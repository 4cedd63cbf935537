package model

import (
	"time"

	"github.com/regtrack/regtrack/pkg/domain/types"
)

// License represents a regulatory or commercial license held by the organization
type License struct {
	ID           int64
	Name         string
	Holder       string
	Type         types.CategoryID
	Status       types.LicenseStatus
	Jurisdiction types.JurisdictionID
	IssuedAt     time.Time
	ExpiresAt    time.Time
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ExpiresWithin reports whether the license expires within d of now.
// Already-expired licenses are included.
func (l *License) ExpiresWithin(now time.Time, d time.Duration) bool {
	if l.ExpiresAt.IsZero() {
		return false
	}
	return !l.ExpiresAt.After(now.Add(d))
}

// IsOverdue reports whether the license has passed its expiry date without
// being marked EXPIRED or REVOKED.
func (l *License) IsOverdue(now time.Time) bool {
	if l.ExpiresAt.IsZero() || l.ExpiresAt.After(now) {
		return false
	}
	switch l.Status {
	case types.LicenseStatusExpired, types.LicenseStatusRevoked:
		return false
	default:
		return true
	}
}
