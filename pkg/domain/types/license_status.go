package types

import "github.com/m-mizutani/goerr/v2"

// LicenseStatus represents the lifecycle status of a license
type LicenseStatus string

const (
	LicenseStatusActive         LicenseStatus = "ACTIVE"
	LicenseStatusPendingRenewal LicenseStatus = "PENDING_RENEWAL"
	LicenseStatusExpired        LicenseStatus = "EXPIRED"
	LicenseStatusRevoked        LicenseStatus = "REVOKED"
)

// AllLicenseStatuses returns all valid license statuses
func AllLicenseStatuses() []LicenseStatus {
	return []LicenseStatus{
		LicenseStatusActive,
		LicenseStatusPendingRenewal,
		LicenseStatusExpired,
		LicenseStatusRevoked,
	}
}

// IsValid checks if the license status is valid
func (s LicenseStatus) IsValid() bool {
	switch s {
	case LicenseStatusActive,
		LicenseStatusPendingRenewal,
		LicenseStatusExpired,
		LicenseStatusRevoked:
		return true
	default:
		return false
	}
}

// Normalize returns the status, treating empty as LicenseStatusActive.
func (s LicenseStatus) Normalize() LicenseStatus {
	if s == "" {
		return LicenseStatusActive
	}
	return s
}

// String returns the string representation of the license status
func (s LicenseStatus) String() string {
	return string(s)
}

// ParseLicenseStatus parses a string into a LicenseStatus
func ParseLicenseStatus(s string) (LicenseStatus, error) {
	status := LicenseStatus(s)
	if !status.IsValid() {
		return "", goerr.Wrap(ErrInvalidEnum, "invalid license status", goerr.V("value", s))
	}
	return status, nil
}
