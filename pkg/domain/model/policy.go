package model

import (
	"time"

	"github.com/regtrack/regtrack/pkg/domain/types"
)

// Policy represents an internal compliance policy document.
// Version starts at 1 and is bumped on every content update.
type Policy struct {
	ID            int64
	Title         string
	Body          string
	Category      types.CategoryID
	Status        types.PolicyStatus
	Version       int
	Owner         string
	EffectiveDate time.Time
	ReviewDate    time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NeedsReview reports whether the policy has passed its review date while
// still active.
func (p *Policy) NeedsReview(now time.Time) bool {
	if p.Status != types.PolicyStatusActive || p.ReviewDate.IsZero() {
		return false
	}
	return !p.ReviewDate.After(now)
}
