package model

import (
	"time"

	"github.com/regtrack/regtrack/pkg/domain/types"
)

// RegulatoryUpdate represents an external regulatory change being tracked
type RegulatoryUpdate struct {
	ID           int64
	Title        string
	Summary      string
	Source       string
	Jurisdiction types.JurisdictionID
	Status       types.UpdateStatus
	PublishedAt  time.Time
	EffectiveAt  time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
