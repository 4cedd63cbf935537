package types

import "github.com/m-mizutani/goerr/v2"

// RiskLevel represents a derived risk rating. Unlike Likelihood and Impact
// it carries a fourth level, CRITICAL, reachable only through scoring.
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "LOW"
	RiskLevelMedium   RiskLevel = "MEDIUM"
	RiskLevelHigh     RiskLevel = "HIGH"
	RiskLevelCritical RiskLevel = "CRITICAL"
)

// AllRiskLevels returns all valid risk levels in ascending order
func AllRiskLevels() []RiskLevel {
	return []RiskLevel{
		RiskLevelLow,
		RiskLevelMedium,
		RiskLevelHigh,
		RiskLevelCritical,
	}
}

// IsValid checks if the risk level is valid
func (r RiskLevel) IsValid() bool {
	switch r {
	case RiskLevelLow,
		RiskLevelMedium,
		RiskLevelHigh,
		RiskLevelCritical:
		return true
	default:
		return false
	}
}

// Rank maps the risk level to its ordinal rank (LOW=1 .. CRITICAL=4).
// Returns 0 for values outside the enumeration.
func (r RiskLevel) Rank() int {
	switch r {
	case RiskLevelLow:
		return 1
	case RiskLevelMedium:
		return 2
	case RiskLevelHigh:
		return 3
	case RiskLevelCritical:
		return 4
	default:
		return 0
	}
}

// Demote lowers the risk level by one step. LOW is the floor and stays LOW.
func (r RiskLevel) Demote() RiskLevel {
	switch r {
	case RiskLevelCritical:
		return RiskLevelHigh
	case RiskLevelHigh:
		return RiskLevelMedium
	case RiskLevelMedium:
		return RiskLevelLow
	default:
		return RiskLevelLow
	}
}

// MaxRiskLevel returns the higher of two risk levels under the ordinal
// order LOW < MEDIUM < HIGH < CRITICAL.
func MaxRiskLevel(a, b RiskLevel) RiskLevel {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}

// String returns the string representation of the risk level
func (r RiskLevel) String() string {
	return string(r)
}

// ParseRiskLevel parses a string into a RiskLevel
func ParseRiskLevel(s string) (RiskLevel, error) {
	r := RiskLevel(s)
	if !r.IsValid() {
		return "", goerr.Wrap(ErrInvalidEnum, "invalid risk level", goerr.V("value", s))
	}
	return r, nil
}
