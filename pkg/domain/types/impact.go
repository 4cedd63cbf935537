package types

import "github.com/m-mizutani/goerr/v2"

// Impact represents the qualitative severity of a risk should it materialize
type Impact string

const (
	ImpactLow    Impact = "LOW"
	ImpactMedium Impact = "MEDIUM"
	ImpactHigh   Impact = "HIGH"
)

// AllImpacts returns all valid impact levels in ascending order
func AllImpacts() []Impact {
	return []Impact{
		ImpactLow,
		ImpactMedium,
		ImpactHigh,
	}
}

// IsValid checks if the impact is valid
func (i Impact) IsValid() bool {
	switch i {
	case ImpactLow,
		ImpactMedium,
		ImpactHigh:
		return true
	default:
		return false
	}
}

// Rank maps the impact to its ordinal rank (LOW=1, MEDIUM=2, HIGH=3).
// Returns 0 for values outside the enumeration.
func (i Impact) Rank() int {
	switch i {
	case ImpactLow:
		return 1
	case ImpactMedium:
		return 2
	case ImpactHigh:
		return 3
	default:
		return 0
	}
}

// String returns the string representation of the impact
func (i Impact) String() string {
	return string(i)
}

// ParseImpact parses a string into an Impact
func ParseImpact(s string) (Impact, error) {
	i := Impact(s)
	if !i.IsValid() {
		return "", goerr.Wrap(ErrInvalidEnum, "invalid impact", goerr.V("value", s))
	}
	return i, nil
}
