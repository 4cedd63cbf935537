package types

import "github.com/m-mizutani/goerr/v2"

// Likelihood represents the qualitative probability of a risk materializing
type Likelihood string

const (
	LikelihoodLow    Likelihood = "LOW"
	LikelihoodMedium Likelihood = "MEDIUM"
	LikelihoodHigh   Likelihood = "HIGH"
)

// AllLikelihoods returns all valid likelihood levels in ascending order
func AllLikelihoods() []Likelihood {
	return []Likelihood{
		LikelihoodLow,
		LikelihoodMedium,
		LikelihoodHigh,
	}
}

// IsValid checks if the likelihood is valid
func (l Likelihood) IsValid() bool {
	switch l {
	case LikelihoodLow,
		LikelihoodMedium,
		LikelihoodHigh:
		return true
	default:
		return false
	}
}

// Rank maps the likelihood to its ordinal rank (LOW=1, MEDIUM=2, HIGH=3).
// Returns 0 for values outside the enumeration.
func (l Likelihood) Rank() int {
	switch l {
	case LikelihoodLow:
		return 1
	case LikelihoodMedium:
		return 2
	case LikelihoodHigh:
		return 3
	default:
		return 0
	}
}

// String returns the string representation of the likelihood
func (l Likelihood) String() string {
	return string(l)
}

// ParseLikelihood parses a string into a Likelihood
func ParseLikelihood(s string) (Likelihood, error) {
	l := Likelihood(s)
	if !l.IsValid() {
		return "", goerr.Wrap(ErrInvalidEnum, "invalid likelihood", goerr.V("value", s))
	}
	return l, nil
}
