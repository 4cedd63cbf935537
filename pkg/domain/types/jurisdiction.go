package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// JurisdictionID represents a unique identifier for a regulatory jurisdiction
type JurisdictionID string

// Validate checks if the JurisdictionID is valid
func (j JurisdictionID) Validate() error {
	if j == "" {
		return goerr.New("jurisdiction ID cannot be empty")
	}
	if !idPattern.MatchString(string(j)) {
		return goerr.New("jurisdiction ID must be lowercase alphanumeric with hyphens", goerr.V("id", j))
	}
	return nil
}

// String returns the string representation of JurisdictionID
func (j JurisdictionID) String() string {
	return string(j)
}
