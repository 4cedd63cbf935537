package config

// Category represents a configured license type or policy category
type Category struct {
	ID          string
	Name        string
	Description string
}

// Jurisdiction represents a configured regulatory jurisdiction
type Jurisdiction struct {
	ID   string
	Name string
}

// ComplianceConfig is the domain view of the application configuration.
// Empty slices mean "accept anything" so that the service runs without a
// configuration file in development.
type ComplianceConfig struct {
	LicenseTypes     []Category
	PolicyCategories []Category
	Jurisdictions    []Jurisdiction
	CheckPrompt      string
}

// HasLicenseType reports whether id is a configured license type
func (c *ComplianceConfig) HasLicenseType(id string) bool {
	for _, cat := range c.LicenseTypes {
		if cat.ID == id {
			return true
		}
	}
	return false
}

// HasPolicyCategory reports whether id is a configured policy category
func (c *ComplianceConfig) HasPolicyCategory(id string) bool {
	for _, cat := range c.PolicyCategories {
		if cat.ID == id {
			return true
		}
	}
	return false
}

// HasJurisdiction reports whether id is a configured jurisdiction
func (c *ComplianceConfig) HasJurisdiction(id string) bool {
	for _, j := range c.Jurisdictions {
		if j.ID == id {
			return true
		}
	}
	return false
}
