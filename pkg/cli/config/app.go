package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	domainConfig "github.com/regtrack/regtrack/pkg/domain/model/config"
	"github.com/regtrack/regtrack/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// AppConfig represents the application configuration file. All sections
// are optional; an empty section accepts any value for that field.
type AppConfig struct {
	LicenseTypes     []Category     `toml:"license_type"`
	PolicyCategories []Category     `toml:"policy_category"`
	Jurisdictions    []Jurisdiction `toml:"jurisdiction"`
	Compliance       Compliance     `toml:"compliance"`

	path string
}

// Category represents a license type or policy category configuration
type Category struct {
	ID          string `toml:"id"`
	Name        string `toml:"name"`
	Description string `toml:"description"`
}

// Validate checks if the Category is valid
func (c *Category) Validate() error {
	id := types.CategoryID(c.ID)
	if err := id.Validate(); err != nil {
		return goerr.Wrap(err, "invalid category ID")
	}
	if c.Name == "" {
		return goerr.Wrap(ErrMissingName, "category name is required", goerr.V(EntryIDKey, c.ID))
	}
	return nil
}

// Jurisdiction represents a regulatory jurisdiction configuration
type Jurisdiction struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
}

// Validate checks if the Jurisdiction is valid
func (j *Jurisdiction) Validate() error {
	id := types.JurisdictionID(j.ID)
	if err := id.Validate(); err != nil {
		return goerr.Wrap(err, "invalid jurisdiction ID")
	}
	if j.Name == "" {
		return goerr.Wrap(ErrMissingName, "jurisdiction name is required", goerr.V(EntryIDKey, j.ID))
	}
	return nil
}

// Compliance holds settings for the AI compliance check
type Compliance struct {
	// Prompt is appended to the compliance check prompt as additional
	// instructions for the analyst persona.
	Prompt string `toml:"prompt"`
}

// Flags returns CLI flags for the application configuration
func (a *AppConfig) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to TOML configuration file",
			Sources:     cli.EnvVars("REGTRACK_CONFIG"),
			Destination: &a.path,
		},
	}
}

// Validate checks the configuration for duplicate and malformed entries
func (a *AppConfig) Validate() error {
	seen := make(map[string]bool)
	for _, cat := range a.LicenseTypes {
		if err := cat.Validate(); err != nil {
			return goerr.Wrap(err, "invalid license type")
		}
		if seen["license:"+cat.ID] {
			return goerr.Wrap(ErrDuplicateID, "duplicate license type ID", goerr.V(EntryIDKey, cat.ID))
		}
		seen["license:"+cat.ID] = true
	}

	for _, cat := range a.PolicyCategories {
		if err := cat.Validate(); err != nil {
			return goerr.Wrap(err, "invalid policy category")
		}
		if seen["policy:"+cat.ID] {
			return goerr.Wrap(ErrDuplicateID, "duplicate policy category ID", goerr.V(EntryIDKey, cat.ID))
		}
		seen["policy:"+cat.ID] = true
	}

	for _, j := range a.Jurisdictions {
		if err := j.Validate(); err != nil {
			return goerr.Wrap(err, "invalid jurisdiction")
		}
		if seen["jurisdiction:"+j.ID] {
			return goerr.Wrap(ErrDuplicateID, "duplicate jurisdiction ID", goerr.V(EntryIDKey, j.ID))
		}
		seen["jurisdiction:"+j.ID] = true
	}

	return nil
}

// Configure loads and validates the configuration file. A missing --config
// flag yields an empty configuration, which accepts any value.
func (a *AppConfig) Configure() (*domainConfig.ComplianceConfig, error) {
	if a.path != "" {
		loaded, err := LoadAppConfiguration(a.path)
		if err != nil {
			return nil, err
		}
		loaded.path = a.path
		*a = *loaded
	} else if err := a.Validate(); err != nil {
		return nil, err
	}

	return a.ToDomainConfig(), nil
}

// LoadAppConfiguration loads the application configuration from a TOML file
func LoadAppConfiguration(path string) (*AppConfig, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(ErrConfigNotFound, "failed to read config file", goerr.V(ConfigPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V(ConfigPathKey, path))
	}

	var config AppConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, goerr.Wrap(ErrInvalidConfig, "failed to parse TOML config",
			goerr.V(ConfigPathKey, path),
			goerr.V("cause", err.Error()),
		)
	}

	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "config validation failed", goerr.V(ConfigPathKey, path))
	}

	return &config, nil
}

// ToDomainConfig converts AppConfig to the domain ComplianceConfig
func (a *AppConfig) ToDomainConfig() *domainConfig.ComplianceConfig {
	licenseTypes := make([]domainConfig.Category, len(a.LicenseTypes))
	for i, cat := range a.LicenseTypes {
		licenseTypes[i] = domainConfig.Category{
			ID:          cat.ID,
			Name:        cat.Name,
			Description: cat.Description,
		}
	}

	policyCategories := make([]domainConfig.Category, len(a.PolicyCategories))
	for i, cat := range a.PolicyCategories {
		policyCategories[i] = domainConfig.Category{
			ID:          cat.ID,
			Name:        cat.Name,
			Description: cat.Description,
		}
	}

	jurisdictions := make([]domainConfig.Jurisdiction, len(a.Jurisdictions))
	for i, j := range a.Jurisdictions {
		jurisdictions[i] = domainConfig.Jurisdiction{
			ID:   j.ID,
			Name: j.Name,
		}
	}

	return &domainConfig.ComplianceConfig{
		LicenseTypes:     licenseTypes,
		PolicyCategories: policyCategories,
		Jurisdictions:    jurisdictions,
		CheckPrompt:      a.Compliance.Prompt,
	}
}
