package usecase

import (
	"github.com/m-mizutani/gollem"
	"github.com/regtrack/regtrack/pkg/domain/interfaces"
	"github.com/regtrack/regtrack/pkg/domain/model/config"
)

type UseCases struct {
	repo      interfaces.Repository
	cfg       *config.ComplianceConfig
	llmClient gollem.LLMClient

	License    *LicenseUseCase
	Policy     *PolicyUseCase
	Update     *RegulatoryUpdateUseCase
	Assessment *AssessmentUseCase
	Compliance *ComplianceUseCase
}

type Option func(*UseCases)

// WithComplianceConfig sets the configured license types, policy categories
// and jurisdictions used for validation
func WithComplianceConfig(cfg *config.ComplianceConfig) Option {
	return func(uc *UseCases) {
		uc.cfg = cfg
	}
}

// WithLLM enables the AI compliance check. Without it, check requests fail
// with ErrLLMNotConfigured.
func WithLLM(client gollem.LLMClient) Option {
	return func(uc *UseCases) {
		uc.llmClient = client
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo: repo,
	}

	for _, opt := range opts {
		opt(uc)
	}

	if uc.cfg == nil {
		uc.cfg = &config.ComplianceConfig{}
	}

	uc.License = NewLicenseUseCase(repo, uc.cfg)
	uc.Policy = NewPolicyUseCase(repo, uc.cfg)
	uc.Update = NewRegulatoryUpdateUseCase(repo, uc.cfg)
	uc.Assessment = NewAssessmentUseCase(repo)
	uc.Compliance = NewComplianceUseCase(repo, uc.cfg, uc.llmClient)

	return uc
}
