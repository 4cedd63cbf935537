package usecase

import (
	"bytes"
	"context"
	_ "embed"
	"text/template"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/regtrack/regtrack/pkg/domain/interfaces"
	"github.com/regtrack/regtrack/pkg/domain/model"
	"github.com/regtrack/regtrack/pkg/domain/model/config"
	"github.com/regtrack/regtrack/pkg/domain/types"
	"github.com/regtrack/regtrack/pkg/utils/async"
	"github.com/regtrack/regtrack/pkg/utils/errutil"
	"golang.org/x/sync/errgroup"
)

//go:embed prompt/compliance_check.md
var compliancePromptTmpl string

var compliancePrompt = template.Must(template.New("compliance_check").Parse(compliancePromptTmpl))

// ComplianceUseCase runs AI-generated compliance status reports over the
// stored records
type ComplianceUseCase struct {
	repo      interfaces.Repository
	cfg       *config.ComplianceConfig
	llmClient gollem.LLMClient
}

func NewComplianceUseCase(repo interfaces.Repository, cfg *config.ComplianceConfig, llmClient gollem.LLMClient) *ComplianceUseCase {
	return &ComplianceUseCase{
		repo:      repo,
		cfg:       cfg,
		llmClient: llmClient,
	}
}

// compliancePromptData holds all records for the compliance check template
type compliancePromptData struct {
	Licenses     []*model.License
	Policies     []*model.Policy
	Updates      []*model.RegulatoryUpdate
	Assessments  []*model.RiskAssessment
	Instructions string
}

// RequestCheck records a PENDING report and runs the check in the
// background. The returned report carries the ID clients poll for the
// result.
func (uc *ComplianceUseCase) RequestCheck(ctx context.Context) (*model.ComplianceReport, error) {
	if uc.llmClient == nil {
		return nil, ErrLLMNotConfigured
	}

	report, err := uc.repo.ComplianceReport().Create(ctx, &model.ComplianceReport{
		Status: types.ReportStatusPending,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create compliance report")
	}

	async.Dispatch(ctx, func(ctx context.Context) error {
		return uc.runCheck(ctx, report.ID)
	})

	return report, nil
}

// RunCheck performs a compliance check synchronously and returns the
// completed report. The CLI uses this for one-shot checks.
func (uc *ComplianceUseCase) RunCheck(ctx context.Context) (*model.ComplianceReport, error) {
	if uc.llmClient == nil {
		return nil, ErrLLMNotConfigured
	}

	report, err := uc.repo.ComplianceReport().Create(ctx, &model.ComplianceReport{
		Status: types.ReportStatusPending,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create compliance report")
	}

	if err := uc.runCheck(ctx, report.ID); err != nil {
		return nil, err
	}

	return uc.repo.ComplianceReport().Get(ctx, report.ID)
}

// GetReport retrieves a compliance report by ID
func (uc *ComplianceUseCase) GetReport(ctx context.Context, id model.ReportID) (*model.ComplianceReport, error) {
	return uc.repo.ComplianceReport().Get(ctx, id)
}

// ListReports retrieves all compliance reports, newest first
func (uc *ComplianceUseCase) ListReports(ctx context.Context) ([]*model.ComplianceReport, error) {
	return uc.repo.ComplianceReport().List(ctx)
}

// runCheck gathers the records, generates the report and stores the
// outcome. A failed generation marks the report FAILED rather than
// returning the error to the caller's context.
func (uc *ComplianceUseCase) runCheck(ctx context.Context, id model.ReportID) error {
	content, err := uc.generate(ctx)

	report, getErr := uc.repo.ComplianceReport().Get(ctx, id)
	if getErr != nil {
		return goerr.Wrap(getErr, "failed to get compliance report", goerr.V("id", id))
	}

	report.CompletedAt = time.Now().UTC()
	if err != nil {
		report.Status = types.ReportStatusFailed
		report.Error = err.Error()
		_ = errutil.Handle(ctx, err, "compliance check failed")
	} else {
		report.Status = types.ReportStatusCompleted
		report.Content = content
	}

	if _, err := uc.repo.ComplianceReport().Update(ctx, report); err != nil {
		return goerr.Wrap(err, "failed to store compliance report result", goerr.V("id", id))
	}

	return err
}

func (uc *ComplianceUseCase) generate(ctx context.Context) (string, error) {
	data, err := uc.gatherRecords(ctx)
	if err != nil {
		return "", err
	}

	prompt, err := buildCompliancePrompt(data)
	if err != nil {
		return "", err
	}

	session, err := uc.llmClient.NewSession(ctx,
		gollem.WithSessionContentType(gollem.ContentTypeText),
	)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create LLM session")
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(prompt))
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate compliance report")
	}
	if len(resp.Texts) == 0 {
		return "", goerr.New("LLM returned empty compliance report")
	}

	return resp.Texts[0], nil
}

// gatherRecords loads all record kinds concurrently
func (uc *ComplianceUseCase) gatherRecords(ctx context.Context) (*compliancePromptData, error) {
	data := &compliancePromptData{
		Instructions: uc.cfg.CheckPrompt,
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		licenses, err := uc.repo.License().List(egCtx, interfaces.ListLicensesOptions{SortBy: interfaces.SortByExpiresAt})
		if err != nil {
			return goerr.Wrap(err, "failed to list licenses")
		}
		data.Licenses = licenses
		return nil
	})
	eg.Go(func() error {
		policies, err := uc.repo.Policy().List(egCtx, interfaces.ListPoliciesOptions{})
		if err != nil {
			return goerr.Wrap(err, "failed to list policies")
		}
		data.Policies = policies
		return nil
	})
	eg.Go(func() error {
		updates, err := uc.repo.RegulatoryUpdate().List(egCtx, interfaces.ListUpdatesOptions{SortBy: interfaces.SortByPublishedAt, Descending: true})
		if err != nil {
			return goerr.Wrap(err, "failed to list regulatory updates")
		}
		data.Updates = updates
		return nil
	})
	eg.Go(func() error {
		assessments, err := uc.repo.RiskAssessment().List(egCtx, interfaces.ListAssessmentsOptions{SortBy: interfaces.SortByRiskRating, Descending: true})
		if err != nil {
			return goerr.Wrap(err, "failed to list risk assessments")
		}
		data.Assessments = assessments
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return data, nil
}

func buildCompliancePrompt(data *compliancePromptData) (string, error) {
	var buf bytes.Buffer
	if err := compliancePrompt.Execute(&buf, data); err != nil {
		return "", goerr.Wrap(err, "failed to render compliance check prompt")
	}
	return buf.String(), nil
}
