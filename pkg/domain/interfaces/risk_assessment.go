package interfaces

import (
	"context"

	"github.com/regtrack/regtrack/pkg/domain/model"
)

type RiskAssessmentRepository interface {
	// Create creates a new risk assessment with auto-generated ID
	Create(ctx context.Context, assessment *model.RiskAssessment) (*model.RiskAssessment, error)

	// Get retrieves a risk assessment by ID
	Get(ctx context.Context, id int64) (*model.RiskAssessment, error)

	// List retrieves risk assessments matching the options
	List(ctx context.Context, opts ListAssessmentsOptions) ([]*model.RiskAssessment, error)

	// Update replaces an existing risk assessment, including its risk items
	Update(ctx context.Context, assessment *model.RiskAssessment) (*model.RiskAssessment, error)

	// Delete deletes a risk assessment by ID
	Delete(ctx context.Context, id int64) error
}
