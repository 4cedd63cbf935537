package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/regtrack/regtrack/pkg/domain/interfaces"
	"github.com/regtrack/regtrack/pkg/domain/model"
)

type riskAssessmentRepository struct {
	mu          sync.RWMutex
	assessments map[int64]*model.RiskAssessment
	nextID      int64
}

func newRiskAssessmentRepository() *riskAssessmentRepository {
	return &riskAssessmentRepository{
		assessments: make(map[int64]*model.RiskAssessment),
		nextID:      1,
	}
}

func (r *riskAssessmentRepository) Create(ctx context.Context, assessment *model.RiskAssessment) (*model.RiskAssessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := assessment.Clone()
	created.ID = r.nextID
	created.CreatedAt = now
	created.UpdatedAt = now
	r.nextID++

	r.assessments[created.ID] = created
	return created.Clone(), nil
}

func (r *riskAssessmentRepository) Get(ctx context.Context, id int64) (*model.RiskAssessment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	assessment, exists := r.assessments[id]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "risk assessment not found", goerr.V("id", id))
	}

	return assessment.Clone(), nil
}

func (r *riskAssessmentRepository) List(ctx context.Context, opts interfaces.ListAssessmentsOptions) ([]*model.RiskAssessment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	assessments := make([]*model.RiskAssessment, 0, len(r.assessments))
	for _, a := range r.assessments {
		assessments = append(assessments, a.Clone())
	}

	return opts.Apply(assessments), nil
}

func (r *riskAssessmentRepository) Update(ctx context.Context, assessment *model.RiskAssessment) (*model.RiskAssessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.assessments[assessment.ID]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "risk assessment not found", goerr.V("id", assessment.ID))
	}

	updated := assessment.Clone()
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.assessments[updated.ID] = updated
	return updated.Clone(), nil
}

func (r *riskAssessmentRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.assessments[id]; !exists {
		return goerr.Wrap(interfaces.ErrNotFound, "risk assessment not found", goerr.V("id", id))
	}

	delete(r.assessments, id)
	return nil
}
