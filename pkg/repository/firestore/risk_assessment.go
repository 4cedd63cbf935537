package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/regtrack/regtrack/pkg/domain/interfaces"
	"github.com/regtrack/regtrack/pkg/domain/model"
	"github.com/regtrack/regtrack/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type riskItemDocument struct {
	Description        string   `firestore:"description"`
	Likelihood         string   `firestore:"likelihood"`
	Impact             string   `firestore:"impact"`
	MitigationControls []string `firestore:"mitigation_controls"`
	InherentRisk       string   `firestore:"inherent_risk"`
	ResidualRisk       string   `firestore:"residual_risk"`
}

type riskAssessmentDocument struct {
	ID                int64              `firestore:"id"`
	Title             string             `firestore:"title"`
	Description       string             `firestore:"description"`
	Status            string             `firestore:"status"`
	IdentifiedRisks   []riskItemDocument `firestore:"identified_risks"`
	OverallRiskRating string             `firestore:"overall_risk_rating"`
	AssessedAt        time.Time          `firestore:"assessed_at"`
	CreatedAt         time.Time          `firestore:"created_at"`
	UpdatedAt         time.Time          `firestore:"updated_at"`
}

func toRiskAssessmentDocument(a *model.RiskAssessment) *riskAssessmentDocument {
	items := make([]riskItemDocument, len(a.IdentifiedRisks))
	for i, item := range a.IdentifiedRisks {
		items[i] = riskItemDocument{
			Description:        item.Description,
			Likelihood:         item.Likelihood.String(),
			Impact:             item.Impact.String(),
			MitigationControls: item.MitigationControls,
			InherentRisk:       item.InherentRisk.String(),
			ResidualRisk:       item.ResidualRisk.String(),
		}
	}
	return &riskAssessmentDocument{
		ID:                a.ID,
		Title:             a.Title,
		Description:       a.Description,
		Status:            a.Status.String(),
		IdentifiedRisks:   items,
		OverallRiskRating: a.OverallRiskRating.String(),
		AssessedAt:        a.AssessedAt,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

func (d *riskAssessmentDocument) toModel() *model.RiskAssessment {
	items := make([]model.RiskItem, len(d.IdentifiedRisks))
	for i, item := range d.IdentifiedRisks {
		items[i] = model.RiskItem{
			Description:        item.Description,
			Likelihood:         types.Likelihood(item.Likelihood),
			Impact:             types.Impact(item.Impact),
			MitigationControls: item.MitigationControls,
			InherentRisk:       types.RiskLevel(item.InherentRisk),
			ResidualRisk:       types.RiskLevel(item.ResidualRisk),
		}
	}
	return &model.RiskAssessment{
		ID:                d.ID,
		Title:             d.Title,
		Description:       d.Description,
		Status:            types.AssessmentStatus(d.Status),
		IdentifiedRisks:   items,
		OverallRiskRating: types.RiskLevel(d.OverallRiskRating),
		AssessedAt:        d.AssessedAt,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

type riskAssessmentRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newRiskAssessmentRepository(client *firestore.Client) *riskAssessmentRepository {
	return &riskAssessmentRepository{client: client}
}

func (r *riskAssessmentRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_risk_assessments"
	}
	return "risk_assessments"
}

func (r *riskAssessmentRepository) counterCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_counters"
	}
	return "counters"
}

func (r *riskAssessmentRepository) Create(ctx context.Context, assessment *model.RiskAssessment) (*model.RiskAssessment, error) {
	id, err := getNextID(ctx, r.client, r.counterCollection(), "risk_assessment_counter")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	stored := assessment.Clone()
	stored.ID = id
	stored.CreatedAt = now
	stored.UpdatedAt = now

	doc := toRiskAssessmentDocument(stored)
	docRef := r.client.Collection(r.collection()).Doc(fmt.Sprintf("%d", id))
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create risk assessment", goerr.V("id", id))
	}

	return doc.toModel(), nil
}

func (r *riskAssessmentRepository) Get(ctx context.Context, id int64) (*model.RiskAssessment, error) {
	docRef := r.client.Collection(r.collection()).Doc(fmt.Sprintf("%d", id))
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "risk assessment not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get risk assessment", goerr.V("id", id))
	}

	var assessmentDoc riskAssessmentDocument
	if err := doc.DataTo(&assessmentDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal risk assessment", goerr.V("id", id))
	}

	return assessmentDoc.toModel(), nil
}

func (r *riskAssessmentRepository) List(ctx context.Context, opts interfaces.ListAssessmentsOptions) ([]*model.RiskAssessment, error) {
	iter := r.client.Collection(r.collection()).Documents(ctx)
	defer iter.Stop()

	var assessments []*model.RiskAssessment
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate risk assessments")
		}

		var assessmentDoc riskAssessmentDocument
		if err := doc.DataTo(&assessmentDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal risk assessment")
		}
		assessments = append(assessments, assessmentDoc.toModel())
	}

	return opts.Apply(assessments), nil
}

func (r *riskAssessmentRepository) Update(ctx context.Context, assessment *model.RiskAssessment) (*model.RiskAssessment, error) {
	existing, err := r.Get(ctx, assessment.ID)
	if err != nil {
		return nil, err
	}

	stored := assessment.Clone()
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = time.Now().UTC()

	doc := toRiskAssessmentDocument(stored)
	docRef := r.client.Collection(r.collection()).Doc(fmt.Sprintf("%d", assessment.ID))
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to update risk assessment", goerr.V("id", assessment.ID))
	}

	return doc.toModel(), nil
}

func (r *riskAssessmentRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}

	docRef := r.client.Collection(r.collection()).Doc(fmt.Sprintf("%d", id))
	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete risk assessment", goerr.V("id", id))
	}

	return nil
}
