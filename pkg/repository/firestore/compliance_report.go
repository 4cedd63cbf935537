package firestore

import (
	"context"
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

type complianceReportDocument struct {
	ID          string    `firestore:"id"`
	Status      string    `firestore:"status"`
	Content     string    `firestore:"content"`
	Error       string    `firestore:"error"`
	RequestedAt time.Time `firestore:"requested_at"`
	CompletedAt time.Time `firestore:"completed_at"`
}

func toComplianceReportDocument(r *model.ComplianceReport) *complianceReportDocument {
	return &complianceReportDocument{
		ID:          r.ID.String(),
		Status:      r.Status.String(),
		Content:     r.Content,
		Error:       r.Error,
		RequestedAt: r.RequestedAt,
		CompletedAt: r.CompletedAt,
	}
}

func (d *complianceReportDocument) toModel() *model.ComplianceReport {
	return &model.ComplianceReport{
		ID:          model.ReportID(d.ID),
		Status:      types.ReportStatus(d.Status),
		Content:     d.Content,
		Error:       d.Error,
		RequestedAt: d.RequestedAt,
		CompletedAt: d.CompletedAt,
	}
}

type complianceReportRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newComplianceReportRepository(client *firestore.Client) *complianceReportRepository {
	return &complianceReportRepository{client: client}
}

func (r *complianceReportRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_compliance_reports"
	}
	return "compliance_reports"
}

func (r *complianceReportRepository) Create(ctx context.Context, report *model.ComplianceReport) (*model.ComplianceReport, error) {
	stored := *report
	if stored.ID == "" {
		stored.ID = model.NewReportID()
	}
	if stored.RequestedAt.IsZero() {
		stored.RequestedAt = time.Now().UTC()
	}

	doc := toComplianceReportDocument(&stored)
	docRef := r.client.Collection(r.collection()).Doc(doc.ID)
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create compliance report", goerr.V("id", doc.ID))
	}

	return doc.toModel(), nil
}

func (r *complianceReportRepository) Get(ctx context.Context, id model.ReportID) (*model.ComplianceReport, error) {
	docRef := r.client.Collection(r.collection()).Doc(id.String())
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "compliance report not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get compliance report", goerr.V("id", id))
	}

	var reportDoc complianceReportDocument
	if err := doc.DataTo(&reportDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal compliance report", goerr.V("id", id))
	}

	return reportDoc.toModel(), nil
}

func (r *complianceReportRepository) List(ctx context.Context) ([]*model.ComplianceReport, error) {
	iter := r.client.Collection(r.collection()).
		OrderBy("requested_at", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var reports []*model.ComplianceReport
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate compliance reports")
		}

		var reportDoc complianceReportDocument
		if err := doc.DataTo(&reportDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal compliance report")
		}
		reports = append(reports, reportDoc.toModel())
	}

	return reports, nil
}

func (r *complianceReportRepository) Update(ctx context.Context, report *model.ComplianceReport) (*model.ComplianceReport, error) {
	if _, err := r.Get(ctx, report.ID); err != nil {
		return nil, err
	}

	doc := toComplianceReportDocument(report)
	docRef := r.client.Collection(r.collection()).Doc(doc.ID)
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to update compliance report", goerr.V("id", report.ID))
	}

	return doc.toModel(), nil
}
