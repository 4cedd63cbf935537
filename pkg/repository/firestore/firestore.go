package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/regtrack/regtrack/pkg/domain/interfaces"
)

// Firestore is the Cloud Firestore backed repository
type Firestore struct {
	client     *firestore.Client
	license    *licenseRepository
	policy     *policyRepository
	regUpdate  *regulatoryUpdateRepository
	assessment *riskAssessmentRepository
	report     *complianceReportRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix prefixes every collection name. Used by tests to
// isolate runs against a shared project.
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.license.collectionPrefix = prefix
		f.policy.collectionPrefix = prefix
		f.regUpdate.collectionPrefix = prefix
		f.assessment.collectionPrefix = prefix
		f.report.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID), goerr.V("databaseID", databaseID))
	}

	f := &Firestore{
		client:     client,
		license:    newLicenseRepository(client),
		policy:     newPolicyRepository(client),
		regUpdate:  newRegulatoryUpdateRepository(client),
		assessment: newRiskAssessmentRepository(client),
		report:     newComplianceReportRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) License() interfaces.LicenseRepository {
	return f.license
}

func (f *Firestore) Policy() interfaces.PolicyRepository {
	return f.policy
}

func (f *Firestore) RegulatoryUpdate() interfaces.RegulatoryUpdateRepository {
	return f.regUpdate
}

func (f *Firestore) RiskAssessment() interfaces.RiskAssessmentRepository {
	return f.assessment
}

func (f *Firestore) ComplianceReport() interfaces.ComplianceReportRepository {
	return f.report
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
