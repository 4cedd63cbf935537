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

type licenseDocument struct {
	ID           int64     `firestore:"id"`
	Name         string    `firestore:"name"`
	Holder       string    `firestore:"holder"`
	Type         string    `firestore:"type"`
	Status       string    `firestore:"status"`
	Jurisdiction string    `firestore:"jurisdiction"`
	IssuedAt     time.Time `firestore:"issued_at"`
	ExpiresAt    time.Time `firestore:"expires_at"`
	Notes        string    `firestore:"notes"`
	CreatedAt    time.Time `firestore:"created_at"`
	UpdatedAt    time.Time `firestore:"updated_at"`
}

func toLicenseDocument(l *model.License) *licenseDocument {
	return &licenseDocument{
		ID:           l.ID,
		Name:         l.Name,
		Holder:       l.Holder,
		Type:         l.Type.String(),
		Status:       l.Status.String(),
		Jurisdiction: l.Jurisdiction.String(),
		IssuedAt:     l.IssuedAt,
		ExpiresAt:    l.ExpiresAt,
		Notes:        l.Notes,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

func (d *licenseDocument) toModel() *model.License {
	return &model.License{
		ID:           d.ID,
		Name:         d.Name,
		Holder:       d.Holder,
		Type:         types.CategoryID(d.Type),
		Status:       types.LicenseStatus(d.Status),
		Jurisdiction: types.JurisdictionID(d.Jurisdiction),
		IssuedAt:     d.IssuedAt,
		ExpiresAt:    d.ExpiresAt,
		Notes:        d.Notes,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

type licenseRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newLicenseRepository(client *firestore.Client) *licenseRepository {
	return &licenseRepository{client: client}
}

func (r *licenseRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_licenses"
	}
	return "licenses"
}

func (r *licenseRepository) counterCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_counters"
	}
	return "counters"
}

func (r *licenseRepository) Create(ctx context.Context, license *model.License) (*model.License, error) {
	id, err := getNextID(ctx, r.client, r.counterCollection(), "license_counter")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	stored := *license
	stored.ID = id
	stored.CreatedAt = now
	stored.UpdatedAt = now

	doc := toLicenseDocument(&stored)
	docRef := r.client.Collection(r.collection()).Doc(fmt.Sprintf("%d", id))
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create license", goerr.V("id", id))
	}

	return doc.toModel(), nil
}

func (r *licenseRepository) Get(ctx context.Context, id int64) (*model.License, error) {
	docRef := r.client.Collection(r.collection()).Doc(fmt.Sprintf("%d", id))
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "license not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get license", goerr.V("id", id))
	}

	var licenseDoc licenseDocument
	if err := doc.DataTo(&licenseDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal license", goerr.V("id", id))
	}

	return licenseDoc.toModel(), nil
}

func (r *licenseRepository) List(ctx context.Context, opts interfaces.ListLicensesOptions) ([]*model.License, error) {
	iter := r.client.Collection(r.collection()).Documents(ctx)
	defer iter.Stop()

	var licenses []*model.License
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate licenses")
		}

		var licenseDoc licenseDocument
		if err := doc.DataTo(&licenseDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal license")
		}
		licenses = append(licenses, licenseDoc.toModel())
	}

	return opts.Apply(licenses), nil
}

func (r *licenseRepository) Update(ctx context.Context, license *model.License) (*model.License, error) {
	existing, err := r.Get(ctx, license.ID)
	if err != nil {
		return nil, err
	}

	stored := *license
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = time.Now().UTC()

	doc := toLicenseDocument(&stored)
	docRef := r.client.Collection(r.collection()).Doc(fmt.Sprintf("%d", license.ID))
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to update license", goerr.V("id", license.ID))
	}

	return doc.toModel(), nil
}

func (r *licenseRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}

	docRef := r.client.Collection(r.collection()).Doc(fmt.Sprintf("%d", id))
	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete license", goerr.V("id", id))
	}

	return nil
}
