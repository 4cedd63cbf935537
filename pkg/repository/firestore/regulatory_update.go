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

type regulatoryUpdateDocument struct {
	ID           int64     `firestore:"id"`
	Title        string    `firestore:"title"`
	Summary      string    `firestore:"summary"`
	Source       string    `firestore:"source"`
	Jurisdiction string    `firestore:"jurisdiction"`
	Status       string    `firestore:"status"`
	PublishedAt  time.Time `firestore:"published_at"`
	EffectiveAt  time.Time `firestore:"effective_at"`
	CreatedAt    time.Time `firestore:"created_at"`
	UpdatedAt    time.Time `firestore:"updated_at"`
}

func toRegulatoryUpdateDocument(u *model.RegulatoryUpdate) *regulatoryUpdateDocument {
	return &regulatoryUpdateDocument{
		ID:           u.ID,
		Title:        u.Title,
		Summary:      u.Summary,
		Source:       u.Source,
		Jurisdiction: u.Jurisdiction.String(),
		Status:       u.Status.String(),
		PublishedAt:  u.PublishedAt,
		EffectiveAt:  u.EffectiveAt,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (d *regulatoryUpdateDocument) toModel() *model.RegulatoryUpdate {
	return &model.RegulatoryUpdate{
		ID:           d.ID,
		Title:        d.Title,
		Summary:      d.Summary,
		Source:       d.Source,
		Jurisdiction: types.JurisdictionID(d.Jurisdiction),
		Status:       types.UpdateStatus(d.Status),
		PublishedAt:  d.PublishedAt,
		EffectiveAt:  d.EffectiveAt,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

type regulatoryUpdateRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newRegulatoryUpdateRepository(client *firestore.Client) *regulatoryUpdateRepository {
	return &regulatoryUpdateRepository{client: client}
}

func (r *regulatoryUpdateRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_regulatory_updates"
	}
	return "regulatory_updates"
}

func (r *regulatoryUpdateRepository) counterCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_counters"
	}
	return "counters"
}

func (r *regulatoryUpdateRepository) Create(ctx context.Context, update *model.RegulatoryUpdate) (*model.RegulatoryUpdate, error) {
	id, err := getNextID(ctx, r.client, r.counterCollection(), "regulatory_update_counter")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	stored := *update
	stored.ID = id
	stored.CreatedAt = now
	stored.UpdatedAt = now

	doc := toRegulatoryUpdateDocument(&stored)
	docRef := r.client.Collection(r.collection()).Doc(fmt.Sprintf("%d", id))
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create regulatory update", goerr.V("id", id))
	}

	return doc.toModel(), nil
}

func (r *regulatoryUpdateRepository) Get(ctx context.Context, id int64) (*model.RegulatoryUpdate, error) {
	docRef := r.client.Collection(r.collection()).Doc(fmt.Sprintf("%d", id))
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "regulatory update not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get regulatory update", goerr.V("id", id))
	}

	var updateDoc regulatoryUpdateDocument
	if err := doc.DataTo(&updateDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal regulatory update", goerr.V("id", id))
	}

	return updateDoc.toModel(), nil
}

func (r *regulatoryUpdateRepository) List(ctx context.Context, opts interfaces.ListUpdatesOptions) ([]*model.RegulatoryUpdate, error) {
	iter := r.client.Collection(r.collection()).Documents(ctx)
	defer iter.Stop()

	var updates []*model.RegulatoryUpdate
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate regulatory updates")
		}

		var updateDoc regulatoryUpdateDocument
		if err := doc.DataTo(&updateDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal regulatory update")
		}
		updates = append(updates, updateDoc.toModel())
	}

	return opts.Apply(updates), nil
}

func (r *regulatoryUpdateRepository) Update(ctx context.Context, update *model.RegulatoryUpdate) (*model.RegulatoryUpdate, error) {
	existing, err := r.Get(ctx, update.ID)
	if err != nil {
		return nil, err
	}

	stored := *update
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = time.Now().UTC()

	doc := toRegulatoryUpdateDocument(&stored)
	docRef := r.client.Collection(r.collection()).Doc(fmt.Sprintf("%d", update.ID))
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to update regulatory update", goerr.V("id", update.ID))
	}

	return doc.toModel(), nil
}

func (r *regulatoryUpdateRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}

	docRef := r.client.Collection(r.collection()).Doc(fmt.Sprintf("%d", id))
	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete regulatory update", goerr.V("id", id))
	}

	return nil
}
