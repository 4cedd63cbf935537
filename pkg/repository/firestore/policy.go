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

type policyDocument struct {
	ID            int64     `firestore:"id"`
	Title         string    `firestore:"title"`
	Body          string    `firestore:"body"`
	Category      string    `firestore:"category"`
	Status        string    `firestore:"status"`
	Version       int       `firestore:"version"`
	Owner         string    `firestore:"owner"`
	EffectiveDate time.Time `firestore:"effective_date"`
	ReviewDate    time.Time `firestore:"review_date"`
	CreatedAt     time.Time `firestore:"created_at"`
	UpdatedAt     time.Time `firestore:"updated_at"`
}

func toPolicyDocument(p *model.Policy) *policyDocument {
	return &policyDocument{
		ID:            p.ID,
		Title:         p.Title,
		Body:          p.Body,
		Category:      p.Category.String(),
		Status:        p.Status.String(),
		Version:       p.Version,
		Owner:         p.Owner,
		EffectiveDate: p.EffectiveDate,
		ReviewDate:    p.ReviewDate,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (d *policyDocument) toModel() *model.Policy {
	return &model.Policy{
		ID:            d.ID,
		Title:         d.Title,
		Body:          d.Body,
		Category:      types.CategoryID(d.Category),
		Status:        types.PolicyStatus(d.Status),
		Version:       d.Version,
		Owner:         d.Owner,
		EffectiveDate: d.EffectiveDate,
		ReviewDate:    d.ReviewDate,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

type policyRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newPolicyRepository(client *firestore.Client) *policyRepository {
	return &policyRepository{client: client}
}

func (r *policyRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_policies"
	}
	return "policies"
}

func (r *policyRepository) counterCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_counters"
	}
	return "counters"
}

func (r *policyRepository) Create(ctx context.Context, policy *model.Policy) (*model.Policy, error) {
	id, err := getNextID(ctx, r.client, r.counterCollection(), "policy_counter")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	stored := *policy
	stored.ID = id
	if stored.Version == 0 {
		stored.Version = 1
	}
	stored.CreatedAt = now
	stored.UpdatedAt = now

	doc := toPolicyDocument(&stored)
	docRef := r.client.Collection(r.collection()).Doc(fmt.Sprintf("%d", id))
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create policy", goerr.V("id", id))
	}

	return doc.toModel(), nil
}

func (r *policyRepository) Get(ctx context.Context, id int64) (*model.Policy, error) {
	docRef := r.client.Collection(r.collection()).Doc(fmt.Sprintf("%d", id))
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "policy not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get policy", goerr.V("id", id))
	}

	var policyDoc policyDocument
	if err := doc.DataTo(&policyDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal policy", goerr.V("id", id))
	}

	return policyDoc.toModel(), nil
}

func (r *policyRepository) List(ctx context.Context, opts interfaces.ListPoliciesOptions) ([]*model.Policy, error) {
	iter := r.client.Collection(r.collection()).Documents(ctx)
	defer iter.Stop()

	var policies []*model.Policy
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate policies")
		}

		var policyDoc policyDocument
		if err := doc.DataTo(&policyDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal policy")
		}
		policies = append(policies, policyDoc.toModel())
	}

	return opts.Apply(policies), nil
}

func (r *policyRepository) Update(ctx context.Context, policy *model.Policy) (*model.Policy, error) {
	existing, err := r.Get(ctx, policy.ID)
	if err != nil {
		return nil, err
	}

	stored := *policy
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = time.Now().UTC()

	doc := toPolicyDocument(&stored)
	docRef := r.client.Collection(r.collection()).Doc(fmt.Sprintf("%d", policy.ID))
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to update policy", goerr.V("id", policy.ID))
	}

	return doc.toModel(), nil
}

func (r *policyRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}

	docRef := r.client.Collection(r.collection()).Doc(fmt.Sprintf("%d", id))
	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete policy", goerr.V("id", id))
	}

	return nil
}
