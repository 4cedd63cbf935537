package interfaces

import (
	"sort"

	"github.com/regtrack/regtrack/pkg/domain/model"
	"github.com/regtrack/regtrack/pkg/domain/types"
)

// Sort keys accepted by the list operations. Empty means creation order.
const (
	SortByName        = "name"
	SortByCreatedAt   = "created_at"
	SortByExpiresAt   = "expires_at"
	SortByPublishedAt = "published_at"
	SortByRiskRating  = "risk_rating"
)

// ListLicensesOptions filters, sorts and paginates license listings.
// Zero values mean "no constraint". Both repository backends apply the
// options through the same Apply method so their behavior is identical.
type ListLicensesOptions struct {
	Status       types.LicenseStatus
	Type         types.CategoryID
	Jurisdiction types.JurisdictionID
	SortBy       string
	Descending   bool
	Offset       int
	Limit        int
}

// Apply filters, sorts and slices the given licenses
func (o ListLicensesOptions) Apply(licenses []*model.License) []*model.License {
	filtered := make([]*model.License, 0, len(licenses))
	for _, l := range licenses {
		if o.Status != "" && l.Status != o.Status {
			continue
		}
		if o.Type != "" && l.Type != o.Type {
			continue
		}
		if o.Jurisdiction != "" && l.Jurisdiction != o.Jurisdiction {
			continue
		}
		filtered = append(filtered, l)
	}

	less := func(i, j int) bool { return filtered[i].ID < filtered[j].ID }
	switch o.SortBy {
	case SortByName:
		less = func(i, j int) bool { return filtered[i].Name < filtered[j].Name }
	case SortByExpiresAt:
		less = func(i, j int) bool { return filtered[i].ExpiresAt.Before(filtered[j].ExpiresAt) }
	case SortByCreatedAt:
		less = func(i, j int) bool { return filtered[i].CreatedAt.Before(filtered[j].CreatedAt) }
	}
	sortSlice(filtered, less, o.Descending)

	return paginate(filtered, o.Offset, o.Limit)
}

// ListPoliciesOptions filters, sorts and paginates policy listings
type ListPoliciesOptions struct {
	Status     types.PolicyStatus
	Category   types.CategoryID
	SortBy     string
	Descending bool
	Offset     int
	Limit      int
}

// Apply filters, sorts and slices the given policies
func (o ListPoliciesOptions) Apply(policies []*model.Policy) []*model.Policy {
	filtered := make([]*model.Policy, 0, len(policies))
	for _, p := range policies {
		if o.Status != "" && p.Status != o.Status {
			continue
		}
		if o.Category != "" && p.Category != o.Category {
			continue
		}
		filtered = append(filtered, p)
	}

	less := func(i, j int) bool { return filtered[i].ID < filtered[j].ID }
	switch o.SortBy {
	case SortByName:
		less = func(i, j int) bool { return filtered[i].Title < filtered[j].Title }
	case SortByCreatedAt:
		less = func(i, j int) bool { return filtered[i].CreatedAt.Before(filtered[j].CreatedAt) }
	}
	sortSlice(filtered, less, o.Descending)

	return paginate(filtered, o.Offset, o.Limit)
}

// ListUpdatesOptions filters, sorts and paginates regulatory update listings
type ListUpdatesOptions struct {
	Status       types.UpdateStatus
	Jurisdiction types.JurisdictionID
	SortBy       string
	Descending   bool
	Offset       int
	Limit        int
}

// Apply filters, sorts and slices the given regulatory updates
func (o ListUpdatesOptions) Apply(updates []*model.RegulatoryUpdate) []*model.RegulatoryUpdate {
	filtered := make([]*model.RegulatoryUpdate, 0, len(updates))
	for _, u := range updates {
		if o.Status != "" && u.Status != o.Status {
			continue
		}
		if o.Jurisdiction != "" && u.Jurisdiction != o.Jurisdiction {
			continue
		}
		filtered = append(filtered, u)
	}

	less := func(i, j int) bool { return filtered[i].ID < filtered[j].ID }
	switch o.SortBy {
	case SortByName:
		less = func(i, j int) bool { return filtered[i].Title < filtered[j].Title }
	case SortByPublishedAt:
		less = func(i, j int) bool { return filtered[i].PublishedAt.Before(filtered[j].PublishedAt) }
	case SortByCreatedAt:
		less = func(i, j int) bool { return filtered[i].CreatedAt.Before(filtered[j].CreatedAt) }
	}
	sortSlice(filtered, less, o.Descending)

	return paginate(filtered, o.Offset, o.Limit)
}

// ListAssessmentsOptions filters, sorts and paginates risk assessment listings
type ListAssessmentsOptions struct {
	Status     types.AssessmentStatus
	MinRating  types.RiskLevel
	SortBy     string
	Descending bool
	Offset     int
	Limit      int
}

// Apply filters, sorts and slices the given assessments
func (o ListAssessmentsOptions) Apply(assessments []*model.RiskAssessment) []*model.RiskAssessment {
	filtered := make([]*model.RiskAssessment, 0, len(assessments))
	for _, a := range assessments {
		if o.Status != "" && a.Status != o.Status {
			continue
		}
		if o.MinRating != "" && a.OverallRiskRating.Rank() < o.MinRating.Rank() {
			continue
		}
		filtered = append(filtered, a)
	}

	less := func(i, j int) bool { return filtered[i].ID < filtered[j].ID }
	switch o.SortBy {
	case SortByName:
		less = func(i, j int) bool { return filtered[i].Title < filtered[j].Title }
	case SortByRiskRating:
		less = func(i, j int) bool {
			return filtered[i].OverallRiskRating.Rank() < filtered[j].OverallRiskRating.Rank()
		}
	case SortByCreatedAt:
		less = func(i, j int) bool { return filtered[i].CreatedAt.Before(filtered[j].CreatedAt) }
	}
	sortSlice(filtered, less, o.Descending)

	return paginate(filtered, o.Offset, o.Limit)
}

func sortSlice[T any](items []T, less func(i, j int) bool, descending bool) {
	if descending {
		sort.SliceStable(items, func(i, j int) bool { return less(j, i) })
		return
	}
	sort.SliceStable(items, less)
}

// paginate applies offset/limit bounds. Out-of-range offsets yield an
// empty slice; a zero limit means no limit.
func paginate[T any](items []T, offset, limit int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
