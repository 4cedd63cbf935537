package http

import (
	"net/http"
	"time"

	"github.com/regtrack/regtrack/pkg/domain/interfaces"
	"github.com/regtrack/regtrack/pkg/domain/model"
	"github.com/regtrack/regtrack/pkg/domain/types"
)

type policyRequest struct {
	Title         string    `json:"title"`
	Body          string    `json:"body"`
	Category      string    `json:"category"`
	Status        string    `json:"status"`
	Owner         string    `json:"owner"`
	EffectiveDate time.Time `json:"effective_date"`
	ReviewDate    time.Time `json:"review_date"`
}

func (req *policyRequest) toModel(id int64) *model.Policy {
	return &model.Policy{
		ID:            id,
		Title:         req.Title,
		Body:          req.Body,
		Category:      types.CategoryID(req.Category),
		Status:        types.PolicyStatus(req.Status),
		Owner:         req.Owner,
		EffectiveDate: req.EffectiveDate,
		ReviewDate:    req.ReviewDate,
	}
}

type policyResponse struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Body          string    `json:"body"`
	Category      string    `json:"category,omitempty"`
	Status        string    `json:"status"`
	Version       int       `json:"version"`
	Owner         string    `json:"owner,omitempty"`
	EffectiveDate time.Time `json:"effective_date"`
	ReviewDate    time.Time `json:"review_date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toPolicyResponse(p *model.Policy) policyResponse {
	return policyResponse{
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

func (s *Server) createPolicy(w http.ResponseWriter, r *http.Request) {
	var req policyRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	created, err := s.uc.Policy.Create(r.Context(), req.toModel(0))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, toPolicyResponse(created))
}

func (s *Server) getPolicy(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	policy, err := s.uc.Policy.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toPolicyResponse(policy))
}

func (s *Server) listPolicies(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := interfaces.ListPoliciesOptions{
		Status:     types.PolicyStatus(q.Get("status")),
		Category:   types.CategoryID(q.Get("category")),
		SortBy:     q.Get("sort_by"),
		Descending: queryBool(r, "descending"),
		Offset:     queryInt(r, "offset"),
		Limit:      queryInt(r, "limit"),
	}

	policies, err := s.uc.Policy.List(r.Context(), opts)
	if err != nil {
		handleError(w, r, err)
		return
	}

	resp := make([]policyResponse, len(policies))
	for i, p := range policies {
		resp[i] = toPolicyResponse(p)
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"policies": resp})
}

func (s *Server) updatePolicy(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req policyRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	updated, err := s.uc.Policy.Update(r.Context(), req.toModel(id))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toPolicyResponse(updated))
}

func (s *Server) archivePolicy(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	archived, err := s.uc.Policy.Archive(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toPolicyResponse(archived))
}

func (s *Server) deletePolicy(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.uc.Policy.Delete(r.Context(), id); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
