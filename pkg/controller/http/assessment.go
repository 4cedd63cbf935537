package http

import (
	"net/http"
	"time"

	"github.com/regtrack/regtrack/pkg/domain/interfaces"
	"github.com/regtrack/regtrack/pkg/domain/model"
	"github.com/regtrack/regtrack/pkg/domain/types"
)

type riskItemRequest struct {
	Description        string   `json:"description"`
	Likelihood         string   `json:"likelihood"`
	Impact             string   `json:"impact"`
	MitigationControls []string `json:"mitigation_controls"`
}

func (req *riskItemRequest) toModel() model.RiskItem {
	return model.RiskItem{
		Description:        req.Description,
		Likelihood:         types.Likelihood(req.Likelihood),
		Impact:             types.Impact(req.Impact),
		MitigationControls: req.MitigationControls,
	}
}

// riskItemPatch carries a partial risk item update. Absent fields keep
// their current values.
type riskItemPatch struct {
	Description        *string   `json:"description"`
	Likelihood         *string   `json:"likelihood"`
	Impact             *string   `json:"impact"`
	MitigationControls *[]string `json:"mitigation_controls"`
}

func (req *riskItemPatch) toUpdate() model.RiskItemUpdate {
	var upd model.RiskItemUpdate
	if req.Description != nil {
		upd.Description = req.Description
	}
	if req.Likelihood != nil {
		likelihood := types.Likelihood(*req.Likelihood)
		upd.Likelihood = &likelihood
	}
	if req.Impact != nil {
		impact := types.Impact(*req.Impact)
		upd.Impact = &impact
	}
	if req.MitigationControls != nil {
		upd.MitigationControls = req.MitigationControls
	}
	return upd
}

type assessmentRequest struct {
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	IdentifiedRisks []riskItemRequest `json:"identified_risks"`
}

type riskItemResponse struct {
	Description        string   `json:"description"`
	Likelihood         string   `json:"likelihood"`
	Impact             string   `json:"impact"`
	MitigationControls []string `json:"mitigation_controls,omitempty"`
	InherentRisk       string   `json:"inherent_risk"`
	ResidualRisk       string   `json:"residual_risk"`
}

type assessmentResponse struct {
	ID                int64              `json:"id"`
	Title             string             `json:"title"`
	Description       string             `json:"description,omitempty"`
	Status            string             `json:"status"`
	IdentifiedRisks   []riskItemResponse `json:"identified_risks"`
	OverallRiskRating string             `json:"overall_risk_rating"`
	AssessedAt        time.Time          `json:"assessed_at"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

func toAssessmentResponse(a *model.RiskAssessment) assessmentResponse {
	items := make([]riskItemResponse, len(a.IdentifiedRisks))
	for i, item := range a.IdentifiedRisks {
		items[i] = riskItemResponse{
			Description:        item.Description,
			Likelihood:         item.Likelihood.String(),
			Impact:             item.Impact.String(),
			MitigationControls: item.MitigationControls,
			InherentRisk:       item.InherentRisk.String(),
			ResidualRisk:       item.ResidualRisk.String(),
		}
	}
	return assessmentResponse{
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

func (s *Server) createAssessment(w http.ResponseWriter, r *http.Request) {
	var req assessmentRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	items := make([]model.RiskItem, len(req.IdentifiedRisks))
	for i, item := range req.IdentifiedRisks {
		items[i] = item.toModel()
	}

	created, err := s.uc.Assessment.Create(r.Context(), &model.RiskAssessment{
		Title:           req.Title,
		Description:     req.Description,
		IdentifiedRisks: items,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, toAssessmentResponse(created))
}

func (s *Server) getAssessment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	assessment, err := s.uc.Assessment.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toAssessmentResponse(assessment))
}

func (s *Server) listAssessments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := interfaces.ListAssessmentsOptions{
		Status:     types.AssessmentStatus(q.Get("status")),
		MinRating:  types.RiskLevel(q.Get("min_rating")),
		SortBy:     q.Get("sort_by"),
		Descending: queryBool(r, "descending"),
		Offset:     queryInt(r, "offset"),
		Limit:      queryInt(r, "limit"),
	}

	assessments, err := s.uc.Assessment.List(r.Context(), opts)
	if err != nil {
		handleError(w, r, err)
		return
	}

	resp := make([]assessmentResponse, len(assessments))
	for i, a := range assessments {
		resp[i] = toAssessmentResponse(a)
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"assessments": resp})
}

func (s *Server) updateAssessmentDetails(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	updated, err := s.uc.Assessment.UpdateDetails(r.Context(), id, req.Title, req.Description)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toAssessmentResponse(updated))
}

func (s *Server) deleteAssessment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.uc.Assessment.Delete(r.Context(), id); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) addRiskItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req riskItemRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	updated, err := s.uc.Assessment.AddRiskItem(r.Context(), id, req.toModel())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toAssessmentResponse(updated))
}

func (s *Server) updateRiskItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	index, err := pathIndex(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req riskItemPatch
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	updated, err := s.uc.Assessment.UpdateRiskItem(r.Context(), id, index, req.toUpdate())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toAssessmentResponse(updated))
}

func (s *Server) removeRiskItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	index, err := pathIndex(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	updated, err := s.uc.Assessment.RemoveRiskItem(r.Context(), id, index)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toAssessmentResponse(updated))
}

func (s *Server) recalculateAssessment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	updated, err := s.uc.Assessment.Recalculate(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toAssessmentResponse(updated))
}

func (s *Server) finalizeAssessment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	finalized, err := s.uc.Assessment.Finalize(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toAssessmentResponse(finalized))
}
