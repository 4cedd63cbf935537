package http

import (
	"net/http"
	"time"

	"github.com/regtrack/regtrack/pkg/domain/interfaces"
	"github.com/regtrack/regtrack/pkg/domain/model"
	"github.com/regtrack/regtrack/pkg/domain/types"
)

type regulatoryUpdateRequest struct {
	Title        string    `json:"title"`
	Summary      string    `json:"summary"`
	Source       string    `json:"source"`
	Jurisdiction string    `json:"jurisdiction"`
	Status       string    `json:"status"`
	PublishedAt  time.Time `json:"published_at"`
	EffectiveAt  time.Time `json:"effective_at"`
}

func (req *regulatoryUpdateRequest) toModel(id int64) *model.RegulatoryUpdate {
	return &model.RegulatoryUpdate{
		ID:           id,
		Title:        req.Title,
		Summary:      req.Summary,
		Source:       req.Source,
		Jurisdiction: types.JurisdictionID(req.Jurisdiction),
		Status:       types.UpdateStatus(req.Status),
		PublishedAt:  req.PublishedAt,
		EffectiveAt:  req.EffectiveAt,
	}
}

type regulatoryUpdateResponse struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Summary      string    `json:"summary,omitempty"`
	Source       string    `json:"source,omitempty"`
	Jurisdiction string    `json:"jurisdiction,omitempty"`
	Status       string    `json:"status"`
	PublishedAt  time.Time `json:"published_at"`
	EffectiveAt  time.Time `json:"effective_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toRegulatoryUpdateResponse(u *model.RegulatoryUpdate) regulatoryUpdateResponse {
	return regulatoryUpdateResponse{
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

func (s *Server) createRegulatoryUpdate(w http.ResponseWriter, r *http.Request) {
	var req regulatoryUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	created, err := s.uc.Update.Create(r.Context(), req.toModel(0))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, toRegulatoryUpdateResponse(created))
}

func (s *Server) getRegulatoryUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	update, err := s.uc.Update.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toRegulatoryUpdateResponse(update))
}

func (s *Server) listRegulatoryUpdates(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := interfaces.ListUpdatesOptions{
		Status:       types.UpdateStatus(q.Get("status")),
		Jurisdiction: types.JurisdictionID(q.Get("jurisdiction")),
		SortBy:       q.Get("sort_by"),
		Descending:   queryBool(r, "descending"),
		Offset:       queryInt(r, "offset"),
		Limit:        queryInt(r, "limit"),
	}

	updates, err := s.uc.Update.List(r.Context(), opts)
	if err != nil {
		handleError(w, r, err)
		return
	}

	resp := make([]regulatoryUpdateResponse, len(updates))
	for i, u := range updates {
		resp[i] = toRegulatoryUpdateResponse(u)
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"updates": resp})
}

func (s *Server) updateRegulatoryUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req regulatoryUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	updated, err := s.uc.Update.Update(r.Context(), req.toModel(id))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toRegulatoryUpdateResponse(updated))
}

func (s *Server) transitionRegulatoryUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	updated, err := s.uc.Update.Transition(r.Context(), id, types.UpdateStatus(req.Status))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toRegulatoryUpdateResponse(updated))
}

func (s *Server) deleteRegulatoryUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.uc.Update.Delete(r.Context(), id); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
