package http

import (
	"net/http"
	"time"

	"github.com/regtrack/regtrack/pkg/domain/interfaces"
	"github.com/regtrack/regtrack/pkg/domain/model"
	"github.com/regtrack/regtrack/pkg/domain/types"
)

type licenseRequest struct {
	Name         string    `json:"name"`
	Holder       string    `json:"holder"`
	Type         string    `json:"type"`
	Status       string    `json:"status"`
	Jurisdiction string    `json:"jurisdiction"`
	IssuedAt     time.Time `json:"issued_at"`
	ExpiresAt    time.Time `json:"expires_at"`
	Notes        string    `json:"notes"`
}

func (req *licenseRequest) toModel(id int64) *model.License {
	return &model.License{
		ID:           id,
		Name:         req.Name,
		Holder:       req.Holder,
		Type:         types.CategoryID(req.Type),
		Status:       types.LicenseStatus(req.Status),
		Jurisdiction: types.JurisdictionID(req.Jurisdiction),
		IssuedAt:     req.IssuedAt,
		ExpiresAt:    req.ExpiresAt,
		Notes:        req.Notes,
	}
}

type licenseResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Holder       string    `json:"holder"`
	Type         string    `json:"type,omitempty"`
	Status       string    `json:"status"`
	Jurisdiction string    `json:"jurisdiction,omitempty"`
	IssuedAt     time.Time `json:"issued_at"`
	ExpiresAt    time.Time `json:"expires_at"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toLicenseResponse(l *model.License) licenseResponse {
	return licenseResponse{
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

func (s *Server) createLicense(w http.ResponseWriter, r *http.Request) {
	var req licenseRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	created, err := s.uc.License.Create(r.Context(), req.toModel(0))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, toLicenseResponse(created))
}

func (s *Server) getLicense(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	license, err := s.uc.License.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toLicenseResponse(license))
}

func (s *Server) listLicenses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := interfaces.ListLicensesOptions{
		Status:       types.LicenseStatus(q.Get("status")),
		Type:         types.CategoryID(q.Get("type")),
		Jurisdiction: types.JurisdictionID(q.Get("jurisdiction")),
		SortBy:       q.Get("sort_by"),
		Descending:   queryBool(r, "descending"),
		Offset:       queryInt(r, "offset"),
		Limit:        queryInt(r, "limit"),
	}

	licenses, err := s.uc.License.List(r.Context(), opts)
	if err != nil {
		handleError(w, r, err)
		return
	}

	resp := make([]licenseResponse, len(licenses))
	for i, l := range licenses {
		resp[i] = toLicenseResponse(l)
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"licenses": resp})
}

func (s *Server) updateLicense(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req licenseRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	updated, err := s.uc.License.Update(r.Context(), req.toModel(id))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toLicenseResponse(updated))
}

func (s *Server) deleteLicense(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.uc.License.Delete(r.Context(), id); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
