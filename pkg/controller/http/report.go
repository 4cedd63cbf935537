package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/regtrack/regtrack/pkg/domain/model"
)

type reportResponse struct {
	ID          string     `json:"id"`
	Status      string     `json:"status"`
	Content     string     `json:"content,omitempty"`
	Error       string     `json:"error,omitempty"`
	RequestedAt time.Time  `json:"requested_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func toReportResponse(r *model.ComplianceReport) reportResponse {
	resp := reportResponse{
		ID:          r.ID.String(),
		Status:      r.Status.String(),
		Content:     r.Content,
		Error:       r.Error,
		RequestedAt: r.RequestedAt,
	}
	if !r.CompletedAt.IsZero() {
		completed := r.CompletedAt
		resp.CompletedAt = &completed
	}
	return resp
}

// requestComplianceCheck queues an AI compliance check and returns the
// pending report. Clients poll GET /api/reports/{id} for the result.
func (s *Server) requestComplianceCheck(w http.ResponseWriter, r *http.Request) {
	report, err := s.uc.Compliance.RequestCheck(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusAccepted, toReportResponse(report))
}

func (s *Server) getReport(w http.ResponseWriter, r *http.Request) {
	id := model.ReportID(chi.URLParam(r, "id"))

	report, err := s.uc.Compliance.GetReport(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toReportResponse(report))
}

func (s *Server) listReports(w http.ResponseWriter, r *http.Request) {
	reports, err := s.uc.Compliance.ListReports(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}

	resp := make([]reportResponse, len(reports))
	for i, report := range reports {
		resp[i] = toReportResponse(report)
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"reports": resp})
}
