package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	httpctrl "github.com/regtrack/regtrack/pkg/controller/http"
	"github.com/regtrack/regtrack/pkg/repository/memory"
	"github.com/regtrack/regtrack/pkg/usecase"
)

func newTestServer(t *testing.T) *httpctrl.Server {
	t.Helper()
	return httpctrl.New(usecase.New(memory.New()))
}

func doJSON(t *testing.T, srv http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		gt.NoError(t, json.NewEncoder(&buf).Encode(body)).Required()
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst)).Required()
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv, http.MethodGet, "/health", nil)
	gt.N(t, rec.Code).Equal(http.StatusOK)
}

func TestLicenseEndpoints(t *testing.T) {
	srv := newTestServer(t)

	// Create
	rec := doJSON(t, srv, http.MethodPost, "/api/licenses", map[string]any{
		"name":   "Money Transmitter License",
		"holder": "acme",
	})
	gt.N(t, rec.Code).Equal(http.StatusCreated)

	var created struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
	}
	decodeBody(t, rec, &created)
	gt.B(t, created.ID > 0).True()
	gt.V(t, created.Status).Equal("ACTIVE")

	// Get
	rec = doJSON(t, srv, http.MethodGet, fmt.Sprintf("/api/licenses/%d", created.ID), nil)
	gt.N(t, rec.Code).Equal(http.StatusOK)

	// Update
	rec = doJSON(t, srv, http.MethodPut, fmt.Sprintf("/api/licenses/%d", created.ID), map[string]any{
		"name":   "Money Transmitter License",
		"holder": "acme",
		"status": "PENDING_RENEWAL",
	})
	gt.N(t, rec.Code).Equal(http.StatusOK)

	// List with filter
	rec = doJSON(t, srv, http.MethodGet, "/api/licenses?status=PENDING_RENEWAL", nil)
	gt.N(t, rec.Code).Equal(http.StatusOK)
	var listed struct {
		Licenses []json.RawMessage `json:"licenses"`
	}
	decodeBody(t, rec, &listed)
	gt.A(t, listed.Licenses).Length(1)

	// Delete
	rec = doJSON(t, srv, http.MethodDelete, fmt.Sprintf("/api/licenses/%d", created.ID), nil)
	gt.N(t, rec.Code).Equal(http.StatusNoContent)

	rec = doJSON(t, srv, http.MethodGet, fmt.Sprintf("/api/licenses/%d", created.ID), nil)
	gt.N(t, rec.Code).Equal(http.StatusNotFound)
}

func TestLicenseValidationErrors(t *testing.T) {
	srv := newTestServer(t)

	// Invalid status maps to 400
	rec := doJSON(t, srv, http.MethodPost, "/api/licenses", map[string]any{
		"name":   "x",
		"status": "SUSPENDED",
	})
	gt.N(t, rec.Code).Equal(http.StatusBadRequest)

	// Unknown record maps to 404
	rec = doJSON(t, srv, http.MethodGet, "/api/licenses/999", nil)
	gt.N(t, rec.Code).Equal(http.StatusNotFound)

	// Malformed ID maps to 400
	rec = doJSON(t, srv, http.MethodGet, "/api/licenses/abc", nil)
	gt.N(t, rec.Code).Equal(http.StatusBadRequest)
}

func TestPolicyVersioning(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/policies", map[string]any{
		"title": "Data Retention Policy",
		"body":  "Keep records for 7 years.",
	})
	gt.N(t, rec.Code).Equal(http.StatusCreated)

	var created struct {
		ID      int64  `json:"id"`
		Status  string `json:"status"`
		Version int    `json:"version"`
	}
	decodeBody(t, rec, &created)
	gt.V(t, created.Status).Equal("DRAFT")
	gt.N(t, created.Version).Equal(1)

	rec = doJSON(t, srv, http.MethodPut, fmt.Sprintf("/api/policies/%d", created.ID), map[string]any{
		"title":  "Data Retention Policy",
		"body":   "Keep records for 5 years.",
		"status": "ACTIVE",
	})
	gt.N(t, rec.Code).Equal(http.StatusOK)

	var updated struct {
		Version int    `json:"version"`
		Status  string `json:"status"`
	}
	decodeBody(t, rec, &updated)
	gt.N(t, updated.Version).Equal(2)
	gt.V(t, updated.Status).Equal("ACTIVE")

	rec = doJSON(t, srv, http.MethodPost, fmt.Sprintf("/api/policies/%d/archive", created.ID), nil)
	gt.N(t, rec.Code).Equal(http.StatusOK)
	decodeBody(t, rec, &updated)
	gt.V(t, updated.Status).Equal("ARCHIVED")
	gt.N(t, updated.Version).Equal(2)
}

func TestRegulatoryUpdateTransitionEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/updates", map[string]any{
		"title": "New reporting rule",
	})
	gt.N(t, rec.Code).Equal(http.StatusCreated)

	var created struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
	}
	decodeBody(t, rec, &created)
	gt.V(t, created.Status).Equal("NEW")

	rec = doJSON(t, srv, http.MethodPost, fmt.Sprintf("/api/updates/%d/transition", created.ID), map[string]any{
		"status": "UNDER_REVIEW",
	})
	gt.N(t, rec.Code).Equal(http.StatusOK)

	// Forbidden transition maps to 409
	rec = doJSON(t, srv, http.MethodPost, fmt.Sprintf("/api/updates/%d/transition", created.ID), map[string]any{
		"status": "NEW",
	})
	gt.N(t, rec.Code).Equal(http.StatusConflict)

	// Invalid enum maps to 400
	rec = doJSON(t, srv, http.MethodPost, fmt.Sprintf("/api/updates/%d/transition", created.ID), map[string]any{
		"status": "SHELVED",
	})
	gt.N(t, rec.Code).Equal(http.StatusBadRequest)
}

func TestAssessmentEndpoints(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/assessments", map[string]any{
		"title": "vendor review",
		"identified_risks": []map[string]any{
			{
				"description": "no breach notification clause",
				"likelihood":  "HIGH",
				"impact":      "MEDIUM",
			},
		},
	})
	gt.N(t, rec.Code).Equal(http.StatusCreated)

	var created struct {
		ID              int64 `json:"id"`
		IdentifiedRisks []struct {
			InherentRisk string `json:"inherent_risk"`
			ResidualRisk string `json:"residual_risk"`
		} `json:"identified_risks"`
		OverallRiskRating string `json:"overall_risk_rating"`
	}
	decodeBody(t, rec, &created)
	gt.V(t, created.IdentifiedRisks[0].InherentRisk).Equal("CRITICAL")
	gt.V(t, created.OverallRiskRating).Equal("CRITICAL")

	// Patch the risk item with mitigation
	rec = doJSON(t, srv, http.MethodPatch, fmt.Sprintf("/api/assessments/%d/risks/0", created.ID), map[string]any{
		"mitigation_controls": []string{"contract addendum"},
	})
	gt.N(t, rec.Code).Equal(http.StatusOK)
	decodeBody(t, rec, &created)
	gt.V(t, created.IdentifiedRisks[0].InherentRisk).Equal("CRITICAL")
	gt.V(t, created.IdentifiedRisks[0].ResidualRisk).Equal("HIGH")
	gt.V(t, created.OverallRiskRating).Equal("HIGH")

	// Out-of-range item maps to 404
	rec = doJSON(t, srv, http.MethodPatch, fmt.Sprintf("/api/assessments/%d/risks/5", created.ID), map[string]any{
		"description": "x",
	})
	gt.N(t, rec.Code).Equal(http.StatusNotFound)

	// Invalid enum in a patch maps to 400
	rec = doJSON(t, srv, http.MethodPatch, fmt.Sprintf("/api/assessments/%d/risks/0", created.ID), map[string]any{
		"likelihood": "Extreme",
	})
	gt.N(t, rec.Code).Equal(http.StatusBadRequest)

	// Finalize, then mutations conflict
	rec = doJSON(t, srv, http.MethodPost, fmt.Sprintf("/api/assessments/%d/finalize", created.ID), nil)
	gt.N(t, rec.Code).Equal(http.StatusOK)

	rec = doJSON(t, srv, http.MethodPost, fmt.Sprintf("/api/assessments/%d/risks", created.ID), map[string]any{
		"likelihood": "LOW",
		"impact":     "LOW",
	})
	gt.N(t, rec.Code).Equal(http.StatusConflict)

	rec = doJSON(t, srv, http.MethodDelete, fmt.Sprintf("/api/assessments/%d/risks/0", created.ID), nil)
	gt.N(t, rec.Code).Equal(http.StatusConflict)
}

func TestReportEndpointsWithoutLLM(t *testing.T) {
	srv := newTestServer(t)

	// No LLM configured: compliance checks are unavailable
	rec := doJSON(t, srv, http.MethodPost, "/api/reports", nil)
	gt.N(t, rec.Code).Equal(http.StatusServiceUnavailable)

	rec = doJSON(t, srv, http.MethodGet, "/api/reports", nil)
	gt.N(t, rec.Code).Equal(http.StatusOK)
	var listed struct {
		Reports []json.RawMessage `json:"reports"`
	}
	decodeBody(t, rec, &listed)
	gt.A(t, listed.Reports).Length(0)

	rec = doJSON(t, srv, http.MethodGet, "/api/reports/no-such-report", nil)
	gt.N(t, rec.Code).Equal(http.StatusNotFound)
}
