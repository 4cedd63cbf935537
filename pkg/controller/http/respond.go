package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/regtrack/regtrack/pkg/domain/interfaces"
	"github.com/regtrack/regtrack/pkg/domain/types"
	"github.com/regtrack/regtrack/pkg/usecase"
	"github.com/regtrack/regtrack/pkg/utils/errutil"
	"github.com/regtrack/regtrack/pkg/utils/safe"
)

func respondJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(r.Context(), w, data)
}

// handleError maps domain errors to HTTP status codes and writes the response
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, interfaces.ErrNotFound),
		errors.Is(err, usecase.ErrRiskItemOutOfRange):
		status = http.StatusNotFound
	case errors.Is(err, types.ErrInvalidEnum),
		errors.Is(err, errBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, usecase.ErrAssessmentFinalized),
		errors.Is(err, usecase.ErrInvalidTransition):
		status = http.StatusConflict
	case errors.Is(err, usecase.ErrLLMNotConfigured):
		status = http.StatusServiceUnavailable
	}

	errutil.HandleHTTP(r.Context(), w, err, status)
}

// errBadRequest marks client-side request errors (malformed body or URL
// parameters) so handleError maps them to 400.
var errBadRequest = goerr.New("bad request")

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return goerr.Wrap(errBadRequest, "invalid request body", goerr.V("cause", err.Error()))
	}
	return nil
}

// pathID parses the {id} URL parameter as an int64 record ID
func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, goerr.Wrap(errBadRequest, "invalid record ID", goerr.V("id", raw))
	}
	return id, nil
}

// pathIndex parses the {index} URL parameter as a risk item position
func pathIndex(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "index")
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, goerr.Wrap(errBadRequest, "invalid risk item index", goerr.V("index", raw))
	}
	return index, nil
}

func queryInt(r *http.Request, key string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func queryBool(r *http.Request, key string) bool {
	return r.URL.Query().Get(key) == "true"
}
