package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/regtrack/regtrack/pkg/usecase"
	"github.com/regtrack/regtrack/pkg/utils/logging"
)

type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

func New(uc *usecase.UseCases) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/licenses", func(r chi.Router) {
			r.Get("/", s.listLicenses)
			r.Post("/", s.createLicense)
			r.Get("/{id}", s.getLicense)
			r.Put("/{id}", s.updateLicense)
			r.Delete("/{id}", s.deleteLicense)
		})

		r.Route("/policies", func(r chi.Router) {
			r.Get("/", s.listPolicies)
			r.Post("/", s.createPolicy)
			r.Get("/{id}", s.getPolicy)
			r.Put("/{id}", s.updatePolicy)
			r.Post("/{id}/archive", s.archivePolicy)
			r.Delete("/{id}", s.deletePolicy)
		})

		r.Route("/updates", func(r chi.Router) {
			r.Get("/", s.listRegulatoryUpdates)
			r.Post("/", s.createRegulatoryUpdate)
			r.Get("/{id}", s.getRegulatoryUpdate)
			r.Put("/{id}", s.updateRegulatoryUpdate)
			r.Post("/{id}/transition", s.transitionRegulatoryUpdate)
			r.Delete("/{id}", s.deleteRegulatoryUpdate)
		})

		r.Route("/assessments", func(r chi.Router) {
			r.Get("/", s.listAssessments)
			r.Post("/", s.createAssessment)
			r.Get("/{id}", s.getAssessment)
			r.Put("/{id}", s.updateAssessmentDetails)
			r.Delete("/{id}", s.deleteAssessment)

			r.Post("/{id}/risks", s.addRiskItem)
			r.Patch("/{id}/risks/{index}", s.updateRiskItem)
			r.Delete("/{id}/risks/{index}", s.removeRiskItem)

			r.Post("/{id}/recalculate", s.recalculateAssessment)
			r.Post("/{id}/finalize", s.finalizeAssessment)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/", s.listReports)
			r.Post("/", s.requestComplianceCheck)
			r.Get("/{id}", s.getReport)
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.From(r.Context()).Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
