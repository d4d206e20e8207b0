package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/base234/hyper-privacy-backend/internal/domain"
	"github.com/base234/hyper-privacy-backend/internal/metrics"
	healthuc "github.com/base234/hyper-privacy-backend/internal/usecase/health"
	recommenduc "github.com/base234/hyper-privacy-backend/internal/usecase/recommend"
)

// ErrorCode identifies an error class in API responses.
type ErrorCode string

const (
	CodeBadRequest       ErrorCode = "bad_request"
	CodeValidationFailed ErrorCode = "validation_failed"
	CodeModelUnavailable ErrorCode = "model_unavailable"
	CodeInternalError    ErrorCode = "internal_error"
)

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// RecommendRequest is the body of POST /api/v1/recommend.
type RecommendRequest struct {
	Content string `json:"content"`
}

// AddAdRequest is the body of POST /api/v1/ads.
type AddAdRequest struct {
	Content  string            `json:"content"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// AddAdResponse is the result of storing a new ad.
type AddAdResponse struct {
	AdID       int      `json:"ad_id"`
	Categories []string `json:"categories"`
	Keywords   []string `json:"keywords"`
}

// HealthResponse aggregates health check results.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the recommendation pipeline over HTTP.
type Server struct {
	recommend     *recommenduc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	staticDir     string
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(recommend *recommenduc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	s := &Server{
		recommend: recommend,
		health:    health,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidInput, http.StatusBadRequest, CodeValidationFailed),
		sentinelHandler(domain.ErrModelUnavailable, http.StatusServiceUnavailable, CodeModelUnavailable),
	}
	return s
}

// WithStaticDir enables serving the demo UI from the given directory.
func (s *Server) WithStaticDir(dir string) *Server {
	s.staticDir = dir
	return s
}

// Routes mounts all handlers on the given router.
func (s *Server) Routes(r chi.Router) {
	r.Post("/api/v1/recommend", s.Recommend)
	r.Post("/api/v1/ads", s.AddAd)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
	if s.staticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(s.staticDir)))
	}
}

// Recommend handles POST /api/v1/recommend.
func (s *Server) Recommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	start := time.Now()
	result, err := s.recommend.Process(r.Context(), req.Content)
	if err != nil {
		metrics.PipelineRequestsTotal.WithLabelValues("error").Inc()
		s.handleDomainError(w, err)
		return
	}
	metrics.PipelineRequestsTotal.WithLabelValues("ok").Inc()
	metrics.PipelineDuration.Observe(time.Since(start).Seconds())
	metrics.MatchesReturned.Observe(float64(len(result.RecommendedAds)))

	writeJSON(w, http.StatusOK, result)
}

// AddAd handles POST /api/v1/ads.
func (s *Server) AddAd(w http.ResponseWriter, r *http.Request) {
	var req AddAdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Content == "" {
		writeError(w, http.StatusBadRequest, CodeValidationFailed, "Ad content is required")
		return
	}

	rec, err := s.recommend.AddAd(r.Context(), req.Content, req.Metadata)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, AddAdResponse{
		AdID:       rec.Classification.AdID,
		Categories: rec.Classification.Categories,
		Keywords:   rec.Classification.Keywords,
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidInput,
		domain.ErrModelUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}
