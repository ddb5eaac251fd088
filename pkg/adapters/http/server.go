package http

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/runoff"
	"github.com/aretw0/runoff/internal/logging"
	"github.com/aretw0/runoff/pkg/config"
	"github.com/aretw0/runoff/pkg/domain"
	"github.com/aretw0/runoff/pkg/observability"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// maxBodyBytes bounds election request bodies.
const maxBodyBytes = 1 << 20

// OutcomeResponse is the JSON form of a decided election.
type OutcomeResponse struct {
	Name    string             `json:"name,omitempty"`
	Kind    domain.OutcomeKind `json:"kind"`
	Winners []string           `json:"winners"`
	Rounds  []domain.Round     `json:"rounds"`
}

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Server runs elections on behalf of HTTP clients. Every request gets its own Election.
type Server struct {
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *observability.Metrics
	workers  int
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithRegistry exposes metrics from the given registry instead of a private one.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		s.registry = reg
	}
}

// WithTallyWorkers sets the default partitioning for requests that do not ask for one.
func WithTallyWorkers(n int) Option {
	return func(s *Server) {
		s.workers = n
	}
}

// NewServer creates a Server and registers its metrics.
func NewServer(opts ...Option) *Server {
	s := &Server{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
	}
	s.metrics = observability.NewMetrics(s.registry)
	return s
}

// NewHandler creates a new HTTP handler exposing the election API.
func NewHandler(opts ...Option) http.Handler {
	return NewServer(opts...).Routes()
}

// Routes builds the chi router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Post("/elections", s.RunElection)
	r.Get("/presets/power-sources", s.RunPowerSources)
	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(rawSpec)
	})

	return r
}

// RunElection handles POST /elections.
func (s *Server) RunElection(w http.ResponseWriter, r *http.Request) {
	raw := make(map[string]any)
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	// Numbers stay json.Number so 1.5 is rejected instead of truncated.
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	def, err := config.Decode(raw)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	var opts []runoff.Option
	if def.TallyWorkers == 0 && s.workers > 0 {
		opts = append(opts, runoff.WithTallyWorkers(s.workers))
	}
	el, err := def.Build(append(opts, s.electionOptions()...)...)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	s.run(w, r, def.Name, el)
}

// RunPowerSources handles GET /presets/power-sources.
func (s *Server) RunPowerSources(w http.ResponseWriter, r *http.Request) {
	el, err := runoff.PowerSources(s.electionOptions()...)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.run(w, r, "power-sources", el)
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"name":    "runoff",
		"version": strings.TrimSpace(runoff.Version),
	})
}

func (s *Server) electionOptions() []runoff.Option {
	return []runoff.Option{
		runoff.WithLogger(s.logger),
		runoff.WithLifecycleHooks(s.metrics.Hooks()),
	}
}

func (s *Server) run(w http.ResponseWriter, r *http.Request, name string, el *runoff.Election) {
	outcome, err := el.Run(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	s.logger.Info("election served", "name", name, "kind", outcome.Kind, "winners", outcome.Winners)
	writeJSON(w, http.StatusOK, OutcomeResponse{
		Name:    name,
		Kind:    outcome.Kind,
		Winners: outcome.Winners,
		Rounds:  outcome.Rounds,
	})
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "status", status, "error", err)
	} else {
		s.logger.Warn("request rejected", "status", status, "error", err)
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}
