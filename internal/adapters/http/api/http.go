// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/courtside/fastbreak/internal/adapters/repository"
	"github.com/courtside/fastbreak/internal/domain/telemetry"
)

// Dependencies bundles the session operations the HTTP handlers need.
// Keeping it an interface keeps the handler layer loosely coupled to the
// service implementation.
type Dependencies interface {
	// RunSession simulates n possessions and stores the results.
	RunSession(ctx context.Context, n int) (telemetry.Summary, error)

	// Read operations over the latest session.
	Summary() telemetry.Summary
	TopN(ctx context.Context, n int) ([]Entry, error)
	Player(ctx context.Context, name string) (Entry, error)
}

// Entry mirrors the read shape returned by box-score queries.
type Entry = repository.Entry

// Server wires HTTP routes for the simulation API.
type Server struct {
	healthHandler      *HealthHandler
	metricsHandler     *MetricsHandler
	summaryHandler     *SummaryHandler
	simulateHandler    *SimulateHandler
	leaderboardHandler *LeaderboardHandler
}

// NewServer creates an API server with all handlers.
func NewServer(deps Dependencies, maxLeaderboardLimit, maxPossessions int) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		metricsHandler:     NewMetricsHandler(),
		summaryHandler:     NewSummaryHandler(deps),
		simulateHandler:    NewSimulateHandler(deps, maxPossessions),
		leaderboardHandler: NewLeaderboardHandler(deps, maxLeaderboardLimit),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.Handle("/metrics", s.metricsHandler.Handler())
	mux.HandleFunc("/summary", MetricsMiddleware(s.summaryHandler.HandleGetSummary, "summary"))
	mux.HandleFunc("/simulate", MetricsMiddleware(s.simulateHandler.HandlePostSimulate, "simulate"))
	mux.HandleFunc("/leaderboard", MetricsMiddleware(s.leaderboardHandler.HandleGetLeaderboard, "leaderboard"))
	mux.HandleFunc("/player/", MetricsMiddleware(s.leaderboardHandler.HandleGetPlayer, "player"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// wrap annotates an error with the failing operation.
func wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// isNotFound translates upstream not-found errors to 404 without coupling
// handlers to a specific store implementation.
func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
