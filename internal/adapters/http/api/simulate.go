package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/courtside/fastbreak/internal/domain/telemetry"
)

// SimulateDependencies defines the interface for running sessions.
type SimulateDependencies interface {
	RunSession(ctx context.Context, n int) (telemetry.Summary, error)
}

// SimulateHandler handles simulation run requests.
type SimulateHandler struct {
	deps           SimulateDependencies
	maxPossessions int
}

// NewSimulateHandler creates a new simulate handler.
func NewSimulateHandler(deps SimulateDependencies, maxPossessions int) *SimulateHandler {
	return &SimulateHandler{deps: deps, maxPossessions: maxPossessions}
}

type simulateRequest struct {
	Possessions int `json:"possessions"`
}

func (s simulateRequest) validate(maxPossessions int) error {
	if s.Possessions < 1 {
		return errors.New("possessions must be positive")
	}
	if s.Possessions > maxPossessions {
		return errors.New("possessions exceeds the configured maximum")
	}
	return nil
}

type simulateResponse struct {
	Possessions int     `json:"possessions"`
	Shots       int     `json:"shots"`
	Makes       int     `json:"makes"`
	PAvg        float64 `json:"p_avg"`
}

// HandlePostSimulate handles POST /simulate requests.
func (h *SimulateHandler) HandlePostSimulate(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_simulate"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", wrap(op, ErrBadRequest))
		return
	}
	if err := req.validate(h.maxPossessions); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", wrap(op, err))
		return
	}

	summary, err := h.deps.RunSession(r.Context(), req.Possessions)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, simulateResponse{
		Possessions: req.Possessions,
		Shots:       summary.Shots,
		Makes:       summary.Makes,
		PAvg:        summary.PAvg,
	})
}
