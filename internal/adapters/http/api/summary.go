package api

import (
	"net/http"

	"github.com/courtside/fastbreak/internal/domain/telemetry"
)

// SummaryDependencies defines the interface for summary reads.
type SummaryDependencies interface {
	Summary() telemetry.Summary
}

// SummaryHandler handles session summary requests.
type SummaryHandler struct {
	deps SummaryDependencies
}

// NewSummaryHandler creates a new summary handler.
func NewSummaryHandler(deps SummaryDependencies) *SummaryHandler {
	return &SummaryHandler{deps: deps}
}

type summaryResponse struct {
	Shots int     `json:"shots"`
	Makes int     `json:"makes"`
	PAvg  float64 `json:"p_avg"`
}

// HandleGetSummary handles GET /summary requests.
func (h *SummaryHandler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	s := h.deps.Summary()
	writeJSON(w, http.StatusOK, summaryResponse{Shots: s.Shots, Makes: s.Makes, PAvg: s.PAvg})
}
