package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ballotbox/api/internal/core/domain"
	"github.com/ballotbox/api/internal/core/ports"
)

type ResultsHandler struct {
	electionService ports.ElectionService
	tallyService    ports.TallyService
}

func NewResultsHandler(electionService ports.ElectionService, tallyService ports.TallyService) *ResultsHandler {
	return &ResultsHandler{
		electionService: electionService,
		tallyService:    tallyService,
	}
}

// ListCandidates handles GET /api/candidates, ordered by name ascending.
func (h *ResultsHandler) ListCandidates(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.electionService.ListCandidates(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if candidates == nil {
		candidates = []*domain.Candidate{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(candidates); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// GetResults handles GET /api/results: the ranked tally, zero-vote
// candidates included.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.tallyService.ComputeResults(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(results); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrStoreUnavailable) {
		http.Error(w, "service unavailable, retry later", http.StatusServiceUnavailable)
		return
	}
	http.Error(w, domain.ErrInternal.Error(), http.StatusInternalServerError)
}
