package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/ballotbox/api/internal/core/domain"
	"github.com/ballotbox/api/internal/core/ports"
)

type VoteHandler struct {
	service ports.BallotService
}

func NewVoteHandler(service ports.BallotService) *VoteHandler {
	return &VoteHandler{service: service}
}

type castVoteRequest struct {
	CandidateID int64 `json:"candidate_id"`
}

type castVoteResponse struct {
	VoteID      string `json:"vote_id"`
	CandidateID int64  `json:"candidate_id"`
	CastAt      string `json:"cast_at"`
}

// Cast handles POST /api/votes. The voter identity comes from the access
// token, never from the request body, so a voter cannot cast on behalf of
// another.
func (h *VoteHandler) Cast(w http.ResponseWriter, r *http.Request) {
	voterID, ok := r.Context().Value(SubjectKey).(string)
	if !ok || voterID == "" {
		http.Error(w, "missing voter context", http.StatusUnauthorized)
		return
	}

	var req castVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.CandidateID <= 0 {
		http.Error(w, "candidate_id is required", http.StatusBadRequest)
		return
	}

	vote, err := h.service.Cast(r.Context(), ports.CastVoteInput{
		VoterID:     voterID,
		CandidateID: req.CandidateID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyVoted):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, domain.ErrVoterNotFound), errors.Is(err, domain.ErrCandidateNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, domain.ErrStoreUnavailable):
			http.Error(w, "service unavailable, retry later", http.StatusServiceUnavailable)
		default:
			http.Error(w, domain.ErrInternal.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(castVoteResponse{
		VoteID:      vote.ID.String(),
		CandidateID: vote.CandidateID,
		CastAt:      vote.CastAt.UTC().Format(time.RFC3339),
	}); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
