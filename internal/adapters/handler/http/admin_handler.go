package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ballotbox/api/internal/core/domain"
	"github.com/ballotbox/api/internal/core/ports"
)

type AdminHandler struct {
	service ports.ElectionService
}

func NewAdminHandler(service ports.ElectionService) *AdminHandler {
	return &AdminHandler{service: service}
}

type addVoterRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type addCandidateRequest struct {
	Name  string `json:"name"`
	Party string `json:"party"`
}

// ListVoters handles GET /api/admin/voters. Password hashes never serialize
// (json:"-" on the domain type).
func (h *AdminHandler) ListVoters(w http.ResponseWriter, r *http.Request) {
	voters, err := h.service.ListVoters(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if voters == nil {
		voters = []*domain.Voter{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(voters); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func (h *AdminHandler) AddVoter(w http.ResponseWriter, r *http.Request) {
	var req addVoterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.ID == "" || req.Name == "" || req.Password == "" {
		http.Error(w, "id, name and password are required", http.StatusBadRequest)
		return
	}

	voter, err := h.service.AddVoter(r.Context(), ports.AddVoterInput{
		ID:       req.ID,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateVoter) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		writeStoreError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(voter); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func (h *AdminHandler) RemoveVoter(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "missing voter id", http.StatusBadRequest)
		return
	}

	if err := h.service.RemoveVoter(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrVoterNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) AddCandidate(w http.ResponseWriter, r *http.Request) {
	var req addCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	candidate, err := h.service.AddCandidate(r.Context(), ports.AddCandidateInput{
		Name:  req.Name,
		Party: req.Party,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(candidate); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func (h *AdminHandler) RemoveCandidate(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid candidate id", http.StatusBadRequest)
		return
	}

	if err := h.service.RemoveCandidate(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrCandidateNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) ResetElection(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Reset(r.Context()); err != nil {
		writeStoreError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"reset"}`))
}
