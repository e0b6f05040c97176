package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ballotbox/api/internal/core/domain"
	"github.com/ballotbox/api/internal/core/ports"
)

type AuthHandler struct {
	service ports.AuthService
}

func NewAuthHandler(service ports.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type voterLoginRequest struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

type voterLoginResponse struct {
	Voter *domain.Voter `json:"voter"`
	Token string        `json:"token"`
}

type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type adminLoginResponse struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

func (h *AuthHandler) VoterLogin(w http.ResponseWriter, r *http.Request) {
	var req voterLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.ID == "" || req.Password == "" {
		http.Error(w, "id and password are required", http.StatusBadRequest)
		return
	}

	voter, token, err := h.service.LoginVoter(r.Context(), req.ID, req.Password)
	if err != nil {
		writeAuthError(w, err)
		return
	}

	setAccessTokenCookie(w, token)
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(voterLoginResponse{Voter: voter, Token: token}); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Username == "" || req.Password == "" {
		http.Error(w, "username and password are required", http.StatusBadRequest)
		return
	}

	admin, token, err := h.service.LoginAdmin(r.Context(), req.Username, req.Password)
	if err != nil {
		writeAuthError(w, err)
		return
	}

	setAccessTokenCookie(w, token)
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adminLoginResponse{Username: admin.Username, Token: token}); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// writeAuthError keeps the 401 message identical for unknown identities and
// wrong passwords.
func writeAuthError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrInvalidCredentials) {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	if errors.Is(err, domain.ErrStoreUnavailable) {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}
	http.Error(w, domain.ErrInternal.Error(), http.StatusInternalServerError)
}

func setAccessTokenCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   15 * 60,
	})
}
