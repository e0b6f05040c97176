package http

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ballotbox/api/internal/core/domain"
)

// NewHandler wires the routes. The voter and admin groups are gated by the
// access-token role; candidates and results stay public. When staticDir
// names an existing directory it is served at the root for the ballot UI.
func NewHandler(
	authHandler *AuthHandler,
	voteHandler *VoteHandler,
	resultsHandler *ResultsHandler,
	adminHandler *AdminHandler,
	jwtSecret []byte,
	staticDir string,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/voter/login", authHandler.VoterLogin)
			r.Post("/admin/login", authHandler.AdminLogin)
		})

		r.Get("/candidates", resultsHandler.ListCandidates)
		r.Get("/results", resultsHandler.GetResults)

		r.Group(func(r chi.Router) {
			r.Use(RequireRole(jwtSecret, domain.RoleVoter))
			r.Post("/votes", voteHandler.Cast)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(RequireRole(jwtSecret, domain.RoleAdmin))
			r.Get("/voters", adminHandler.ListVoters)
			r.Post("/voters", adminHandler.AddVoter)
			r.Delete("/voters/{id}", adminHandler.RemoveVoter)
			r.Post("/candidates", adminHandler.AddCandidate)
			r.Delete("/candidates/{id}", adminHandler.RemoveCandidate)
			r.Post("/reset", adminHandler.ResetElection)
		})
	})

	if staticDir != "" {
		if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
			r.Handle("/*", http.FileServer(http.Dir(staticDir)))
		}
	}

	return r
}
