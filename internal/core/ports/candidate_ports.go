package ports

import (
	"context"

	"github.com/ballotbox/api/internal/core/domain"
)

type CandidateRepository interface {
	// GetByID returns (nil, nil) when no candidate exists with the given id.
	GetByID(ctx context.Context, id int64) (*domain.Candidate, error)
	// List returns all candidates ordered by name ascending.
	List(ctx context.Context) ([]*domain.Candidate, error)
	// Create assigns the id and creation timestamp on the passed candidate.
	Create(ctx context.Context, candidate *domain.Candidate) error
	// Remove deletes the candidate's votes, clears has_voted for the voters
	// that cast them, and deletes the candidate, as one atomic unit. Fails
	// with domain.ErrCandidateNotFound when absent.
	Remove(ctx context.Context, id int64) error
}
