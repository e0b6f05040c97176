package ports

import (
	"context"

	"github.com/ballotbox/api/internal/core/domain"
)

type VoterRepository interface {
	// GetByID returns (nil, nil) when no voter exists with the given id.
	GetByID(ctx context.Context, id string) (*domain.Voter, error)
	List(ctx context.Context) ([]*domain.Voter, error)
	// Create fails with domain.ErrDuplicateVoter when the id is taken,
	// without mutating any state.
	Create(ctx context.Context, voter *domain.Voter) error
	// Remove deletes the voter's vote (if any) and the voter row as one
	// atomic unit. Fails with domain.ErrVoterNotFound when absent.
	Remove(ctx context.Context, id string) error
}
