package ports

import (
	"context"

	"github.com/ballotbox/api/internal/core/domain"
)

type TallyRepository interface {
	// CandidateTallies reads one consistent snapshot of the vote counts:
	// every candidate appears, zero-vote candidates with count 0, ordered by
	// count descending then name ascending.
	CandidateTallies(ctx context.Context) ([]domain.CandidateTally, error)
}

type TallyService interface {
	ComputeResults(ctx context.Context) ([]domain.CandidateTally, error)
}
