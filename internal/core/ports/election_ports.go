package ports

import (
	"context"

	"github.com/ballotbox/api/internal/core/domain"
)

type AddVoterInput struct {
	ID       string
	Name     string
	Password string
}

type AddCandidateInput struct {
	Name  string
	Party string
}

// ElectionService is the administrative surface: candidate and voter
// lifecycle plus election reset.
type ElectionService interface {
	ListCandidates(ctx context.Context) ([]*domain.Candidate, error)
	AddCandidate(ctx context.Context, input AddCandidateInput) (*domain.Candidate, error)
	RemoveCandidate(ctx context.Context, id int64) error
	ListVoters(ctx context.Context) ([]*domain.Voter, error)
	AddVoter(ctx context.Context, input AddVoterInput) (*domain.Voter, error)
	RemoveVoter(ctx context.Context, id string) error
	Reset(ctx context.Context) error
}
