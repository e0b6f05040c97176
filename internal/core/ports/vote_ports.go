package ports

import (
	"context"

	"github.com/ballotbox/api/internal/core/domain"
)

type VoteRepository interface {
	// CastVote inserts the vote and flips the voter's has_voted flag as one
	// atomic, serializable unit, conditioned on no prior vote existing for
	// the voter. A prior or concurrently committed vote surfaces as
	// domain.ErrAlreadyVoted; a voter or candidate deleted before commit
	// surfaces as domain.ErrVoterNotFound / domain.ErrCandidateNotFound.
	// On any failure no partial state is left behind.
	CastVote(ctx context.Context, vote *domain.Vote) error
	// Reset deletes all votes and clears every voter's has_voted flag as one
	// atomic unit. Calling it on an already-reset election is a no-op.
	Reset(ctx context.Context) error
}

type CastVoteInput struct {
	VoterID     string
	CandidateID int64
}

type BallotService interface {
	Cast(ctx context.Context, input CastVoteInput) (*domain.Vote, error)
}
