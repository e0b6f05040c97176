package postgres

import (
	"context"
	"database/sql"

	"github.com/ballotbox/api/internal/core/domain"
	"github.com/ballotbox/api/internal/core/ports"
)

type voteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) ports.VoteRepository {
	return &voteRepository{db: db}
}

// CastVote inserts the vote row and flips the voter's has_voted flag in one
// transaction. The insert is the conditional commit: votes_voter_id_key
// rejects a second vote for the same voter, so among any number of
// concurrent casts exactly one insert succeeds and the rest surface as
// domain.ErrAlreadyVoted. There is deliberately no prior "does a vote
// exist" read in here.
func (r *voteRepository) CastVote(ctx context.Context, vote *domain.Vote) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return wrapStoreErr("failed to begin transaction", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO votes (id, voter_id, candidate_id, cast_at)
		VALUES ($1, $2, $3, $4)
	`, vote.ID, vote.VoterID, vote.CandidateID, vote.CastAt)
	if err != nil {
		switch {
		case isUniqueViolation(err, "votes_voter_id_key"):
			return domain.ErrAlreadyVoted
		case isForeignKeyViolation(err, "votes_voter_id_fkey"):
			return domain.ErrVoterNotFound
		case isForeignKeyViolation(err, "votes_candidate_id_fkey"):
			// The candidate was removed between validation and commit.
			return domain.ErrCandidateNotFound
		}
		return wrapStoreErr("failed to insert vote", err)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE voters SET has_voted = TRUE WHERE id = $1`, vote.VoterID); err != nil {
		return wrapStoreErr("failed to mark voter", err)
	}

	if err := tx.Commit(); err != nil {
		return wrapStoreErr("failed to commit vote", err)
	}
	return nil
}

// Reset deletes all votes and clears the matching has_voted flags in one
// statement sharing one snapshot: a cast committing concurrently either
// keeps both its vote row and its flag or loses both, never one of the two.
// Running it against an already-reset election changes nothing.
func (r *voteRepository) Reset(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		WITH deleted AS (
			DELETE FROM votes RETURNING voter_id
		)
		UPDATE voters SET has_voted = FALSE
		WHERE id IN (SELECT voter_id FROM deleted)
	`)
	if err != nil {
		return wrapStoreErr("failed to reset election", err)
	}
	return nil
}
