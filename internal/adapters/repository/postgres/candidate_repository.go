package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ballotbox/api/internal/core/domain"
	"github.com/ballotbox/api/internal/core/ports"
)

type candidateRepository struct {
	db *sql.DB
}

func NewCandidateRepository(db *sql.DB) ports.CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	query := `
		SELECT id, name, party, created_at
		FROM candidates
		WHERE id = $1
	`
	candidate := &domain.Candidate{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&candidate.ID, &candidate.Name, &candidate.Party, &candidate.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapStoreErr("failed to get candidate", err)
	}
	return candidate, nil
}

func (r *candidateRepository) List(ctx context.Context) ([]*domain.Candidate, error) {
	query := `
		SELECT id, name, party, created_at
		FROM candidates
		ORDER BY name ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, wrapStoreErr("failed to list candidates", err)
	}
	defer rows.Close()

	var candidates []*domain.Candidate
	for rows.Next() {
		var candidate domain.Candidate
		if err := rows.Scan(&candidate.ID, &candidate.Name, &candidate.Party, &candidate.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, &candidate)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreErr("error iterating candidates", err)
	}
	return candidates, nil
}

func (r *candidateRepository) Create(ctx context.Context, candidate *domain.Candidate) error {
	query := `
		INSERT INTO candidates (name, party)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, candidate.Name, candidate.Party).Scan(&candidate.ID, &candidate.CreatedAt)
	if err != nil {
		return wrapStoreErr("failed to create candidate", err)
	}
	return nil
}

// Remove deletes the candidate's votes, clears has_voted for the voters that
// cast them, and deletes the candidate, all in one transaction. The flag
// clearing keeps the invariant that has_voted is true iff a vote row exists.
func (r *candidateRepository) Remove(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return wrapStoreErr("failed to begin transaction", err)
	}
	defer tx.Rollback()

	// Lock the candidate row first. A concurrent cast holds a key-share
	// lock on it for its foreign-key check, so this waits out in-flight
	// casts and blocks new ones until the cascade commits, after which
	// their foreign-key check fails against the deleted row.
	var locked int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM candidates WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrCandidateNotFound
		}
		return wrapStoreErr("failed to lock candidate", err)
	}

	// One statement, one snapshot: the vote rows that get deleted are
	// exactly the voters whose flags get cleared.
	_, err = tx.ExecContext(ctx, `
		WITH deleted AS (
			DELETE FROM votes WHERE candidate_id = $1 RETURNING voter_id
		)
		UPDATE voters SET has_voted = FALSE
		WHERE id IN (SELECT voter_id FROM deleted)
	`, id)
	if err != nil {
		return wrapStoreErr("failed to delete candidate's votes", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM candidates WHERE id = $1`, id); err != nil {
		return wrapStoreErr("failed to delete candidate", err)
	}

	if err := tx.Commit(); err != nil {
		return wrapStoreErr("failed to commit transaction", err)
	}
	return nil
}
