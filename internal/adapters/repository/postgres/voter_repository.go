package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ballotbox/api/internal/core/domain"
	"github.com/ballotbox/api/internal/core/ports"
)

type voterRepository struct {
	db *sql.DB
}

func NewVoterRepository(db *sql.DB) ports.VoterRepository {
	return &voterRepository{db: db}
}

func (r *voterRepository) GetByID(ctx context.Context, id string) (*domain.Voter, error) {
	query := `
		SELECT id, name, password_hash, has_voted, created_at
		FROM voters
		WHERE id = $1
	`
	voter := &domain.Voter{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&voter.ID, &voter.Name, &voter.PasswordHash, &voter.HasVoted, &voter.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapStoreErr("failed to get voter", err)
	}
	return voter, nil
}

func (r *voterRepository) List(ctx context.Context) ([]*domain.Voter, error) {
	query := `
		SELECT id, name, password_hash, has_voted, created_at
		FROM voters
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, wrapStoreErr("failed to list voters", err)
	}
	defer rows.Close()

	var voters []*domain.Voter
	for rows.Next() {
		var voter domain.Voter
		if err := rows.Scan(&voter.ID, &voter.Name, &voter.PasswordHash, &voter.HasVoted, &voter.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan voter: %w", err)
		}
		voters = append(voters, &voter)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreErr("error iterating voters", err)
	}
	return voters, nil
}

func (r *voterRepository) Create(ctx context.Context, voter *domain.Voter) error {
	query := `
		INSERT INTO voters (id, name, password_hash)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query, voter.ID, voter.Name, voter.PasswordHash).Scan(&voter.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "voters_pkey") {
			return domain.ErrDuplicateVoter
		}
		return wrapStoreErr("failed to create voter", err)
	}
	return nil
}

// Remove deletes the voter's vote (if any) and then the voter row in one
// transaction, so no window exists where a vote references a deleted voter.
func (r *voterRepository) Remove(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return wrapStoreErr("failed to begin transaction", err)
	}
	defer tx.Rollback()

	// Lock the voter row first. A concurrent cast holds a key-share lock
	// on it for its foreign-key check, so in-flight casts finish before
	// the vote delete below and later ones fail their foreign-key check.
	var locked string
	err = tx.QueryRowContext(ctx, `SELECT id FROM voters WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrVoterNotFound
		}
		return wrapStoreErr("failed to lock voter", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM votes WHERE voter_id = $1`, id); err != nil {
		return wrapStoreErr("failed to delete voter's vote", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM voters WHERE id = $1`, id); err != nil {
		return wrapStoreErr("failed to delete voter", err)
	}

	if err := tx.Commit(); err != nil {
		return wrapStoreErr("failed to commit transaction", err)
	}
	return nil
}
