package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ballotbox/api/internal/core/domain"
	"github.com/ballotbox/api/internal/core/ports"
)

type tallyRepository struct {
	db *sql.DB
}

func NewTallyRepository(db *sql.DB) ports.TallyRepository {
	return &tallyRepository{db: db}
}

// CandidateTallies aggregates in a single statement, so the result is one
// consistent snapshot: it can never mix pre- and post-reset state.
func (r *tallyRepository) CandidateTallies(ctx context.Context) ([]domain.CandidateTally, error) {
	query := `
		SELECT c.id, c.name, c.party, COUNT(v.id) AS vote_count
		FROM candidates c
		LEFT JOIN votes v ON v.candidate_id = c.id
		GROUP BY c.id, c.name, c.party
		ORDER BY vote_count DESC, c.name ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, wrapStoreErr("failed to query tallies", err)
	}
	defer rows.Close()

	tallies := []domain.CandidateTally{}
	for rows.Next() {
		var t domain.CandidateTally
		if err := rows.Scan(&t.CandidateID, &t.Name, &t.Party, &t.VoteCount); err != nil {
			return nil, fmt.Errorf("failed to scan tally: %w", err)
		}
		tallies = append(tallies, t)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreErr("error iterating tallies", err)
	}
	return tallies, nil
}
