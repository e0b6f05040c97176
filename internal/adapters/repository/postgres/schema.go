package postgres

import (
	"database/sql"
	_ "embed"
	"fmt"
)

// The base migration is the single source of the schema. The UNIQUE
// constraint it places on votes.voter_id is the load-bearing invariant of
// the whole system: it is what makes concurrent casts for one voter resolve
// to exactly one committed vote.
//
//go:embed migrations/000001_init.up.sql
var schema string

// EnsureSchema creates all tables needed by the election store. Safe to call
// multiple times, the migration uses IF NOT EXISTS throughout.
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
