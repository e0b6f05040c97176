package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

type SeedConfig struct {
	AdminUsername string
	AdminPassword string
}

type seedVoter struct {
	id       string
	name     string
	password string
}

type seedCandidate struct {
	name  string
	party string
}

// Starter data for a fresh deployment. Passwords here are placeholders for
// local development; production deployments override the admin credentials
// via SEED_ADMIN_USERNAME / SEED_ADMIN_PASSWORD and manage voters through
// the admin API.
var (
	seedVoters = []seedVoter{
		{id: "V001", name: "Alice Mwangi", password: "voterpass1"},
		{id: "V002", name: "Brian Okoth", password: "voterpass2"},
		{id: "V003", name: "Carol Njeri", password: "voterpass3"},
	}
	seedCandidates = []seedCandidate{
		{name: "Diana Wairimu", party: "Unity Party"},
		{name: "Edwin Kiprop", party: "Progress Alliance"},
		{name: "Faith Atieno", party: "Reform Movement"},
		{name: "George Mutua", party: "Independent"},
	}
)

// Seed populates a fresh database with one admin identity and the starter
// voters and candidates. It is a no-op when an admin already exists, so it
// runs unconditionally at startup.
func Seed(ctx context.Context, db *sql.DB, cfg SeedConfig) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM admins`).Scan(&count); err != nil {
		return wrapStoreErr("failed to check admins", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return wrapStoreErr("failed to begin transaction", err)
	}
	defer tx.Rollback()

	adminHash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO admins (username, password_hash) VALUES ($1, $2)
	`, cfg.AdminUsername, string(adminHash)); err != nil {
		return wrapStoreErr("failed to seed admin", err)
	}

	for _, v := range seedVoters {
		hash, err := bcrypt.GenerateFromPassword([]byte(v.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash voter password: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO voters (id, name, password_hash) VALUES ($1, $2, $3)
		`, v.id, v.name, string(hash)); err != nil {
			return wrapStoreErr("failed to seed voter", err)
		}
	}

	for _, c := range seedCandidates {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO candidates (name, party) VALUES ($1, $2)
		`, c.name, c.party); err != nil {
			return wrapStoreErr("failed to seed candidate", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return wrapStoreErr("failed to commit seed", err)
	}

	slog.Info("seeded election store", "voters", len(seedVoters), "candidates", len(seedCandidates))
	return nil
}
