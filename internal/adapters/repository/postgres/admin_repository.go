package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ballotbox/api/internal/core/domain"
	"github.com/ballotbox/api/internal/core/ports"
)

type adminRepository struct {
	db *sql.DB
}

func NewAdminRepository(db *sql.DB) ports.AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	query := `
		SELECT username, password_hash, created_at
		FROM admins
		WHERE username = $1
	`
	admin := &domain.Admin{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(&admin.Username, &admin.PasswordHash, &admin.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapStoreErr("failed to get admin", err)
	}
	return admin, nil
}

func (r *adminRepository) Create(ctx context.Context, admin *domain.Admin) error {
	query := `
		INSERT INTO admins (username, password_hash)
		VALUES ($1, $2)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query, admin.Username, admin.PasswordHash).Scan(&admin.CreatedAt)
	if err != nil {
		return wrapStoreErr("failed to create admin", err)
	}
	return nil
}
