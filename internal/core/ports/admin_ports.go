package ports

import (
	"context"

	"github.com/ballotbox/api/internal/core/domain"
)

type AdminRepository interface {
	// GetByUsername returns (nil, nil) when no admin exists with the name.
	GetByUsername(ctx context.Context, username string) (*domain.Admin, error)
	Create(ctx context.Context, admin *domain.Admin) error
}
