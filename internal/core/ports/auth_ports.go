package ports

import (
	"context"

	"github.com/ballotbox/api/internal/core/domain"
)

type AuthService interface {
	// LoginVoter verifies the credentials against the stored hash and
	// returns the voter together with a signed access token. Both an
	// unknown id and a wrong password yield domain.ErrInvalidCredentials.
	LoginVoter(ctx context.Context, id, password string) (*domain.Voter, string, error)
	// LoginAdmin mirrors LoginVoter for the admin credential role.
	LoginAdmin(ctx context.Context, username, password string) (*domain.Admin, string, error)
}
