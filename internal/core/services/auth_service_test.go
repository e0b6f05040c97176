package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ballotbox/api/internal/core/domain"
)

var testSecret = []byte("test-secret")

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func parseClaims(t *testing.T, token string) jwt.MapClaims {
	t.Helper()
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return testSecret, nil
	})
	require.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	return claims
}

func TestLoginVoterSuccess(t *testing.T) {
	voterRepo := newFakeVoterRepo()
	require.NoError(t, voterRepo.Create(context.Background(), &domain.Voter{
		ID:           "V001",
		Name:         "Alice",
		PasswordHash: hashPassword(t, "secret1"),
		CreatedAt:    time.Now(),
	}))
	svc := NewAuthService(voterRepo, newFakeAdminRepo(), testSecret)

	voter, token, err := svc.LoginVoter(context.Background(), "V001", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "V001", voter.ID)
	assert.False(t, voter.HasVoted)

	claims := parseClaims(t, token)
	assert.Equal(t, "V001", claims["sub"])
	assert.Equal(t, domain.RoleVoter, claims["role"])
}

// Unknown id and wrong password must be indistinguishable to the caller.
func TestLoginVoterOpaqueFailures(t *testing.T) {
	voterRepo := newFakeVoterRepo()
	require.NoError(t, voterRepo.Create(context.Background(), &domain.Voter{
		ID:           "V001",
		Name:         "Alice",
		PasswordHash: hashPassword(t, "secret1"),
	}))
	svc := NewAuthService(voterRepo, newFakeAdminRepo(), testSecret)

	_, _, errUnknown := svc.LoginVoter(context.Background(), "nobody", "secret1")
	_, _, errMismatch := svc.LoginVoter(context.Background(), "V001", "wrong")

	assert.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errMismatch, domain.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errMismatch.Error())
}

func TestLoginAdminSuccess(t *testing.T) {
	adminRepo := newFakeAdminRepo()
	require.NoError(t, adminRepo.Create(context.Background(), &domain.Admin{
		Username:     "admin",
		PasswordHash: hashPassword(t, "adminpass"),
	}))
	svc := NewAuthService(newFakeVoterRepo(), adminRepo, testSecret)

	admin, token, err := svc.LoginAdmin(context.Background(), "admin", "adminpass")
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Username)

	claims := parseClaims(t, token)
	assert.Equal(t, "admin", claims["sub"])
	assert.Equal(t, domain.RoleAdmin, claims["role"])
}

func TestLoginAdminWrongPassword(t *testing.T) {
	adminRepo := newFakeAdminRepo()
	require.NoError(t, adminRepo.Create(context.Background(), &domain.Admin{
		Username:     "admin",
		PasswordHash: hashPassword(t, "adminpass"),
	}))
	svc := NewAuthService(newFakeVoterRepo(), adminRepo, testSecret)

	_, _, err := svc.LoginAdmin(context.Background(), "admin", "nope")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginVoterStoreError(t *testing.T) {
	voterRepo := newFakeVoterRepo()
	voterRepo.err = domain.ErrStoreUnavailable
	svc := NewAuthService(voterRepo, newFakeAdminRepo(), testSecret)

	_, _, err := svc.LoginVoter(context.Background(), "V001", "secret1")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
}
