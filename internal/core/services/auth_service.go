package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/ballotbox/api/internal/core/domain"
	"github.com/ballotbox/api/internal/core/ports"
)

const accessTokenTTL = 15 * time.Minute

type AuthService struct {
	voterRepo ports.VoterRepository
	adminRepo ports.AdminRepository
	jwtSecret []byte
}

func NewAuthService(voterRepo ports.VoterRepository, adminRepo ports.AdminRepository, jwtSecret []byte) *AuthService {
	return &AuthService{
		voterRepo: voterRepo,
		adminRepo: adminRepo,
		jwtSecret: jwtSecret,
	}
}

func (s *AuthService) LoginVoter(ctx context.Context, id, password string) (*domain.Voter, string, error) {
	voter, err := s.voterRepo.GetByID(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get voter: %w", err)
	}
	if voter == nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(voter.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to compare password: %w", err)
	}

	token, err := s.generateAccessToken(voter.ID, domain.RoleVoter)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate access token: %w", err)
	}

	return voter, token, nil
}

func (s *AuthService) LoginAdmin(ctx context.Context, username, password string) (*domain.Admin, string, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get admin: %w", err)
	}
	if admin == nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to compare password: %w", err)
	}

	token, err := s.generateAccessToken(admin.Username, domain.RoleAdmin)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate access token: %w", err)
	}

	return admin, token, nil
}

func (s *AuthService) generateAccessToken(subject, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"exp":  time.Now().Add(accessTokenTTL).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
