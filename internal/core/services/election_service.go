package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ballotbox/api/internal/core/domain"
	"github.com/ballotbox/api/internal/core/ports"
)

type electionService struct {
	voterRepo     ports.VoterRepository
	candidateRepo ports.CandidateRepository
	voteRepo      ports.VoteRepository
}

func NewElectionService(voterRepo ports.VoterRepository, candidateRepo ports.CandidateRepository, voteRepo ports.VoteRepository) ports.ElectionService {
	return &electionService{
		voterRepo:     voterRepo,
		candidateRepo: candidateRepo,
		voteRepo:      voteRepo,
	}
}

func (s *electionService) ListCandidates(ctx context.Context) ([]*domain.Candidate, error) {
	return s.candidateRepo.List(ctx)
}

func (s *electionService) AddCandidate(ctx context.Context, input ports.AddCandidateInput) (*domain.Candidate, error) {
	if input.Name == "" {
		return nil, errors.New("candidate name is required")
	}

	candidate := &domain.Candidate{
		Name:      input.Name,
		Party:     input.Party,
		CreatedAt: time.Now(),
	}
	if err := s.candidateRepo.Create(ctx, candidate); err != nil {
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}

	slog.Info("candidate added", "candidate_id", candidate.ID, "name", candidate.Name)

	return candidate, nil
}

func (s *electionService) RemoveCandidate(ctx context.Context, id int64) error {
	if err := s.candidateRepo.Remove(ctx, id); err != nil {
		return err
	}
	slog.Info("candidate removed", "candidate_id", id)
	return nil
}

func (s *electionService) ListVoters(ctx context.Context) ([]*domain.Voter, error) {
	return s.voterRepo.List(ctx)
}

func (s *electionService) AddVoter(ctx context.Context, input ports.AddVoterInput) (*domain.Voter, error) {
	if input.ID == "" {
		return nil, errors.New("voter id is required")
	}
	if input.Name == "" {
		return nil, errors.New("voter name is required")
	}
	if input.Password == "" {
		return nil, errors.New("voter password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	voter := &domain.Voter{
		ID:           input.ID,
		Name:         input.Name,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.voterRepo.Create(ctx, voter); err != nil {
		return nil, err
	}

	slog.Info("voter added", "voter_id", voter.ID)

	return voter, nil
}

func (s *electionService) RemoveVoter(ctx context.Context, id string) error {
	if err := s.voterRepo.Remove(ctx, id); err != nil {
		return err
	}
	slog.Info("voter removed", "voter_id", id)
	return nil
}

func (s *electionService) Reset(ctx context.Context) error {
	if err := s.voteRepo.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset election: %w", err)
	}
	slog.Info("election reset")
	return nil
}
