package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ballotbox/api/internal/core/domain"
	"github.com/ballotbox/api/internal/core/ports"
)

type ballotService struct {
	voterRepo     ports.VoterRepository
	candidateRepo ports.CandidateRepository
	voteRepo      ports.VoteRepository
}

func NewBallotService(voterRepo ports.VoterRepository, candidateRepo ports.CandidateRepository, voteRepo ports.VoteRepository) ports.BallotService {
	return &ballotService{
		voterRepo:     voterRepo,
		candidateRepo: candidateRepo,
		voteRepo:      voteRepo,
	}
}

// Cast validates both identities, then hands the commit to the store as a
// single atomic unit. The pre-checks only shape error messages: the votes
// uniqueness constraint inside CastVote is what actually guarantees at most
// one vote per voter under concurrent identical requests.
func (s *ballotService) Cast(ctx context.Context, input ports.CastVoteInput) (*domain.Vote, error) {
	voter, err := s.voterRepo.GetByID(ctx, input.VoterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get voter: %w", err)
	}
	if voter == nil {
		return nil, domain.ErrVoterNotFound
	}
	if voter.HasVoted {
		return nil, domain.ErrAlreadyVoted
	}

	candidate, err := s.candidateRepo.GetByID(ctx, input.CandidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	if candidate == nil {
		return nil, domain.ErrCandidateNotFound
	}

	vote := &domain.Vote{
		ID:          uuid.New(),
		VoterID:     input.VoterID,
		CandidateID: input.CandidateID,
		CastAt:      time.Now(),
	}

	if err := s.voteRepo.CastVote(ctx, vote); err != nil {
		if errors.Is(err, domain.ErrAlreadyVoted) {
			// Lost the race against another cast for the same voter.
			return nil, domain.ErrAlreadyVoted
		}
		return nil, err
	}

	slog.Info("vote committed", "voter_id", vote.VoterID, "candidate_id", vote.CandidateID)

	return vote, nil
}
