package services

import (
	"context"
	"fmt"

	"github.com/ballotbox/api/internal/core/domain"
	"github.com/ballotbox/api/internal/core/ports"
)

type tallyService struct {
	tallyRepo ports.TallyRepository
}

func NewTallyService(tallyRepo ports.TallyRepository) ports.TallyService {
	return &tallyService{tallyRepo: tallyRepo}
}

func (s *tallyService) ComputeResults(ctx context.Context) ([]domain.CandidateTally, error) {
	tallies, err := s.tallyRepo.CandidateTallies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute results: %w", err)
	}
	return tallies, nil
}
