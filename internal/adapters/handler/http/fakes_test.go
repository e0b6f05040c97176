package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/ballotbox/api/internal/core/domain"
	"github.com/ballotbox/api/internal/core/ports"
)

var testSecret = []byte("handler-test-secret")

type fakeAuthService struct {
	voter *domain.Voter
	admin *domain.Admin
	token string
	err   error
}

func (s *fakeAuthService) LoginVoter(_ context.Context, _, _ string) (*domain.Voter, string, error) {
	if s.err != nil {
		return nil, "", s.err
	}
	return s.voter, s.token, nil
}

func (s *fakeAuthService) LoginAdmin(_ context.Context, _, _ string) (*domain.Admin, string, error) {
	if s.err != nil {
		return nil, "", s.err
	}
	return s.admin, s.token, nil
}

type fakeBallotService struct {
	vote      *domain.Vote
	err       error
	lastInput ports.CastVoteInput
}

func (s *fakeBallotService) Cast(_ context.Context, input ports.CastVoteInput) (*domain.Vote, error) {
	s.lastInput = input
	if s.err != nil {
		return nil, s.err
	}
	return s.vote, nil
}

type fakeElectionService struct {
	candidates []*domain.Candidate
	voters     []*domain.Voter
	addedVoter *domain.Voter
	err        error
}

func (s *fakeElectionService) ListCandidates(_ context.Context) ([]*domain.Candidate, error) {
	return s.candidates, s.err
}

func (s *fakeElectionService) AddCandidate(_ context.Context, input ports.AddCandidateInput) (*domain.Candidate, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Candidate{ID: 1, Name: input.Name, Party: input.Party, CreatedAt: time.Now()}, nil
}

func (s *fakeElectionService) RemoveCandidate(_ context.Context, _ int64) error {
	return s.err
}

func (s *fakeElectionService) ListVoters(_ context.Context) ([]*domain.Voter, error) {
	return s.voters, s.err
}

func (s *fakeElectionService) AddVoter(_ context.Context, input ports.AddVoterInput) (*domain.Voter, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.addedVoter != nil {
		return s.addedVoter, nil
	}
	return &domain.Voter{ID: input.ID, Name: input.Name, CreatedAt: time.Now()}, nil
}

func (s *fakeElectionService) RemoveVoter(_ context.Context, _ string) error {
	return s.err
}

func (s *fakeElectionService) Reset(_ context.Context) error {
	return s.err
}

type fakeTallyService struct {
	results []domain.CandidateTally
	err     error
}

func (s *fakeTallyService) ComputeResults(_ context.Context) ([]domain.CandidateTally, error) {
	return s.results, s.err
}

type routerFixture struct {
	auth     *fakeAuthService
	ballot   *fakeBallotService
	election *fakeElectionService
	tally    *fakeTallyService
	handler  http.Handler
}

func newRouterFixture() *routerFixture {
	f := &routerFixture{
		auth:     &fakeAuthService{},
		ballot:   &fakeBallotService{},
		election: &fakeElectionService{},
		tally:    &fakeTallyService{},
	}
	f.handler = NewHandler(
		NewAuthHandler(f.auth),
		NewVoteHandler(f.ballot),
		NewResultsHandler(f.election, f.tally),
		NewAdminHandler(f.election),
		testSecret,
		"",
	)
	return f
}

func signToken(t *testing.T, subject, role string, secret []byte) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"exp":  time.Now().Add(15 * time.Minute).Unix(),
		"iat":  time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}
