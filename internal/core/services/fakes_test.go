package services

import (
	"context"
	"sync"

	"github.com/ballotbox/api/internal/core/domain"
)

// In-memory stand-ins for the postgres repositories. fakeVoteRepo guards its
// map with a mutex so the concurrent cast tests exercise the same
// exactly-one-commit contract the real store provides via its uniqueness
// constraint.

type fakeVoterRepo struct {
	mu     sync.Mutex
	voters map[string]*domain.Voter
	err    error
}

func newFakeVoterRepo() *fakeVoterRepo {
	return &fakeVoterRepo{voters: make(map[string]*domain.Voter)}
}

func (r *fakeVoterRepo) GetByID(_ context.Context, id string) (*domain.Voter, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	voter, ok := r.voters[id]
	if !ok {
		return nil, nil
	}
	copied := *voter
	return &copied, nil
}

func (r *fakeVoterRepo) List(_ context.Context) ([]*domain.Voter, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var voters []*domain.Voter
	for _, v := range r.voters {
		copied := *v
		voters = append(voters, &copied)
	}
	return voters, nil
}

func (r *fakeVoterRepo) Create(_ context.Context, voter *domain.Voter) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.voters[voter.ID]; ok {
		return domain.ErrDuplicateVoter
	}
	copied := *voter
	r.voters[voter.ID] = &copied
	return nil
}

func (r *fakeVoterRepo) Remove(_ context.Context, id string) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.voters[id]; !ok {
		return domain.ErrVoterNotFound
	}
	delete(r.voters, id)
	return nil
}

type fakeCandidateRepo struct {
	mu         sync.Mutex
	candidates map[int64]*domain.Candidate
	nextID     int64
	err        error
}

func newFakeCandidateRepo() *fakeCandidateRepo {
	return &fakeCandidateRepo{candidates: make(map[int64]*domain.Candidate)}
}

func (r *fakeCandidateRepo) GetByID(_ context.Context, id int64) (*domain.Candidate, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	candidate, ok := r.candidates[id]
	if !ok {
		return nil, nil
	}
	copied := *candidate
	return &copied, nil
}

func (r *fakeCandidateRepo) List(_ context.Context) ([]*domain.Candidate, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var candidates []*domain.Candidate
	for _, c := range r.candidates {
		copied := *c
		candidates = append(candidates, &copied)
	}
	return candidates, nil
}

func (r *fakeCandidateRepo) Create(_ context.Context, candidate *domain.Candidate) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	candidate.ID = r.nextID
	copied := *candidate
	r.candidates[candidate.ID] = &copied
	return nil
}

func (r *fakeCandidateRepo) Remove(_ context.Context, id int64) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.candidates[id]; !ok {
		return domain.ErrCandidateNotFound
	}
	delete(r.candidates, id)
	return nil
}

type fakeVoteRepo struct {
	mu        sync.Mutex
	votes     map[string]*domain.Vote
	voterRepo *fakeVoterRepo
	err       error
}

func newFakeVoteRepo(voterRepo *fakeVoterRepo) *fakeVoteRepo {
	return &fakeVoteRepo{votes: make(map[string]*domain.Vote), voterRepo: voterRepo}
}

func (r *fakeVoteRepo) CastVote(_ context.Context, vote *domain.Vote) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.votes[vote.VoterID]; ok {
		return domain.ErrAlreadyVoted
	}
	copied := *vote
	r.votes[vote.VoterID] = &copied

	r.voterRepo.mu.Lock()
	defer r.voterRepo.mu.Unlock()
	if voter, ok := r.voterRepo.voters[vote.VoterID]; ok {
		voter.HasVoted = true
	}
	return nil
}

func (r *fakeVoteRepo) Reset(_ context.Context) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.votes = make(map[string]*domain.Vote)

	r.voterRepo.mu.Lock()
	defer r.voterRepo.mu.Unlock()
	for _, voter := range r.voterRepo.voters {
		voter.HasVoted = false
	}
	return nil
}

type fakeAdminRepo struct {
	admins map[string]*domain.Admin
	err    error
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[string]*domain.Admin)}
}

func (r *fakeAdminRepo) GetByUsername(_ context.Context, username string) (*domain.Admin, error) {
	if r.err != nil {
		return nil, r.err
	}
	admin, ok := r.admins[username]
	if !ok {
		return nil, nil
	}
	copied := *admin
	return &copied, nil
}

func (r *fakeAdminRepo) Create(_ context.Context, admin *domain.Admin) error {
	if r.err != nil {
		return r.err
	}
	copied := *admin
	r.admins[admin.Username] = &copied
	return nil
}

type fakeTallyRepo struct {
	tallies []domain.CandidateTally
	err     error
}

func (r *fakeTallyRepo) CandidateTallies(_ context.Context) ([]domain.CandidateTally, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.tallies, nil
}
