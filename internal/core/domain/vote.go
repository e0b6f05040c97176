package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vote is immutable once committed. VoterID is unique across the whole
// relation: the set of votes is a partial function from voters to candidates.
type Vote struct {
	ID          uuid.UUID `json:"id"`
	VoterID     string    `json:"voter_id"`
	CandidateID int64     `json:"candidate_id"`
	CastAt      time.Time `json:"cast_at"`
}
