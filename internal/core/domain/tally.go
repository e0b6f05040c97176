package domain

// CandidateTally is one row of the election results: every candidate appears
// exactly once, zero-vote candidates included. Results are ordered by
// VoteCount descending, ties broken by Name ascending.
type CandidateTally struct {
	CandidateID int64  `json:"candidate_id"`
	Name        string `json:"name"`
	Party       string `json:"party"`
	VoteCount   int64  `json:"vote_count"`
}
