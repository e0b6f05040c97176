package domain

import "time"

// Voter ids are issued externally (registration cards, student ids) and are
// immutable once created. HasVoted mirrors the existence of this voter's row
// in the votes relation and is only ever flipped inside the same transaction
// that inserts or deletes that row.
type Voter struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	HasVoted     bool      `json:"has_voted"`
	CreatedAt    time.Time `json:"created_at"`
}
