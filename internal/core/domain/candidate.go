package domain

import "time"

type Candidate struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Party     string    `json:"party"`
	CreatedAt time.Time `json:"created_at"`
}
