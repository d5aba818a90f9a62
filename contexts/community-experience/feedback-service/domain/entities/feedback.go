package entities

import "time"

// Feedback is one customer comment about a business unit. Rating is
// optional; when present it sits in 1..5.
type Feedback struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	UnitID    int       `json:"unit_id"`
	Comment   string    `json:"comment"`
	Rating    *int      `json:"rating,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
