package entities

import "time"

// BusinessUnit is a named scoping boundary owning employees and inventory.
type BusinessUnit struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}
