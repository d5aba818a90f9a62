package entities

import (
	"time"

	"maxhelp/internal/shared/identity"
)

// User is an account holder: admin, employee, or customer. PasswordHash is
// never serialized.
type User struct {
	ID           int            `json:"id"`
	Name         string         `json:"name"`
	Email        string         `json:"email"`
	Role         identity.Role  `json:"role"`
	Gender       string         `json:"gender,omitempty"`
	UnitID       *int           `json:"unit_id"`
	PasswordHash string         `json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
}

// Actor converts the stored user into the request-scoped identity.
func (u User) Actor() identity.Actor {
	return identity.Actor{
		UserID: u.ID,
		Email:  u.Email,
		Role:   u.Role,
		UnitID: u.UnitID,
	}
}
