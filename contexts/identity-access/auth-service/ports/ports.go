package ports

import (
	"context"
	"time"

	"maxhelp/contexts/identity-access/auth-service/domain/entities"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// PasswordHasher is the opaque one-way hash/verify capability.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// TokenClaims is the verified content of a bearer token. Subject is the user
// email; Role is advisory (the store row is authoritative at request time).
type TokenClaims struct {
	Subject string
	Role    string
}

// TokenCodec signs and verifies bearer tokens. Verify fails closed: any
// malformed, tampered, or expired token yields ErrInvalidToken.
type TokenCodec interface {
	Issue(claims TokenClaims, issuedAt time.Time, ttl time.Duration) (string, error)
	Verify(token string) (TokenClaims, error)
}

// EmployeeUpdate carries optional field changes; nil means keep current.
type EmployeeUpdate struct {
	Name     *string
	Email    *string
	Password *string
	Gender   *string
	UnitID   *int
}

// AdminStats is the admin dashboard counters payload.
type AdminStats struct {
	TotalEmployees     int64
	TotalBusinessUnits int64
}

// UserRepository is the persistence boundary for accounts.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (entities.User, error)
	FindByName(ctx context.Context, name string) (entities.User, error)
	FindEmployeeByID(ctx context.Context, id int) (entities.User, error)
	ListEmployees(ctx context.Context) ([]entities.User, error)
	CreateUser(ctx context.Context, user entities.User) (entities.User, error)
	UpdateUser(ctx context.Context, user entities.User) (entities.User, error)
	DeleteUser(ctx context.Context, id int) error
	CountEmployees(ctx context.Context) (int64, error)
}

// UnitRepository is the persistence boundary for business units.
type UnitRepository interface {
	FindUnitByID(ctx context.Context, id int) (entities.BusinessUnit, error)
	CreateUnit(ctx context.Context, unit entities.BusinessUnit) (entities.BusinessUnit, error)
	CountUnits(ctx context.Context) (int64, error)
}
