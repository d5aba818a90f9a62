package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"maxhelp/contexts/identity-access/auth-service/domain/entities"
	domainerrors "maxhelp/contexts/identity-access/auth-service/domain/errors"
	"maxhelp/contexts/identity-access/auth-service/ports"
	"maxhelp/internal/shared/identity"
)

const minPasswordLength = 8

// Service carries every auth-service use-case behind explicit ports.
type Service struct {
	Users     ports.UserRepository
	Units     ports.UnitRepository
	Passwords ports.PasswordHasher
	Tokens    ports.TokenCodec
	Clock     ports.Clock
	TokenTTL  time.Duration
	Logger    *slog.Logger
}

// CreateEmployeeInput is the admin-facing account creation request.
type CreateEmployeeInput struct {
	Name     string
	Email    string
	Password string
	Gender   string
	Role     identity.Role
	UnitID   *int
}

// Login verifies email credentials and returns a signed bearer token.
func (s Service) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", domainerrors.ErrInvalidCredentials
	}

	user, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return "", domainerrors.ErrInvalidCredentials
		}
		return "", err
	}
	return s.issueToken(user, password)
}

// AdminLogin verifies form credentials keyed by user name (the OAuth2 form
// "username" field) and returns the same token shape as Login.
func (s Service) AdminLogin(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", domainerrors.ErrInvalidCredentials
	}

	user, err := s.Users.FindByName(ctx, username)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return "", domainerrors.ErrInvalidCredentials
		}
		return "", err
	}
	return s.issueToken(user, password)
}

func (s Service) issueToken(user entities.User, password string) (string, error) {
	logger := resolveLogger(s.Logger)
	if !s.Passwords.Verify(password, user.PasswordHash) {
		logger.Warn("login rejected",
			"event", "auth_login_rejected",
			"module", "identity-access/auth-service",
			"layer", "application",
			"user_id", user.ID,
		)
		return "", domainerrors.ErrInvalidCredentials
	}

	token, err := s.Tokens.Issue(ports.TokenClaims{
		Subject: user.Email,
		Role:    string(user.Role),
	}, s.now(), s.ttl())
	if err != nil {
		return "", err
	}

	logger.Info("login succeeded",
		"event", "auth_login_succeeded",
		"module", "identity-access/auth-service",
		"layer", "application",
		"user_id", user.ID,
		"role", user.Role,
	)
	return token, nil
}

// Authenticate turns a bearer token into a typed actor. The role and unit
// assignment come from the current store row, not the token payload.
func (s Service) Authenticate(ctx context.Context, token string) (identity.Actor, error) {
	claims, err := s.Tokens.Verify(token)
	if err != nil {
		return identity.Actor{}, domainerrors.ErrInvalidToken
	}

	user, err := s.Users.FindByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return identity.Actor{}, domainerrors.ErrInvalidToken
		}
		return identity.Actor{}, err
	}
	return user.Actor(), nil
}

// CreateBusinessUnit registers a new scoping boundary. Admin only.
func (s Service) CreateBusinessUnit(ctx context.Context, actor identity.Actor, name, location string) (entities.BusinessUnit, error) {
	if !identity.Allows(actor.Role, identity.ActionUnitManage) {
		return entities.BusinessUnit{}, domainerrors.ErrForbidden
	}
	name = strings.TrimSpace(name)
	location = strings.TrimSpace(location)
	if name == "" || location == "" {
		return entities.BusinessUnit{}, domainerrors.ErrInvalidRequest
	}

	unit, err := s.Units.CreateUnit(ctx, entities.BusinessUnit{
		Name:      name,
		Location:  location,
		CreatedAt: s.now(),
	})
	if err != nil {
		return entities.BusinessUnit{}, err
	}

	resolveLogger(s.Logger).Info("business unit created",
		"event", "auth_unit_created",
		"module", "identity-access/auth-service",
		"layer", "application",
		"unit_id", unit.ID,
		"unit_name", unit.Name,
	)
	return unit, nil
}

// ListEmployees returns every employee account. Admin only.
func (s Service) ListEmployees(ctx context.Context, actor identity.Actor) ([]entities.User, error) {
	if !identity.Allows(actor.Role, identity.ActionUserManage) {
		return nil, domainerrors.ErrForbidden
	}
	return s.Users.ListEmployees(ctx)
}

// CreateEmployee registers an account. Admin only. The created role is
// employee unless the input names customer explicitly.
func (s Service) CreateEmployee(ctx context.Context, actor identity.Actor, input CreateEmployeeInput) (entities.User, error) {
	if !identity.Allows(actor.Role, identity.ActionUserManage) {
		return entities.User{}, domainerrors.ErrForbidden
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	if input.Name == "" || input.Email == "" || len(input.Password) < minPasswordLength {
		return entities.User{}, domainerrors.ErrInvalidRequest
	}

	role := input.Role
	if role == "" {
		role = identity.RoleEmployee
	}
	if !identity.IsValidRole(role) {
		return entities.User{}, domainerrors.ErrInvalidRequest
	}

	if input.UnitID != nil {
		if _, err := s.Units.FindUnitByID(ctx, *input.UnitID); err != nil {
			return entities.User{}, err
		}
	}

	hash, err := s.Passwords.Hash(input.Password)
	if err != nil {
		return entities.User{}, err
	}

	user, err := s.Users.CreateUser(ctx, entities.User{
		Name:         input.Name,
		Email:        input.Email,
		Role:         role,
		Gender:       input.Gender,
		UnitID:       input.UnitID,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	})
	if err != nil {
		return entities.User{}, err
	}

	resolveLogger(s.Logger).Info("employee created",
		"event", "auth_employee_created",
		"module", "identity-access/auth-service",
		"layer", "application",
		"user_id", user.ID,
		"role", user.Role,
	)
	return user, nil
}

// UpdateEmployee applies a partial update to an employee account. Admin only.
func (s Service) UpdateEmployee(ctx context.Context, actor identity.Actor, employeeID int, update ports.EmployeeUpdate) (entities.User, error) {
	if !identity.Allows(actor.Role, identity.ActionUserManage) {
		return entities.User{}, domainerrors.ErrForbidden
	}

	employee, err := s.Users.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return entities.User{}, err
	}

	if update.Name != nil && strings.TrimSpace(*update.Name) != "" {
		employee.Name = strings.TrimSpace(*update.Name)
	}
	if update.Email != nil && strings.TrimSpace(*update.Email) != "" {
		employee.Email = strings.TrimSpace(*update.Email)
	}
	if update.Password != nil && *update.Password != "" {
		if len(*update.Password) < minPasswordLength {
			return entities.User{}, domainerrors.ErrInvalidRequest
		}
		hash, err := s.Passwords.Hash(*update.Password)
		if err != nil {
			return entities.User{}, err
		}
		employee.PasswordHash = hash
	}
	if update.Gender != nil {
		employee.Gender = *update.Gender
	}
	if update.UnitID != nil {
		if _, err := s.Units.FindUnitByID(ctx, *update.UnitID); err != nil {
			return entities.User{}, err
		}
		employee.UnitID = update.UnitID
	}

	return s.Users.UpdateUser(ctx, employee)
}

// DeleteEmployee removes an employee account. Admin only.
func (s Service) DeleteEmployee(ctx context.Context, actor identity.Actor, employeeID int) error {
	if !identity.Allows(actor.Role, identity.ActionUserManage) {
		return domainerrors.ErrForbidden
	}

	employee, err := s.Users.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return err
	}
	return s.Users.DeleteUser(ctx, employee.ID)
}

// AdminStats returns employee and business-unit counts. Admin only.
func (s Service) AdminStats(ctx context.Context, actor identity.Actor) (ports.AdminStats, error) {
	if !identity.Allows(actor.Role, identity.ActionUserManage) {
		return ports.AdminStats{}, domainerrors.ErrForbidden
	}

	employees, err := s.Users.CountEmployees(ctx)
	if err != nil {
		return ports.AdminStats{}, err
	}
	units, err := s.Units.CountUnits(ctx)
	if err != nil {
		return ports.AdminStats{}, err
	}
	return ports.AdminStats{
		TotalEmployees:     employees,
		TotalBusinessUnits: units,
	}, nil
}

// SeedAdmin creates the bootstrap admin account when the configured email is
// absent. A uniqueness race is suppressed as "already exists".
func (s Service) SeedAdmin(ctx context.Context, name, email, password string) (bool, error) {
	logger := resolveLogger(s.Logger)
	if _, err := s.Users.FindByEmail(ctx, email); err == nil {
		return false, nil
	} else if !errors.Is(err, domainerrors.ErrUserNotFound) {
		return false, err
	}

	hash, err := s.Passwords.Hash(password)
	if err != nil {
		return false, err
	}

	_, err = s.Users.CreateUser(ctx, entities.User{
		Name:         name,
		Email:        email,
		Role:         identity.RoleAdmin,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrEmailTaken) {
			logger.Info("bootstrap admin already exists",
				"event", "auth_admin_seed_skipped",
				"module", "identity-access/auth-service",
				"layer", "application",
			)
			return false, nil
		}
		return false, err
	}

	logger.Info("bootstrap admin created",
		"event", "auth_admin_seeded",
		"module", "identity-access/auth-service",
		"layer", "application",
	)
	return true, nil
}

func (s Service) ttl() time.Duration {
	if s.TokenTTL <= 0 {
		return time.Hour
	}
	return s.TokenTTL
}

func (s Service) now() time.Time {
	if s.Clock != nil {
		return s.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
