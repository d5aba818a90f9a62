package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"maxhelp/contexts/identity-access/auth-service/adapters/credentials"
	"maxhelp/contexts/identity-access/auth-service/adapters/memory"
	"maxhelp/contexts/identity-access/auth-service/domain/entities"
	domainerrors "maxhelp/contexts/identity-access/auth-service/domain/errors"
	"maxhelp/contexts/identity-access/auth-service/ports"
	"maxhelp/internal/shared/identity"
)

func newTestService(t *testing.T) (Service, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	hasher := credentials.BcryptHasher{Cost: bcrypt.MinCost}

	hash, err := hasher.Hash("admin-password")
	if err != nil {
		t.Fatalf("hash fixture password: %v", err)
	}
	store.SeedUnit(entities.BusinessUnit{Name: "Warehouse-A", Location: "Downtown"})
	store.SeedUser(entities.User{
		Name:         "Ada Obi",
		Email:        "admin@maxhelp.test",
		Role:         identity.RoleAdmin,
		PasswordHash: hash,
	})

	return Service{
		Users:     store,
		Units:     store,
		Passwords: hasher,
		Tokens:    credentials.TokenCodec{Secret: []byte("unit-test-secret")},
		Clock:     store,
		TokenTTL:  time.Hour,
	}, store
}

func adminActor() identity.Actor {
	return identity.Actor{UserID: 1, Email: "admin@maxhelp.test", Role: identity.RoleAdmin}
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	service, _ := newTestService(t)

	token, err := service.Login(context.Background(), "admin@maxhelp.test", "admin-password")
	if err != nil {
		t.Fatalf("login returned error: %v", err)
	}

	actor, err := service.Authenticate(context.Background(), token)
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if actor.Email != "admin@maxhelp.test" || actor.Role != identity.RoleAdmin {
		t.Fatalf("unexpected actor %+v", actor)
	}
}

func TestLoginWrongPasswordIsUnauthenticated(t *testing.T) {
	service, _ := newTestService(t)

	if _, err := service.Login(context.Background(), "admin@maxhelp.test", "nope"); !errors.Is(err, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAdminLoginMatchesOnNameAndRejectsWrongPassword(t *testing.T) {
	service, _ := newTestService(t)

	if _, err := service.AdminLogin(context.Background(), "Ada Obi", "admin-password"); err != nil {
		t.Fatalf("admin login returned error: %v", err)
	}
	if _, err := service.AdminLogin(context.Background(), "Ada Obi", "wrong"); !errors.Is(err, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticateRejectsTamperedToken(t *testing.T) {
	service, _ := newTestService(t)

	if _, err := service.Authenticate(context.Background(), "not-a-token"); !errors.Is(err, domainerrors.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestCreateEmployeeValidatesUnitAndEmail(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	unitID := 1
	employee, err := service.CreateEmployee(ctx, adminActor(), CreateEmployeeInput{
		Name:     "Efe Musa",
		Email:    "efe@maxhelp.test",
		Password: "employee-password",
		UnitID:   &unitID,
	})
	if err != nil {
		t.Fatalf("create employee returned error: %v", err)
	}
	if employee.Role != identity.RoleEmployee {
		t.Fatalf("expected employee role, got %s", employee.Role)
	}

	_, err = service.CreateEmployee(ctx, adminActor(), CreateEmployeeInput{
		Name:     "Duplicate",
		Email:    "efe@maxhelp.test",
		Password: "employee-password",
	})
	if !errors.Is(err, domainerrors.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	missingUnit := 99
	_, err = service.CreateEmployee(ctx, adminActor(), CreateEmployeeInput{
		Name:     "Ghost",
		Email:    "ghost@maxhelp.test",
		Password: "employee-password",
		UnitID:   &missingUnit,
	})
	if !errors.Is(err, domainerrors.ErrUnitNotFound) {
		t.Fatalf("expected ErrUnitNotFound, got %v", err)
	}
}

func TestEmployeeManagementIsAdminOnly(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()
	unit := 1
	employee := identity.Actor{UserID: 2, Role: identity.RoleEmployee, UnitID: &unit}

	if _, err := service.ListEmployees(ctx, employee); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for list, got %v", err)
	}
	if _, err := service.CreateEmployee(ctx, employee, CreateEmployeeInput{Name: "X", Email: "x@maxhelp.test", Password: "employee-password"}); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for create, got %v", err)
	}
	if err := service.DeleteEmployee(ctx, employee, 1); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for delete, got %v", err)
	}
	if _, err := service.AdminStats(ctx, employee); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for stats, got %v", err)
	}
}

func TestUpdateEmployeeRejectsDuplicateEmail(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	first, err := service.CreateEmployee(ctx, adminActor(), CreateEmployeeInput{
		Name: "Efe Musa", Email: "efe@maxhelp.test", Password: "employee-password",
	})
	if err != nil {
		t.Fatalf("create first employee: %v", err)
	}
	if _, err := service.CreateEmployee(ctx, adminActor(), CreateEmployeeInput{
		Name: "Bola Ade", Email: "bola@maxhelp.test", Password: "employee-password",
	}); err != nil {
		t.Fatalf("create second employee: %v", err)
	}

	taken := "bola@maxhelp.test"
	_, err = service.UpdateEmployee(ctx, adminActor(), first.ID, ports.EmployeeUpdate{Email: &taken})
	if !errors.Is(err, domainerrors.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestSeedAdminIsIdempotent(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	created, err := service.SeedAdmin(ctx, "Root", "root@maxhelp.test", "root-password")
	if err != nil || !created {
		t.Fatalf("expected first seed to create, got created=%v err=%v", created, err)
	}
	created, err = service.SeedAdmin(ctx, "Root", "root@maxhelp.test", "root-password")
	if err != nil || created {
		t.Fatalf("expected second seed to be suppressed, got created=%v err=%v", created, err)
	}
}
