package authservice

import (
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"maxhelp/contexts/identity-access/auth-service/adapters/credentials"
	httpadapter "maxhelp/contexts/identity-access/auth-service/adapters/http"
	"maxhelp/contexts/identity-access/auth-service/adapters/memory"
	"maxhelp/contexts/identity-access/auth-service/application"
	"maxhelp/contexts/identity-access/auth-service/domain/entities"
	"maxhelp/contexts/identity-access/auth-service/ports"
	"maxhelp/internal/shared/identity"
)

// Module is the auth-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Users     ports.UserRepository
	Units     ports.UnitRepository
	Passwords ports.PasswordHasher
	Tokens    ports.TokenCodec
	Clock     ports.Clock
	TokenTTL  time.Duration
	Logger    *slog.Logger
}

// NewModule wires auth use-cases and the transport handler.
func NewModule(deps Dependencies) Module {
	service := application.Service{
		Users:     deps.Users,
		Units:     deps.Units,
		Passwords: deps.Passwords,
		Tokens:    deps.Tokens,
		Clock:     deps.Clock,
		TokenTTL:  deps.TokenTTL,
		Logger:    deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
		Service: service,
	}
}

// NewInMemoryModule builds a development/testing module with an in-memory
// store seeded with one unit and one account per role. Fixture passwords are
// "<role>-password"; bcrypt runs at MinCost to keep tests fast.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	hasher := credentials.BcryptHasher{Cost: bcrypt.MinCost}

	unit := store.SeedUnit(entities.BusinessUnit{Name: "Warehouse-A", Location: "Downtown", CreatedAt: store.Now()})
	unitID := unit.ID
	seedUser(store, hasher, "Ada Obi", "admin@maxhelp.test", "admin-password", identity.RoleAdmin, nil)
	seedUser(store, hasher, "Efe Musa", "efe@maxhelp.test", "employee-password", identity.RoleEmployee, &unitID)
	seedUser(store, hasher, "Chika Eze", "chika@maxhelp.test", "customer-password", identity.RoleCustomer, nil)
	seedUser(store, hasher, "Noah Free", "noah@maxhelp.test", "employee-password", identity.RoleEmployee, nil)

	module := NewModule(Dependencies{
		Users:     store,
		Units:     store,
		Passwords: hasher,
		Tokens:    credentials.TokenCodec{Secret: []byte("local-dev-secret")},
		Clock:     store,
		TokenTTL:  time.Hour,
		Logger:    logger,
	})
	module.Store = store
	return module
}

func seedUser(store *memory.Store, hasher credentials.BcryptHasher, name, email, password string, role identity.Role, unitID *int) {
	hash, err := hasher.Hash(password)
	if err != nil {
		panic(err)
	}
	store.SeedUser(entities.User{
		Name:         name,
		Email:        email,
		Role:         role,
		UnitID:       unitID,
		PasswordHash: hash,
		CreatedAt:    store.Now(),
	})
}
