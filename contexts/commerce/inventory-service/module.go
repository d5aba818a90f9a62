package inventoryservice

import (
	"log/slog"

	"github.com/shopspring/decimal"

	httpadapter "maxhelp/contexts/commerce/inventory-service/adapters/http"
	"maxhelp/contexts/commerce/inventory-service/adapters/memory"
	"maxhelp/contexts/commerce/inventory-service/application"
	"maxhelp/contexts/commerce/inventory-service/domain/entities"
	"maxhelp/contexts/commerce/inventory-service/ports"
)

// Module is the inventory-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Repo   ports.Repository
	Clock  ports.Clock
	Logger *slog.Logger
}

// NewModule wires catalog use-cases and the transport handler.
func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:   deps.Repo,
		Clock:  deps.Clock,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
		Service: service,
	}
}

// NewInMemoryModule builds a development/testing module seeded with a small
// catalog for unit 1. The Widget row starts close to empty so order and
// low-stock flows have something to trip over.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	store.SeedUnit(ports.Unit{ID: 1, Name: "Warehouse-A"})
	store.SeedItem(entities.Item{
		UnitID:    1,
		Name:      "Widget",
		Quantity:  5,
		Price:     decimal.NewFromFloat(2.0),
		CreatedAt: store.Now(),
	})
	store.SeedItem(entities.Item{
		UnitID:       1,
		Name:         "Bracket",
		Quantity:     40,
		ReorderLevel: 10,
		Price:        decimal.NewFromFloat(1.25),
		CreatedAt:    store.Now(),
	})

	module := NewModule(Dependencies{Repo: store, Clock: store, Logger: logger})
	module.Store = store
	return module
}
