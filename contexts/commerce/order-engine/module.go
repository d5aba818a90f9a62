package orderengine

import (
	"log/slog"

	"github.com/shopspring/decimal"

	httpadapter "maxhelp/contexts/commerce/order-engine/adapters/http"
	"maxhelp/contexts/commerce/order-engine/adapters/memory"
	"maxhelp/contexts/commerce/order-engine/application"
	"maxhelp/contexts/commerce/order-engine/ports"
)

// Module is the order-engine composition root exposed to runtime wiring.
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

// NewModule wires order use-cases and the transport handler.
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

// NewInMemoryModule builds a development/testing module seeded with the unit
// 1 catalog slice the in-memory inventory module also carries.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	store.SeedUnit(ports.Unit{ID: 1, Name: "Warehouse-A"})
	store.SeedStock(memory.StockItem{UnitID: 1, Name: "Widget", Quantity: 5, Price: decimal.NewFromFloat(2.0)})
	store.SeedStock(memory.StockItem{UnitID: 1, Name: "Bracket", Quantity: 40, Price: decimal.NewFromFloat(1.25)})

	module := NewModule(Dependencies{Repo: store, Clock: store, Logger: logger})
	module.Store = store
	return module
}
