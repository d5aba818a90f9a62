package notificationservice

import (
	"log/slog"

	httpadapter "maxhelp/contexts/commerce/notification-service/adapters/http"
	"maxhelp/contexts/commerce/notification-service/adapters/memory"
	"maxhelp/contexts/commerce/notification-service/application"
	"maxhelp/contexts/commerce/notification-service/ports"
)

// Module is the notification-service composition root exposed to runtime
// wiring.
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

// NewModule wires notification use-cases and the transport handler.
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
// 1 catalog slice: Widget sits below the low-stock threshold, Bracket above.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	store.SeedUnit(memory.UnitInfo{ID: 1, Name: "Warehouse-A", Location: "Downtown", EmployeeCount: 1})
	store.SeedItem(ports.ItemView{ID: 1, UnitID: 1, Name: "Widget", Quantity: 5})
	store.SeedItem(ports.ItemView{ID: 2, UnitID: 1, Name: "Bracket", Quantity: 40})

	module := NewModule(Dependencies{Repo: store, Clock: store, Logger: logger})
	module.Store = store
	return module
}
