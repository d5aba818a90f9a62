package feedbackservice

import (
	"log/slog"

	httpadapter "maxhelp/contexts/community-experience/feedback-service/adapters/http"
	"maxhelp/contexts/community-experience/feedback-service/adapters/memory"
	"maxhelp/contexts/community-experience/feedback-service/application"
	"maxhelp/contexts/community-experience/feedback-service/ports"
)

// Module is the feedback-service composition root exposed to runtime wiring.
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

// NewModule wires feedback use-cases and the transport handler.
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

// NewInMemoryModule builds a development/testing module with the unit 1
// fixture the other in-memory modules share.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	store.SeedUnit(ports.Unit{ID: 1, Name: "Warehouse-A"})

	module := NewModule(Dependencies{Repo: store, Clock: store, Logger: logger})
	module.Store = store
	return module
}
