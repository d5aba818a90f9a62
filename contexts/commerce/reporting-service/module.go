package reportingservice

import (
	"log/slog"

	httpadapter "maxhelp/contexts/commerce/reporting-service/adapters/http"
	"maxhelp/contexts/commerce/reporting-service/adapters/memory"
	"maxhelp/contexts/commerce/reporting-service/application"
	"maxhelp/contexts/commerce/reporting-service/ports"
)

// Module is the reporting-service composition root exposed to runtime
// wiring.
type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Repo   ports.Repository
	Logger *slog.Logger
}

// NewModule wires reporting use-cases and the transport handler.
func NewModule(deps Dependencies) Module {
	service := application.Service{Repo: deps.Repo, Logger: deps.Logger}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
		Service: service,
	}
}

// NewInMemoryModule builds a development/testing module over an empty read
// model; tests seed the records their aggregates need.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{Repo: store, Logger: logger})
	module.Store = store
	return module
}
