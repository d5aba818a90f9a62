package application

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	domainerrors "maxhelp/contexts/commerce/reporting-service/domain/errors"
	"maxhelp/contexts/commerce/reporting-service/ports"
	"maxhelp/internal/shared/identity"
)

// Service serves the financial report reads. Every report is scoped the same
// way: admins see the whole business, employees their assigned unit, and an
// employee without an assignment gets empty results.
type Service struct {
	Repo   ports.Repository
	Logger *slog.Logger
}

func (s Service) SalesReport(ctx context.Context, actor identity.Actor) (ports.SalesSummary, error) {
	unitID, empty, err := s.scope(actor)
	if err != nil || empty {
		return ports.SalesSummary{TotalSales: decimal.Zero}, err
	}
	return s.Repo.SalesSummary(ctx, unitID)
}

func (s Service) InventoryValuation(ctx context.Context, actor identity.Actor) (decimal.Decimal, error) {
	unitID, empty, err := s.scope(actor)
	if err != nil || empty {
		return decimal.Zero, err
	}
	return s.Repo.InventoryValuation(ctx, unitID)
}

func (s Service) RevenueByProduct(ctx context.Context, actor identity.Actor) ([]ports.ProductRevenue, error) {
	unitID, empty, err := s.scope(actor)
	if err != nil || empty {
		return []ports.ProductRevenue{}, err
	}
	return s.Repo.RevenueByProduct(ctx, unitID)
}

func (s Service) TopCustomers(ctx context.Context, actor identity.Actor) ([]ports.CustomerSpend, error) {
	unitID, empty, err := s.scope(actor)
	if err != nil || empty {
		return []ports.CustomerSpend{}, err
	}
	return s.Repo.TopCustomers(ctx, unitID)
}

func (s Service) MonthlySales(ctx context.Context, actor identity.Actor) ([]ports.MonthlySales, error) {
	unitID, empty, err := s.scope(actor)
	if err != nil || empty {
		return []ports.MonthlySales{}, err
	}
	return s.Repo.MonthlySales(ctx, unitID)
}

func (s Service) scope(actor identity.Actor) (unitID *int, empty bool, err error) {
	if !identity.Allows(actor.Role, identity.ActionReportView) {
		return nil, false, domainerrors.ErrForbidden
	}
	if actor.Role == identity.RoleAdmin {
		return nil, false, nil
	}
	if !actor.HasUnit() {
		return nil, true, nil
	}
	return actor.UnitID, false, nil
}
