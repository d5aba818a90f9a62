package httpadapter

import (
	"context"
	"log/slog"

	"maxhelp/contexts/commerce/reporting-service/application"
	"maxhelp/contexts/commerce/reporting-service/ports"
	httptransport "maxhelp/contexts/commerce/reporting-service/transport/http"
	"maxhelp/internal/shared/identity"
)

// Handler maps HTTP DTOs to reporting application use-cases. The grouped
// report rows cross the wire in their port shapes; only the scalar reports
// get dedicated DTOs.
type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) SalesReportHandler(ctx context.Context, actor identity.Actor) (httptransport.SalesReportResponse, error) {
	summary, err := h.Service.SalesReport(ctx, actor)
	if err != nil {
		return httptransport.SalesReportResponse{}, err
	}
	return httptransport.SalesReportResponse{
		TotalSales: summary.TotalSales,
		OrderCount: summary.OrderCount,
	}, nil
}

func (h Handler) InventoryValuationHandler(ctx context.Context, actor identity.Actor) (httptransport.InventoryValuationResponse, error) {
	total, err := h.Service.InventoryValuation(ctx, actor)
	if err != nil {
		return httptransport.InventoryValuationResponse{}, err
	}
	return httptransport.InventoryValuationResponse{TotalValuation: total}, nil
}

func (h Handler) RevenueByProductHandler(ctx context.Context, actor identity.Actor) ([]ports.ProductRevenue, error) {
	return h.Service.RevenueByProduct(ctx, actor)
}

func (h Handler) TopCustomersHandler(ctx context.Context, actor identity.Actor) ([]ports.CustomerSpend, error) {
	return h.Service.TopCustomers(ctx, actor)
}

func (h Handler) MonthlySalesHandler(ctx context.Context, actor identity.Actor) ([]ports.MonthlySales, error) {
	return h.Service.MonthlySales(ctx, actor)
}
