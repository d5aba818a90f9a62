package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// SalesSummary is total committed revenue and order volume.
type SalesSummary struct {
	TotalSales decimal.Decimal `json:"total_sales"`
	OrderCount int64           `json:"order_count"`
}

// ProductRevenue is revenue attributed to one product from order line
// snapshots, so later catalog price changes never rewrite history.
type ProductRevenue struct {
	InventoryID int             `json:"inventory_id"`
	ProductName string          `json:"product_name"`
	UnitsSold   int64           `json:"units_sold"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// CustomerSpend is one customer's aggregate order value.
type CustomerSpend struct {
	UserID       int             `json:"user_id"`
	CustomerName string          `json:"customer_name"`
	OrderCount   int64           `json:"order_count"`
	TotalSpent   decimal.Decimal `json:"total_spent"`
}

// MonthlySales is one year/month revenue bucket.
type MonthlySales struct {
	Year       int             `json:"year"`
	Month      int             `json:"month"`
	TotalSales decimal.Decimal `json:"total_sales"`
	OrderCount int64           `json:"order_count"`
}

// Repository is the read-side boundary. A nil unitID means the global
// (admin) scope; a non-nil one restricts every aggregate to that unit.
type Repository interface {
	SalesSummary(ctx context.Context, unitID *int) (SalesSummary, error)
	InventoryValuation(ctx context.Context, unitID *int) (decimal.Decimal, error)
	RevenueByProduct(ctx context.Context, unitID *int) ([]ProductRevenue, error)
	TopCustomers(ctx context.Context, unitID *int) ([]CustomerSpend, error)
	MonthlySales(ctx context.Context, unitID *int) ([]MonthlySales, error)
}
