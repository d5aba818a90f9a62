package postgresadapter

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"maxhelp/contexts/commerce/reporting-service/ports"
)

// Repository serves the financial aggregates straight from SQL. It owns no
// tables; everything it reads is written by the other commerce adapters.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

func (r *Repository) SalesSummary(ctx context.Context, unitID *int) (ports.SalesSummary, error) {
	query := r.db.WithContext(ctx).
		Table("orders").
		Select("COALESCE(SUM(total_amount), 0) AS total_sales, COUNT(*) AS order_count")
	if unitID != nil {
		query = query.Where("unit_id = ?", *unitID)
	}
	var summary ports.SalesSummary
	if err := query.Scan(&summary).Error; err != nil {
		return ports.SalesSummary{}, err
	}
	return summary, nil
}

func (r *Repository) InventoryValuation(ctx context.Context, unitID *int) (decimal.Decimal, error) {
	query := r.db.WithContext(ctx).
		Table("inventory_items").
		Select("COALESCE(SUM(quantity * price), 0) AS total")
	if unitID != nil {
		query = query.Where("unit_id = ?", *unitID)
	}
	var row struct{ Total decimal.Decimal }
	if err := query.Scan(&row).Error; err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

func (r *Repository) RevenueByProduct(ctx context.Context, unitID *int) ([]ports.ProductRevenue, error) {
	query := r.db.WithContext(ctx).
		Table("order_items AS oi").
		Select(`oi.inventory_id,
			i.name AS product_name,
			COALESCE(SUM(oi.quantity), 0) AS units_sold,
			COALESCE(SUM(oi.quantity * oi.price), 0) AS revenue`).
		Joins("JOIN inventory_items i ON i.id = oi.inventory_id").
		Group("oi.inventory_id, i.name").
		Order("revenue DESC")
	if unitID != nil {
		query = query.Where("i.unit_id = ?", *unitID)
	}
	var entries []ports.ProductRevenue
	if err := query.Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *Repository) TopCustomers(ctx context.Context, unitID *int) ([]ports.CustomerSpend, error) {
	query := r.db.WithContext(ctx).
		Table("orders AS o").
		Select(`o.user_id,
			u.name AS customer_name,
			COUNT(*) AS order_count,
			COALESCE(SUM(o.total_amount), 0) AS total_spent`).
		Joins("JOIN users u ON u.id = o.user_id").
		Group("o.user_id, u.name").
		Order("total_spent DESC")
	if unitID != nil {
		query = query.Where("o.unit_id = ?", *unitID)
	}
	var entries []ports.CustomerSpend
	if err := query.Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *Repository) MonthlySales(ctx context.Context, unitID *int) ([]ports.MonthlySales, error) {
	query := r.db.WithContext(ctx).
		Table("orders").
		Select(`EXTRACT(YEAR FROM created_at)::int AS year,
			EXTRACT(MONTH FROM created_at)::int AS month,
			COALESCE(SUM(total_amount), 0) AS total_sales,
			COUNT(*) AS order_count`).
		Group("year, month").
		Order("year, month")
	if unitID != nil {
		query = query.Where("unit_id = ?", *unitID)
	}
	var entries []ports.MonthlySales
	if err := query.Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
