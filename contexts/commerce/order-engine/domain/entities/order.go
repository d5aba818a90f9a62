package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is one committed purchase against a single business unit. Totals and
// line prices are snapshots taken at placement; rows never change afterwards.
type Order struct {
	ID          int             `json:"id"`
	UserID      int             `json:"user_id"`
	UnitID      int             `json:"unit_id"`
	OrderType   string          `json:"order_type"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
	Items       []OrderItem     `json:"items"`
}

// OrderItem is one line of an order, pinned to the price charged.
type OrderItem struct {
	ID          int             `json:"id"`
	OrderID     int             `json:"order_id"`
	InventoryID int             `json:"inventory_id"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}
