package httptransport

import (
	"time"

	"github.com/shopspring/decimal"
)

// ErrorResponse is the module's wire error shape.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type OrderLineRequest struct {
	InventoryName string `json:"inventory_name"`
	Quantity      int    `json:"quantity"`
}

type PlaceOrderRequest struct {
	UnitName  string             `json:"unit_name"`
	OrderType string             `json:"order_type"`
	Items     []OrderLineRequest `json:"items"`
}

type OrderItemResponse struct {
	ID          int             `json:"id"`
	InventoryID int             `json:"inventory_id"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

type OrderResponse struct {
	ID          int                 `json:"id"`
	UserID      int                 `json:"user_id"`
	UnitID      int                 `json:"unit_id"`
	OrderType   string              `json:"order_type"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
	CreatedAt   time.Time           `json:"created_at"`
	Items       []OrderItemResponse `json:"items"`
}
