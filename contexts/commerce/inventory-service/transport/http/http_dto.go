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

type CreateItemRequest struct {
	UnitID       int             `json:"unit_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Quantity     int             `json:"quantity"`
	ReorderLevel int             `json:"reorder_level,omitempty"`
	Price        decimal.Decimal `json:"price"`
}

type UpdateItemRequest struct {
	Name         *string          `json:"name,omitempty"`
	Description  *string          `json:"description,omitempty"`
	Quantity     *int             `json:"quantity,omitempty"`
	ReorderLevel *int             `json:"reorder_level,omitempty"`
	Price        *decimal.Decimal `json:"price,omitempty"`
}

type ItemResponse struct {
	ID           int             `json:"id"`
	UnitID       int             `json:"unit_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Quantity     int             `json:"quantity"`
	ReorderLevel int             `json:"reorder_level"`
	Price        decimal.Decimal `json:"price"`
	CreatedAt    time.Time       `json:"created_at"`
}

type StatsResponse struct {
	TotalInventory    int64 `json:"total_inventory"`
	LowInventoryCount int64 `json:"low_inventory_count"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
