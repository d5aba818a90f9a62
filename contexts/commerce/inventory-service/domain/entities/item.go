package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is one stocked product owned by exactly one business unit.
// Quantity never goes below zero; price is money, kept in decimal.
type Item struct {
	ID           int             `json:"id"`
	UnitID       int             `json:"unit_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Quantity     int             `json:"quantity"`
	ReorderLevel int             `json:"reorder_level"`
	Price        decimal.Decimal `json:"price"`
	CreatedAt    time.Time       `json:"created_at"`
}
