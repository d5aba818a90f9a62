package ports

import (
	"context"
	"time"

	"maxhelp/contexts/commerce/order-engine/domain/entities"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// Unit is the minimal business-unit view the order flow needs.
type Unit struct {
	ID   int
	Name string
}

// OrderLine is one requested line, keyed by item name within the unit.
type OrderLine struct {
	InventoryName string
	Quantity      int
}

// PlaceOrderInput is the validated request handed to the store transaction.
// Lines may repeat an item name; the store counts them cumulatively against
// available stock.
type PlaceOrderInput struct {
	UserID    int
	UnitID    int
	OrderType string
	Lines     []OrderLine
	PlacedAt  time.Time
}

// Repository is the order persistence boundary. PlaceOrder runs as a single
// transaction: every stock check, deduction and insert commits together or
// not at all.
type Repository interface {
	FindUnitByName(ctx context.Context, name string) (Unit, error)
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (entities.Order, error)
	ListAllOrders(ctx context.Context) ([]entities.Order, error)
	ListOrdersByUnit(ctx context.Context, unitID int) ([]entities.Order, error)
}
