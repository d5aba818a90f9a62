package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"maxhelp/contexts/commerce/inventory-service/domain/entities"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// Unit is the minimal business-unit view the catalog needs.
type Unit struct {
	ID   int
	Name string
}

// ItemUpdate carries optional field changes; nil means keep current.
type ItemUpdate struct {
	Name         *string
	Description  *string
	Quantity     *int
	ReorderLevel *int
	Price        *decimal.Decimal
}

// Stats is the role-scoped counters payload.
type Stats struct {
	TotalInventory    int64
	LowInventoryCount int64
}

// Repository is the catalog persistence boundary. Count methods take a nil
// unitID for the global (admin) scope.
type Repository interface {
	FindUnitByID(ctx context.Context, id int) (Unit, error)
	FindUnitByName(ctx context.Context, name string) (Unit, error)

	FindItemByID(ctx context.Context, id int) (entities.Item, error)
	ListAllItems(ctx context.Context) ([]entities.Item, error)
	ListItemsByUnit(ctx context.Context, unitID int) ([]entities.Item, error)
	CreateItem(ctx context.Context, item entities.Item) (entities.Item, error)
	UpdateItem(ctx context.Context, item entities.Item) (entities.Item, error)
	DeleteItem(ctx context.Context, id int) error
	CountItems(ctx context.Context, unitID *int) (int64, error)
	CountItemsBelow(ctx context.Context, unitID *int, threshold int) (int64, error)
}
