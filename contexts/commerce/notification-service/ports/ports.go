package ports

import (
	"context"
	"time"

	"maxhelp/contexts/commerce/notification-service/domain/entities"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// ItemView is the slice of the catalog low-stock reporting needs.
type ItemView struct {
	ID       int
	UnitID   int
	Name     string
	Quantity int
}

// LowStockEntry is one row of the admin review: a below-threshold item
// joined with its unit's name, location and staffing.
type LowStockEntry struct {
	InventoryID   int    `json:"inventory_id"`
	InventoryName string `json:"inventory_name"`
	Quantity      int    `json:"quantity"`
	UnitID        int    `json:"unit_id"`
	UnitName      string `json:"unit_name"`
	UnitLocation  string `json:"unit_location"`
	EmployeeCount int64  `json:"employee_count"`
}

// Repository is the notification persistence boundary. ListLowStock is a
// live read over current stock, not over stored notification rows.
type Repository interface {
	FindItemByID(ctx context.Context, id int) (ItemView, error)
	CreateNotification(ctx context.Context, notification entities.Notification) (entities.Notification, error)
	ListLowStock(ctx context.Context, threshold int) ([]LowStockEntry, error)
}
