package httptransport

import "time"

// ErrorResponse is the module's wire error shape.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ReportLowInventoryRequest struct {
	InventoryID int    `json:"inventory_id"`
	Message     string `json:"message,omitempty"`
}

type NotificationResponse struct {
	ID          int       `json:"id"`
	InventoryID int       `json:"inventory_id"`
	Message     string    `json:"message"`
	Resolved    bool      `json:"resolved"`
	CreatedAt   time.Time `json:"created_at"`
}

type LowStockEntryResponse struct {
	InventoryID   int    `json:"inventory_id"`
	InventoryName string `json:"inventory_name"`
	Quantity      int    `json:"quantity"`
	UnitID        int    `json:"unit_id"`
	UnitName      string `json:"unit_name"`
	UnitLocation  string `json:"unit_location"`
	EmployeeCount int64  `json:"employee_count"`
}
