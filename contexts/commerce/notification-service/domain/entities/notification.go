package entities

import "time"

// Notification is one employee-filed low-stock report. Rows are append-only;
// the resolved flag is reserved for manual follow-up and never set here.
type Notification struct {
	ID          int       `json:"id"`
	InventoryID int       `json:"inventory_id"`
	Message     string    `json:"message"`
	Resolved    bool      `json:"resolved"`
	CreatedAt   time.Time `json:"created_at"`
}
