package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"maxhelp/contexts/commerce/notification-service/domain/entities"
	domainerrors "maxhelp/contexts/commerce/notification-service/domain/errors"
	"maxhelp/contexts/commerce/notification-service/ports"
)

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

// AutoMigrate creates the notifications table when absent.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&notificationModel{})
}

func (r *Repository) FindItemByID(ctx context.Context, id int) (ports.ItemView, error) {
	var row struct {
		ID       int
		UnitID   int
		Name     string
		Quantity int
	}
	err := r.db.WithContext(ctx).Table("inventory_items").First(&row, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.ItemView{}, domainerrors.ErrItemNotFound
		}
		return ports.ItemView{}, err
	}
	return ports.ItemView{ID: row.ID, UnitID: row.UnitID, Name: row.Name, Quantity: row.Quantity}, nil
}

func (r *Repository) CreateNotification(ctx context.Context, notification entities.Notification) (entities.Notification, error) {
	row := notificationModel{
		InventoryID: notification.InventoryID,
		Message:     notification.Message,
		Resolved:    notification.Resolved,
		CreatedAt:   notification.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Notification{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListLowStock(ctx context.Context, threshold int) ([]ports.LowStockEntry, error) {
	var entries []ports.LowStockEntry
	err := r.db.WithContext(ctx).
		Table("inventory_items AS i").
		Select(`i.id AS inventory_id,
			i.name AS inventory_name,
			i.quantity,
			u.id AS unit_id,
			u.name AS unit_name,
			u.location AS unit_location,
			(SELECT COUNT(*) FROM users e WHERE e.role = 'employee' AND e.unit_id = u.id) AS employee_count`).
		Joins("JOIN business_units u ON u.id = i.unit_id").
		Where("i.quantity < ?", threshold).
		Order("i.id").
		Scan(&entries).
		Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

type notificationModel struct {
	ID          int       `gorm:"column:id;primaryKey"`
	InventoryID int       `gorm:"column:inventory_id;index;not null"`
	Message     string    `gorm:"column:message;size:255;not null"`
	Resolved    bool      `gorm:"column:resolved;not null;default:false"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (notificationModel) TableName() string { return "notifications" }

func (m notificationModel) toEntity() entities.Notification {
	return entities.Notification{
		ID:          m.ID,
		InventoryID: m.InventoryID,
		Message:     m.Message,
		Resolved:    m.Resolved,
		CreatedAt:   m.CreatedAt,
	}
}
