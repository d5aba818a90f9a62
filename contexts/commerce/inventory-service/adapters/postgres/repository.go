package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"maxhelp/contexts/commerce/inventory-service/domain/entities"
	domainerrors "maxhelp/contexts/commerce/inventory-service/domain/errors"
	"maxhelp/contexts/commerce/inventory-service/ports"
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

// AutoMigrate creates the inventory_items table when absent. The
// business_units table is owned by the auth adapter and only read here.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&itemModel{})
}

func (r *Repository) FindUnitByID(ctx context.Context, id int) (ports.Unit, error) {
	var row unitRow
	err := r.db.WithContext(ctx).Table("business_units").First(&row, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Unit{}, domainerrors.ErrUnitNotFound
		}
		return ports.Unit{}, err
	}
	return ports.Unit{ID: row.ID, Name: row.Name}, nil
}

func (r *Repository) FindUnitByName(ctx context.Context, name string) (ports.Unit, error) {
	var row unitRow
	err := r.db.WithContext(ctx).Table("business_units").Where("name = ?", name).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Unit{}, domainerrors.ErrUnitNotFound
		}
		return ports.Unit{}, err
	}
	return ports.Unit{ID: row.ID, Name: row.Name}, nil
}

func (r *Repository) FindItemByID(ctx context.Context, id int) (entities.Item, error) {
	var row itemModel
	err := r.db.WithContext(ctx).First(&row, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Item{}, domainerrors.ErrItemNotFound
		}
		return entities.Item{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListAllItems(ctx context.Context) ([]entities.Item, error) {
	var rows []itemModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return itemsFrom(rows), nil
}

func (r *Repository) ListItemsByUnit(ctx context.Context, unitID int) ([]entities.Item, error) {
	var rows []itemModel
	if err := r.db.WithContext(ctx).
		Where("unit_id = ?", unitID).
		Order("id").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	return itemsFrom(rows), nil
}

func (r *Repository) CreateItem(ctx context.Context, item entities.Item) (entities.Item, error) {
	row := itemModelFrom(item)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Item{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) UpdateItem(ctx context.Context, item entities.Item) (entities.Item, error) {
	row := itemModelFrom(item)
	if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
		return entities.Item{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) DeleteItem(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&itemModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrItemNotFound
	}
	return nil
}

func (r *Repository) CountItems(ctx context.Context, unitID *int) (int64, error) {
	query := r.db.WithContext(ctx).Model(&itemModel{})
	if unitID != nil {
		query = query.Where("unit_id = ?", *unitID)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

func (r *Repository) CountItemsBelow(ctx context.Context, unitID *int, threshold int) (int64, error) {
	query := r.db.WithContext(ctx).Model(&itemModel{}).Where("quantity < ?", threshold)
	if unitID != nil {
		query = query.Where("unit_id = ?", *unitID)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

type unitRow struct {
	ID   int
	Name string
}

type itemModel struct {
	ID           int             `gorm:"column:id;primaryKey"`
	UnitID       int             `gorm:"column:unit_id;index;not null"`
	Name         string          `gorm:"column:name;size:100;not null"`
	Description  string          `gorm:"column:description;size:255"`
	Quantity     int             `gorm:"column:quantity;not null"`
	ReorderLevel int             `gorm:"column:reorder_level;not null"`
	Price        decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null"`
	CreatedAt    time.Time       `gorm:"column:created_at"`
}

func (itemModel) TableName() string { return "inventory_items" }

func itemModelFrom(item entities.Item) itemModel {
	return itemModel{
		ID:           item.ID,
		UnitID:       item.UnitID,
		Name:         item.Name,
		Description:  item.Description,
		Quantity:     item.Quantity,
		ReorderLevel: item.ReorderLevel,
		Price:        item.Price,
		CreatedAt:    item.CreatedAt,
	}
}

func (m itemModel) toEntity() entities.Item {
	return entities.Item{
		ID:           m.ID,
		UnitID:       m.UnitID,
		Name:         m.Name,
		Description:  m.Description,
		Quantity:     m.Quantity,
		ReorderLevel: m.ReorderLevel,
		Price:        m.Price,
		CreatedAt:    m.CreatedAt,
	}
}

func itemsFrom(rows []itemModel) []entities.Item {
	items := make([]entities.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items
}
