package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"maxhelp/contexts/commerce/order-engine/domain/entities"
	domainerrors "maxhelp/contexts/commerce/order-engine/domain/errors"
	"maxhelp/contexts/commerce/order-engine/ports"
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

// AutoMigrate creates the orders and order_items tables when absent. The
// inventory_items table is owned by the inventory adapter; this module only
// locks and updates its rows.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&orderModel{}, &orderItemModel{})
}

func (r *Repository) FindUnitByName(ctx context.Context, name string) (ports.Unit, error) {
	var row struct {
		ID   int
		Name string
	}
	err := r.db.WithContext(ctx).Table("business_units").Where("name = ?", name).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Unit{}, domainerrors.ErrUnitNotFound
		}
		return ports.Unit{}, err
	}
	return ports.Unit{ID: row.ID, Name: row.Name}, nil
}

// PlaceOrder runs the whole placement as one transaction. Each referenced
// inventory row is taken with SELECT ... FOR UPDATE before the stock check,
// so two concurrent placements on the same item serialize at the row lock
// and can never jointly overdraw.
func (r *Repository) PlaceOrder(ctx context.Context, input ports.PlaceOrderInput) (entities.Order, error) {
	var order entities.Order

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		resolved := map[string]stockRow{}
		requested := map[int]int{}
		for _, line := range input.Lines {
			key := strings.ToLower(line.InventoryName)
			item, ok := resolved[key]
			if !ok {
				var row stockRow
				err := tx.
					Clauses(clause.Locking{Strength: "UPDATE"}).
					Where("unit_id = ? AND name = ?", input.UnitID, line.InventoryName).
					First(&row).
					Error
				if err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return domainerrors.ErrItemNotFound
					}
					return err
				}
				resolved[key] = row
				item = row
			}
			requested[item.ID] += line.Quantity
		}
		for _, item := range resolved {
			if requested[item.ID] > item.Quantity {
				return domainerrors.ErrInsufficientStock
			}
		}

		orderRow := orderModel{
			UserID:      input.UserID,
			UnitID:      input.UnitID,
			OrderType:   input.OrderType,
			TotalAmount: decimal.Zero,
			CreatedAt:   input.PlacedAt,
		}
		for _, line := range input.Lines {
			item := resolved[strings.ToLower(line.InventoryName)]
			lineTotal := item.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
			orderRow.TotalAmount = orderRow.TotalAmount.Add(lineTotal)
		}
		if err := tx.Create(&orderRow).Error; err != nil {
			return err
		}

		for _, line := range input.Lines {
			item := resolved[strings.ToLower(line.InventoryName)]
			lineRow := orderItemModel{
				OrderID:     orderRow.ID,
				InventoryID: item.ID,
				Quantity:    line.Quantity,
				Price:       item.Price,
			}
			if err := tx.Create(&lineRow).Error; err != nil {
				return err
			}
			order.Items = append(order.Items, lineRow.toEntity())
		}

		for id, want := range requested {
			if err := tx.Model(&stockRow{}).
				Where("id = ?", id).
				Update("quantity", gorm.Expr("quantity - ?", want)).
				Error; err != nil {
				return err
			}
		}

		order.ID = orderRow.ID
		order.UserID = orderRow.UserID
		order.UnitID = orderRow.UnitID
		order.OrderType = orderRow.OrderType
		order.TotalAmount = orderRow.TotalAmount
		order.CreatedAt = orderRow.CreatedAt
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

func (r *Repository) ListAllOrders(ctx context.Context) ([]entities.Order, error) {
	var rows []orderModel
	if err := r.db.WithContext(ctx).Preload("Items").Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return ordersFrom(rows), nil
}

func (r *Repository) ListOrdersByUnit(ctx context.Context, unitID int) ([]entities.Order, error) {
	var rows []orderModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("unit_id = ?", unitID).
		Order("id").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	return ordersFrom(rows), nil
}

// stockRow is the order engine's view of the inventory table.
type stockRow struct {
	ID       int             `gorm:"column:id"`
	UnitID   int             `gorm:"column:unit_id"`
	Name     string          `gorm:"column:name"`
	Quantity int             `gorm:"column:quantity"`
	Price    decimal.Decimal `gorm:"column:price"`
}

func (stockRow) TableName() string { return "inventory_items" }

type orderModel struct {
	ID          int              `gorm:"column:id;primaryKey"`
	UserID      int              `gorm:"column:user_id;index;not null"`
	UnitID      int              `gorm:"column:unit_id;index;not null"`
	OrderType   string           `gorm:"column:order_type;size:50"`
	TotalAmount decimal.Decimal  `gorm:"column:total_amount;type:numeric(12,2);not null"`
	CreatedAt   time.Time        `gorm:"column:created_at"`
	Items       []orderItemModel `gorm:"foreignKey:OrderID"`
}

func (orderModel) TableName() string { return "orders" }

type orderItemModel struct {
	ID          int             `gorm:"column:id;primaryKey"`
	OrderID     int             `gorm:"column:order_id;index;not null"`
	InventoryID int             `gorm:"column:inventory_id;index;not null"`
	Quantity    int             `gorm:"column:quantity;not null"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null"`
}

func (orderItemModel) TableName() string { return "order_items" }

func (m orderItemModel) toEntity() entities.OrderItem {
	return entities.OrderItem{
		ID:          m.ID,
		OrderID:     m.OrderID,
		InventoryID: m.InventoryID,
		Quantity:    m.Quantity,
		Price:       m.Price,
	}
}

func (m orderModel) toEntity() entities.Order {
	order := entities.Order{
		ID:          m.ID,
		UserID:      m.UserID,
		UnitID:      m.UnitID,
		OrderType:   m.OrderType,
		TotalAmount: m.TotalAmount,
		CreatedAt:   m.CreatedAt,
	}
	for _, item := range m.Items {
		order.Items = append(order.Items, item.toEntity())
	}
	return order
}

func ordersFrom(rows []orderModel) []entities.Order {
	orders := make([]entities.Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, row.toEntity())
	}
	return orders
}
