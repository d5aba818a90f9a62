package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"maxhelp/contexts/commerce/order-engine/domain/entities"
	domainerrors "maxhelp/contexts/commerce/order-engine/domain/errors"
	"maxhelp/contexts/commerce/order-engine/ports"
)

// StockItem is the slice of the catalog the in-memory order flow needs.
type StockItem struct {
	ID       int
	UnitID   int
	Name     string
	Quantity int
	Price    decimal.Decimal
}

// Store is the in-memory order repository used by tests and local modules.
// The single mutex serializes placements, which is what gives the memory
// adapter its no-oversell guarantee.
type Store struct {
	mu sync.Mutex

	unitsByID  map[int]ports.Unit
	stockByID  map[int]StockItem
	ordersByID map[int]entities.Order

	nextStockID int
	nextOrderID int
	nextLineID  int
}

func NewStore() *Store {
	return &Store{
		unitsByID:   map[int]ports.Unit{},
		stockByID:   map[int]StockItem{},
		ordersByID:  map[int]entities.Order{},
		nextStockID: 1,
		nextOrderID: 1,
		nextLineID:  1,
	}
}

// Now implements ports.Clock.
func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

// SeedUnit registers a business unit orders may target.
func (s *Store) SeedUnit(unit ports.Unit) ports.Unit {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unitsByID[unit.ID] = unit
	return unit
}

// SeedStock inserts a stock row.
func (s *Store) SeedStock(item StockItem) StockItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item.ID == 0 {
		item.ID = s.nextStockID
	}
	if item.ID >= s.nextStockID {
		s.nextStockID = item.ID + 1
	}
	s.stockByID[item.ID] = item
	return item
}

// UpdateStockPrice changes a stock row's price. Tests use it to show that
// committed orders keep their snapshot totals.
func (s *Store) UpdateStockPrice(id int, price decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.stockByID[id]
	if !ok {
		return
	}
	item.Price = price
	s.stockByID[id] = item
}

// StockQuantity reports the remaining quantity for a stock row.
func (s *Store) StockQuantity(id int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stockByID[id].Quantity
}

func (s *Store) FindUnitByName(_ context.Context, name string) (ports.Unit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, unit := range s.unitsByID {
		if strings.EqualFold(unit.Name, name) {
			return unit, nil
		}
	}
	return ports.Unit{}, domainerrors.ErrUnitNotFound
}

func (s *Store) PlaceOrder(_ context.Context, input ports.PlaceOrderInput) (entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Resolve each distinct name once and count requested quantity
	// cumulatively across duplicate lines.
	resolved := map[string]StockItem{}
	requested := map[int]int{}
	for _, line := range input.Lines {
		key := strings.ToLower(line.InventoryName)
		item, ok := resolved[key]
		if !ok {
			found, err := s.findStock(input.UnitID, line.InventoryName)
			if err != nil {
				return entities.Order{}, err
			}
			resolved[key] = found
			item = found
		}
		requested[item.ID] += line.Quantity
	}
	for id, want := range requested {
		if want > s.stockByID[id].Quantity {
			return entities.Order{}, domainerrors.ErrInsufficientStock
		}
	}

	order := entities.Order{
		ID:          s.nextOrderID,
		UserID:      input.UserID,
		UnitID:      input.UnitID,
		OrderType:   input.OrderType,
		TotalAmount: decimal.Zero,
		CreatedAt:   input.PlacedAt,
	}
	s.nextOrderID++

	for _, line := range input.Lines {
		item := resolved[strings.ToLower(line.InventoryName)]
		lineTotal := item.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		order.TotalAmount = order.TotalAmount.Add(lineTotal)
		order.Items = append(order.Items, entities.OrderItem{
			ID:          s.nextLineID,
			OrderID:     order.ID,
			InventoryID: item.ID,
			Quantity:    line.Quantity,
			Price:       item.Price,
		})
		s.nextLineID++

		stock := s.stockByID[item.ID]
		stock.Quantity -= line.Quantity
		s.stockByID[item.ID] = stock
	}

	s.ordersByID[order.ID] = order
	return order, nil
}

func (s *Store) ListAllOrders(_ context.Context) ([]entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collect(func(entities.Order) bool { return true }), nil
}

func (s *Store) ListOrdersByUnit(_ context.Context, unitID int) ([]entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collect(func(order entities.Order) bool { return order.UnitID == unitID }), nil
}

func (s *Store) findStock(unitID int, name string) (StockItem, error) {
	for _, item := range s.stockByID {
		if item.UnitID == unitID && strings.EqualFold(item.Name, name) {
			return item, nil
		}
	}
	return StockItem{}, domainerrors.ErrItemNotFound
}

func (s *Store) collect(keep func(entities.Order) bool) []entities.Order {
	orders := make([]entities.Order, 0)
	for _, order := range s.ordersByID {
		if keep(order) {
			orders = append(orders, order)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders
}
