package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"maxhelp/contexts/commerce/reporting-service/ports"
)

// OrderRecord is one committed order as the read side sees it.
type OrderRecord struct {
	ID        int
	UserID    int
	UnitID    int
	Total     decimal.Decimal
	CreatedAt time.Time
}

// LineRecord is one order line with its price snapshot.
type LineRecord struct {
	UnitID      int
	InventoryID int
	ProductName string
	Quantity    int
	Price       decimal.Decimal
}

// StockRecord is one catalog row as valued today.
type StockRecord struct {
	UnitID   int
	Quantity int
	Price    decimal.Decimal
}

// Store is the in-memory reporting repository used by tests and local
// modules. It is a plain read model: tests seed the records the aggregates
// run over.
type Store struct {
	mu sync.RWMutex

	orders        []OrderRecord
	lines         []LineRecord
	stock         []StockRecord
	customerNames map[int]string
}

func NewStore() *Store {
	return &Store{customerNames: map[int]string{}}
}

func (s *Store) SeedOrder(order OrderRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, order)
}

func (s *Store) SeedLine(line LineRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, line)
}

func (s *Store) SeedStock(stock StockRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stock = append(s.stock, stock)
}

func (s *Store) SeedCustomer(id int, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customerNames[id] = name
}

func (s *Store) SalesSummary(_ context.Context, unitID *int) (ports.SalesSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	summary := ports.SalesSummary{TotalSales: decimal.Zero}
	for _, order := range s.orders {
		if unitID != nil && order.UnitID != *unitID {
			continue
		}
		summary.TotalSales = summary.TotalSales.Add(order.Total)
		summary.OrderCount++
	}
	return summary, nil
}

func (s *Store) InventoryValuation(_ context.Context, unitID *int) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := decimal.Zero
	for _, row := range s.stock {
		if unitID != nil && row.UnitID != *unitID {
			continue
		}
		total = total.Add(row.Price.Mul(decimal.NewFromInt(int64(row.Quantity))))
	}
	return total, nil
}

func (s *Store) RevenueByProduct(_ context.Context, unitID *int) ([]ports.ProductRevenue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	byProduct := map[int]*ports.ProductRevenue{}
	for _, line := range s.lines {
		if unitID != nil && line.UnitID != *unitID {
			continue
		}
		entry, ok := byProduct[line.InventoryID]
		if !ok {
			entry = &ports.ProductRevenue{
				InventoryID: line.InventoryID,
				ProductName: line.ProductName,
				Revenue:     decimal.Zero,
			}
			byProduct[line.InventoryID] = entry
		}
		entry.UnitsSold += int64(line.Quantity)
		entry.Revenue = entry.Revenue.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	entries := make([]ports.ProductRevenue, 0, len(byProduct))
	for _, entry := range byProduct {
		entries = append(entries, *entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Revenue.GreaterThan(entries[j].Revenue) })
	return entries, nil
}

func (s *Store) TopCustomers(_ context.Context, unitID *int) ([]ports.CustomerSpend, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	byCustomer := map[int]*ports.CustomerSpend{}
	for _, order := range s.orders {
		if unitID != nil && order.UnitID != *unitID {
			continue
		}
		entry, ok := byCustomer[order.UserID]
		if !ok {
			entry = &ports.CustomerSpend{
				UserID:       order.UserID,
				CustomerName: s.customerNames[order.UserID],
				TotalSpent:   decimal.Zero,
			}
			byCustomer[order.UserID] = entry
		}
		entry.OrderCount++
		entry.TotalSpent = entry.TotalSpent.Add(order.Total)
	}
	entries := make([]ports.CustomerSpend, 0, len(byCustomer))
	for _, entry := range byCustomer {
		entries = append(entries, *entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].TotalSpent.GreaterThan(entries[j].TotalSpent) })
	return entries, nil
}

func (s *Store) MonthlySales(_ context.Context, unitID *int) ([]ports.MonthlySales, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	type bucket struct{ year, month int }
	byMonth := map[bucket]*ports.MonthlySales{}
	for _, order := range s.orders {
		if unitID != nil && order.UnitID != *unitID {
			continue
		}
		key := bucket{order.CreatedAt.Year(), int(order.CreatedAt.Month())}
		entry, ok := byMonth[key]
		if !ok {
			entry = &ports.MonthlySales{Year: key.year, Month: key.month, TotalSales: decimal.Zero}
			byMonth[key] = entry
		}
		entry.OrderCount++
		entry.TotalSales = entry.TotalSales.Add(order.Total)
	}
	entries := make([]ports.MonthlySales, 0, len(byMonth))
	for _, entry := range byMonth {
		entries = append(entries, *entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Year != entries[j].Year {
			return entries[i].Year < entries[j].Year
		}
		return entries[i].Month < entries[j].Month
	})
	return entries, nil
}
