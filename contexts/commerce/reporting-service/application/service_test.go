package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"maxhelp/contexts/commerce/reporting-service/adapters/memory"
	domainerrors "maxhelp/contexts/commerce/reporting-service/domain/errors"
	"maxhelp/internal/shared/identity"
)

func newTestService(t *testing.T) (Service, *memory.Store) {
	t.Helper()
	store := memory.NewStore()

	jan := time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 3, 15, 0, 0, 0, time.UTC)
	store.SeedCustomer(10, "Chika Eze")
	store.SeedCustomer(11, "Bola Ade")
	store.SeedOrder(memory.OrderRecord{ID: 1, UserID: 10, UnitID: 1, Total: decimal.NewFromFloat(6.0), CreatedAt: jan})
	store.SeedOrder(memory.OrderRecord{ID: 2, UserID: 11, UnitID: 1, Total: decimal.NewFromFloat(10.0), CreatedAt: feb})
	store.SeedOrder(memory.OrderRecord{ID: 3, UserID: 10, UnitID: 2, Total: decimal.NewFromFloat(9.0), CreatedAt: feb})
	store.SeedLine(memory.LineRecord{UnitID: 1, InventoryID: 1, ProductName: "Widget", Quantity: 3, Price: decimal.NewFromFloat(2.0)})
	store.SeedLine(memory.LineRecord{UnitID: 1, InventoryID: 2, ProductName: "Bracket", Quantity: 8, Price: decimal.NewFromFloat(1.25)})
	store.SeedLine(memory.LineRecord{UnitID: 2, InventoryID: 3, ProductName: "Gadget", Quantity: 3, Price: decimal.NewFromFloat(3.0)})
	store.SeedStock(memory.StockRecord{UnitID: 1, Quantity: 2, Price: decimal.NewFromFloat(2.0)})
	store.SeedStock(memory.StockRecord{UnitID: 2, Quantity: 10, Price: decimal.NewFromFloat(3.0)})

	return Service{Repo: store}, store
}

func admin() identity.Actor {
	return identity.Actor{UserID: 1, Role: identity.RoleAdmin}
}

func unitEmployee(unitID int) identity.Actor {
	return identity.Actor{UserID: 2, Role: identity.RoleEmployee, UnitID: &unitID}
}

func TestSalesReportScopes(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	global, err := svc.SalesReport(ctx, admin())
	if err != nil {
		t.Fatalf("admin sales report: %v", err)
	}
	if !global.TotalSales.Equal(decimal.NewFromFloat(25.0)) || global.OrderCount != 3 {
		t.Fatalf("admin report = %+v, want total 25 count 3", global)
	}

	scoped, err := svc.SalesReport(ctx, unitEmployee(1))
	if err != nil {
		t.Fatalf("employee sales report: %v", err)
	}
	if !scoped.TotalSales.Equal(decimal.NewFromFloat(16.0)) || scoped.OrderCount != 2 {
		t.Fatalf("employee report = %+v, want total 16 count 2", scoped)
	}

	empty, err := svc.SalesReport(ctx, identity.Actor{UserID: 3, Role: identity.RoleEmployee})
	if err != nil {
		t.Fatalf("unassigned employee sales report: %v", err)
	}
	if !empty.TotalSales.IsZero() || empty.OrderCount != 0 {
		t.Fatalf("unassigned report = %+v, want zeros", empty)
	}

	if _, err := svc.SalesReport(ctx, identity.Actor{UserID: 4, Role: identity.RoleCustomer}); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("customer report err = %v, want ErrForbidden", err)
	}
}

func TestInventoryValuation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	global, err := svc.InventoryValuation(ctx, admin())
	if err != nil {
		t.Fatalf("valuation: %v", err)
	}
	// 2*2.0 + 10*3.0
	if !global.Equal(decimal.NewFromFloat(34.0)) {
		t.Fatalf("valuation = %s, want 34", global)
	}

	scoped, err := svc.InventoryValuation(ctx, unitEmployee(2))
	if err != nil {
		t.Fatalf("scoped valuation: %v", err)
	}
	if !scoped.Equal(decimal.NewFromFloat(30.0)) {
		t.Fatalf("scoped valuation = %s, want 30", scoped)
	}
}

func TestRevenueByProductUsesSnapshots(t *testing.T) {
	svc, _ := newTestService(t)

	entries, err := svc.RevenueByProduct(context.Background(), unitEmployee(1))
	if err != nil {
		t.Fatalf("revenue by product: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	// Bracket: 8 * 1.25 = 10 outranks Widget: 3 * 2 = 6.
	if entries[0].ProductName != "Bracket" || !entries[0].Revenue.Equal(decimal.NewFromFloat(10.0)) {
		t.Fatalf("top product = %+v, want Bracket at 10", entries[0])
	}
	if entries[1].ProductName != "Widget" || entries[1].UnitsSold != 3 {
		t.Fatalf("second product = %+v, want Widget x3", entries[1])
	}
}

func TestTopCustomersDescending(t *testing.T) {
	svc, _ := newTestService(t)

	entries, err := svc.TopCustomers(context.Background(), admin())
	if err != nil {
		t.Fatalf("top customers: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	// Chika: 6 + 9 = 15 outranks Bola: 10.
	if entries[0].CustomerName != "Chika Eze" || !entries[0].TotalSpent.Equal(decimal.NewFromFloat(15.0)) || entries[0].OrderCount != 2 {
		t.Fatalf("top customer = %+v, want Chika at 15 over 2 orders", entries[0])
	}
}

func TestMonthlySalesBuckets(t *testing.T) {
	svc, _ := newTestService(t)

	buckets, err := svc.MonthlySales(context.Background(), admin())
	if err != nil {
		t.Fatalf("monthly sales: %v", err)
	}
	if len(buckets) != 2 {
		t.Fatalf("buckets = %d, want 2", len(buckets))
	}
	if buckets[0].Year != 2026 || buckets[0].Month != 1 || !buckets[0].TotalSales.Equal(decimal.NewFromFloat(6.0)) {
		t.Fatalf("january bucket = %+v", buckets[0])
	}
	if buckets[1].Month != 2 || buckets[1].OrderCount != 2 || !buckets[1].TotalSales.Equal(decimal.NewFromFloat(19.0)) {
		t.Fatalf("february bucket = %+v", buckets[1])
	}
}
