package application

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"maxhelp/contexts/commerce/order-engine/adapters/memory"
	domainerrors "maxhelp/contexts/commerce/order-engine/domain/errors"
	"maxhelp/contexts/commerce/order-engine/ports"
	"maxhelp/internal/shared/identity"
)

func newTestService(t *testing.T) (Service, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	store.SeedUnit(ports.Unit{ID: 1, Name: "Warehouse-A"})
	store.SeedStock(memory.StockItem{ID: 1, UnitID: 1, Name: "Widget", Quantity: 5, Price: decimal.NewFromFloat(2.0)})
	return Service{Repo: store, Clock: store}, store
}

func customerActor() identity.Actor {
	return identity.Actor{UserID: 10, Role: identity.RoleCustomer}
}

func placeWidgets(svc Service, quantity int) (err error) {
	_, err = svc.PlaceOrder(context.Background(), customerActor(), PlaceOrderInput{
		UnitName:  "Warehouse-A",
		OrderType: "sale",
		Lines:     []ports.OrderLine{{InventoryName: "Widget", Quantity: quantity}},
	})
	return err
}

func TestPlaceOrderDeductsStockAndTotals(t *testing.T) {
	svc, store := newTestService(t)

	order, err := svc.PlaceOrder(context.Background(), customerActor(), PlaceOrderInput{
		UnitName:  "Warehouse-A",
		OrderType: "sale",
		Lines:     []ports.OrderLine{{InventoryName: "Widget", Quantity: 3}},
	})
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	if !order.TotalAmount.Equal(decimal.NewFromFloat(6.0)) {
		t.Fatalf("total = %s, want 6", order.TotalAmount)
	}
	if got := store.StockQuantity(1); got != 2 {
		t.Fatalf("remaining stock = %d, want 2", got)
	}
	if len(order.Items) != 1 || order.Items[0].Quantity != 3 {
		t.Fatalf("order items = %+v", order.Items)
	}

	// Only 2 left; a second order of 3 must fail without touching stock.
	if err := placeWidgets(svc, 3); !errors.Is(err, domainerrors.ErrInsufficientStock) {
		t.Fatalf("oversell err = %v, want ErrInsufficientStock", err)
	}
	if got := store.StockQuantity(1); got != 2 {
		t.Fatalf("stock after failed order = %d, want 2", got)
	}
}

func TestPlaceOrderAggregatesDuplicateLines(t *testing.T) {
	svc, store := newTestService(t)

	// 3 + 3 of the same item exceeds the 5 in stock even though each line
	// alone would fit.
	_, err := svc.PlaceOrder(context.Background(), customerActor(), PlaceOrderInput{
		UnitName:  "Warehouse-A",
		OrderType: "sale",
		Lines: []ports.OrderLine{
			{InventoryName: "Widget", Quantity: 3},
			{InventoryName: "Widget", Quantity: 3},
		},
	})
	if !errors.Is(err, domainerrors.ErrInsufficientStock) {
		t.Fatalf("duplicate-line err = %v, want ErrInsufficientStock", err)
	}
	if got := store.StockQuantity(1); got != 5 {
		t.Fatalf("stock after failed order = %d, want 5", got)
	}
}

func TestPlaceOrderValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.PlaceOrder(ctx, customerActor(), PlaceOrderInput{UnitName: "Warehouse-A"}); !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("empty lines err = %v, want ErrInvalidRequest", err)
	}
	if err := placeWidgets(svc, 0); !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("zero quantity err = %v, want ErrInvalidRequest", err)
	}
	if err := placeWidgets(svc, -1); !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("negative quantity err = %v, want ErrInvalidRequest", err)
	}

	if _, err := svc.PlaceOrder(ctx, customerActor(), PlaceOrderInput{
		UnitName: "Nowhere",
		Lines:    []ports.OrderLine{{InventoryName: "Widget", Quantity: 1}},
	}); !errors.Is(err, domainerrors.ErrUnitNotFound) {
		t.Fatalf("unknown unit err = %v, want ErrUnitNotFound", err)
	}
	if _, err := svc.PlaceOrder(ctx, customerActor(), PlaceOrderInput{
		UnitName: "Warehouse-A",
		Lines:    []ports.OrderLine{{InventoryName: "Ghost", Quantity: 1}},
	}); !errors.Is(err, domainerrors.ErrItemNotFound) {
		t.Fatalf("unknown item err = %v, want ErrItemNotFound", err)
	}

	admin := identity.Actor{UserID: 1, Role: identity.RoleAdmin}
	if _, err := svc.PlaceOrder(ctx, admin, PlaceOrderInput{
		UnitName: "Warehouse-A",
		Lines:    []ports.OrderLine{{InventoryName: "Widget", Quantity: 1}},
	}); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("admin place err = %v, want ErrForbidden", err)
	}
}

func TestCommittedOrderKeepsSnapshotTotal(t *testing.T) {
	svc, store := newTestService(t)

	order, err := svc.PlaceOrder(context.Background(), customerActor(), PlaceOrderInput{
		UnitName:  "Warehouse-A",
		OrderType: "sale",
		Lines:     []ports.OrderLine{{InventoryName: "Widget", Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("place order: %v", err)
	}

	store.UpdateStockPrice(1, decimal.NewFromFloat(99.0))

	listed, err := svc.ListOrders(context.Background(), identity.Actor{UserID: 1, Role: identity.RoleAdmin})
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("orders listed = %d, want 1", len(listed))
	}
	if !listed[0].TotalAmount.Equal(order.TotalAmount) {
		t.Fatalf("total changed after price update: %s != %s", listed[0].TotalAmount, order.TotalAmount)
	}
	if !listed[0].Items[0].Price.Equal(decimal.NewFromFloat(2.0)) {
		t.Fatalf("line price = %s, want snapshot 2", listed[0].Items[0].Price)
	}
}

func TestConcurrentPlacementNeverOversells(t *testing.T) {
	svc, store := newTestService(t)

	const workers = 10
	var wg sync.WaitGroup
	results := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- placeWidgets(svc, 1)
		}()
	}
	wg.Wait()
	close(results)

	var placed, rejected int
	for err := range results {
		switch {
		case err == nil:
			placed++
		case errors.Is(err, domainerrors.ErrInsufficientStock):
			rejected++
		default:
			t.Fatalf("unexpected err: %v", err)
		}
	}
	if placed != 5 || rejected != 5 {
		t.Fatalf("placed = %d rejected = %d, want 5/5", placed, rejected)
	}
	if got := store.StockQuantity(1); got != 0 {
		t.Fatalf("remaining stock = %d, want 0", got)
	}
}

func TestListOrdersScoping(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	store.SeedUnit(ports.Unit{ID: 2, Name: "Warehouse-B"})
	store.SeedStock(memory.StockItem{ID: 2, UnitID: 2, Name: "Gadget", Quantity: 10, Price: decimal.NewFromFloat(3.0)})

	if err := placeWidgets(svc, 1); err != nil {
		t.Fatalf("seed order: %v", err)
	}
	if _, err := svc.PlaceOrder(ctx, customerActor(), PlaceOrderInput{
		UnitName: "Warehouse-B",
		Lines:    []ports.OrderLine{{InventoryName: "Gadget", Quantity: 2}},
	}); err != nil {
		t.Fatalf("seed order B: %v", err)
	}

	admin := identity.Actor{UserID: 1, Role: identity.RoleAdmin}
	all, err := svc.ListOrders(ctx, admin)
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("admin list len = %d, want 2", len(all))
	}

	unitB := 2
	scoped, err := svc.ListOrders(ctx, identity.Actor{UserID: 5, Role: identity.RoleEmployee, UnitID: &unitB})
	if err != nil {
		t.Fatalf("employee list: %v", err)
	}
	if len(scoped) != 1 || scoped[0].UnitID != 2 {
		t.Fatalf("employee list = %+v, want only unit 2", scoped)
	}

	unassigned, err := svc.ListOrders(ctx, identity.Actor{UserID: 6, Role: identity.RoleEmployee})
	if err != nil {
		t.Fatalf("unassigned employee list: %v", err)
	}
	if len(unassigned) != 0 {
		t.Fatalf("unassigned employee list len = %d, want 0", len(unassigned))
	}

	if _, err := svc.ListOrders(ctx, customerActor()); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("customer list err = %v, want ErrForbidden", err)
	}
}
