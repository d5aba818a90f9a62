package application

import (
	"context"
	"errors"
	"testing"

	"maxhelp/contexts/commerce/notification-service/adapters/memory"
	domainerrors "maxhelp/contexts/commerce/notification-service/domain/errors"
	"maxhelp/contexts/commerce/notification-service/ports"
	"maxhelp/internal/shared/identity"
)

func newTestService(t *testing.T) (Service, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	store.SeedUnit(memory.UnitInfo{ID: 1, Name: "Warehouse-A", Location: "Downtown", EmployeeCount: 2})
	store.SeedUnit(memory.UnitInfo{ID: 2, Name: "Warehouse-B", Location: "Uptown", EmployeeCount: 1})
	store.SeedItem(ports.ItemView{ID: 1, UnitID: 1, Name: "Widget", Quantity: 5})
	store.SeedItem(ports.ItemView{ID: 2, UnitID: 1, Name: "Bracket", Quantity: 12})
	store.SeedItem(ports.ItemView{ID: 3, UnitID: 2, Name: "Gadget", Quantity: 3})
	return Service{Repo: store, Clock: store}, store
}

func unitEmployee(unitID int) identity.Actor {
	return identity.Actor{UserID: 2, Role: identity.RoleEmployee, UnitID: &unitID}
}

func TestReportLowInventoryCreatesRow(t *testing.T) {
	svc, store := newTestService(t)

	notification, err := svc.ReportLowInventory(context.Background(), unitEmployee(1), 1, "")
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if notification.ID == 0 || notification.InventoryID != 1 {
		t.Fatalf("notification = %+v", notification)
	}
	if notification.Message == "" {
		t.Fatal("expected a synthesized message")
	}
	if notification.Resolved {
		t.Fatal("new notification must start unresolved")
	}
	if store.NotificationCount() != 1 {
		t.Fatalf("stored rows = %d, want 1", store.NotificationCount())
	}
}

func TestReportAtThresholdRejectedWithoutRow(t *testing.T) {
	svc, store := newTestService(t)

	// Bracket has 12 units, above the threshold of 10.
	_, err := svc.ReportLowInventory(context.Background(), unitEmployee(1), 2, "stock looks thin")
	if !errors.Is(err, domainerrors.ErrThresholdNotMet) {
		t.Fatalf("err = %v, want ErrThresholdNotMet", err)
	}
	if store.NotificationCount() != 0 {
		t.Fatalf("stored rows = %d, want 0", store.NotificationCount())
	}
}

func TestReportScoping(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// Gadget belongs to unit 2; a unit 1 employee may not report it.
	if _, err := svc.ReportLowInventory(ctx, unitEmployee(1), 3, ""); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("cross-unit report err = %v, want ErrForbidden", err)
	}
	if _, err := svc.ReportLowInventory(ctx, identity.Actor{UserID: 3, Role: identity.RoleEmployee}, 1, ""); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("unassigned employee err = %v, want ErrForbidden", err)
	}
	if _, err := svc.ReportLowInventory(ctx, identity.Actor{UserID: 1, Role: identity.RoleAdmin}, 1, ""); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("admin report err = %v, want ErrForbidden", err)
	}
	if _, err := svc.ReportLowInventory(ctx, unitEmployee(1), 99, ""); !errors.Is(err, domainerrors.ErrItemNotFound) {
		t.Fatalf("missing item err = %v, want ErrItemNotFound", err)
	}
}

func TestReviewSynthesizesFromLiveStock(t *testing.T) {
	svc, _ := newTestService(t)
	admin := identity.Actor{UserID: 1, Role: identity.RoleAdmin}

	entries, err := svc.ReviewLowInventory(context.Background(), admin)
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2 (Widget and Gadget)", len(entries))
	}
	first := entries[0]
	if first.InventoryName != "Widget" || first.UnitName != "Warehouse-A" || first.UnitLocation != "Downtown" || first.EmployeeCount != 2 {
		t.Fatalf("entry = %+v", first)
	}

	if _, err := svc.ReviewLowInventory(context.Background(), unitEmployee(1)); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("employee review err = %v, want ErrForbidden", err)
	}
}
