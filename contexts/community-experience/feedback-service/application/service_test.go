package application

import (
	"context"
	"errors"
	"testing"

	"maxhelp/contexts/community-experience/feedback-service/adapters/memory"
	domainerrors "maxhelp/contexts/community-experience/feedback-service/domain/errors"
	"maxhelp/contexts/community-experience/feedback-service/ports"
	"maxhelp/internal/shared/identity"
)

func newTestService(t *testing.T) (Service, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	store.SeedUnit(ports.Unit{ID: 1, Name: "Warehouse-A"})
	store.SeedUnit(ports.Unit{ID: 2, Name: "Warehouse-B"})
	return Service{Repo: store, Clock: store}, store
}

func customer() identity.Actor {
	return identity.Actor{UserID: 10, Role: identity.RoleCustomer}
}

func submit(svc Service, unitName, comment string, rating *int) error {
	_, err := svc.CreateFeedback(context.Background(), customer(), CreateFeedbackInput{
		UnitName: unitName,
		Comment:  comment,
		Rating:   rating,
	})
	return err
}

func TestCreateFeedbackResolvesUnitByName(t *testing.T) {
	svc, _ := newTestService(t)

	rating := 4
	feedback, err := svc.CreateFeedback(context.Background(), customer(), CreateFeedbackInput{
		UnitName: "Warehouse-A",
		Comment:  "quick service",
		Rating:   &rating,
	})
	if err != nil {
		t.Fatalf("create feedback: %v", err)
	}
	if feedback.UnitID != 1 || feedback.UserID != 10 {
		t.Fatalf("feedback = %+v", feedback)
	}
	if feedback.Rating == nil || *feedback.Rating != 4 {
		t.Fatalf("rating = %v, want 4", feedback.Rating)
	}

	if err := submit(svc, "Nowhere", "lost", nil); !errors.Is(err, domainerrors.ErrUnitNotFound) {
		t.Fatalf("unknown unit err = %v, want ErrUnitNotFound", err)
	}
}

func TestCreateFeedbackValidation(t *testing.T) {
	svc, _ := newTestService(t)

	if err := submit(svc, "Warehouse-A", "   ", nil); !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("blank comment err = %v, want ErrInvalidRequest", err)
	}
	for _, rating := range []int{0, 6, -1} {
		r := rating
		if err := submit(svc, "Warehouse-A", "ok", &r); !errors.Is(err, domainerrors.ErrInvalidRequest) {
			t.Fatalf("rating %d err = %v, want ErrInvalidRequest", rating, err)
		}
	}

	unitID := 1
	employee := identity.Actor{UserID: 2, Role: identity.RoleEmployee, UnitID: &unitID}
	if _, err := svc.CreateFeedback(context.Background(), employee, CreateFeedbackInput{UnitName: "Warehouse-A", Comment: "hi"}); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("employee create err = %v, want ErrForbidden", err)
	}
}

func TestListFeedbackScoping(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if err := submit(svc, "Warehouse-A", "great", nil); err != nil {
		t.Fatalf("seed feedback: %v", err)
	}
	if err := submit(svc, "Warehouse-B", "slow", nil); err != nil {
		t.Fatalf("seed feedback: %v", err)
	}

	admin := identity.Actor{UserID: 1, Role: identity.RoleAdmin}
	all, err := svc.ListFeedback(ctx, admin)
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("admin list len = %d, want 2", len(all))
	}

	unitB := 2
	scoped, err := svc.ListFeedback(ctx, identity.Actor{UserID: 2, Role: identity.RoleEmployee, UnitID: &unitB})
	if err != nil {
		t.Fatalf("employee list: %v", err)
	}
	if len(scoped) != 1 || scoped[0].Comment != "slow" {
		t.Fatalf("employee list = %+v, want only unit 2 feedback", scoped)
	}

	if _, err := svc.ListFeedback(ctx, identity.Actor{UserID: 3, Role: identity.RoleEmployee}); !errors.Is(err, domainerrors.ErrUnitAssignmentRequired) {
		t.Fatalf("unassigned employee err = %v, want ErrUnitAssignmentRequired", err)
	}
	if _, err := svc.ListFeedback(ctx, customer()); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("customer list err = %v, want ErrForbidden", err)
	}
}
