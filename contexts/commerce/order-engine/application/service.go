package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"maxhelp/contexts/commerce/order-engine/domain/entities"
	domainerrors "maxhelp/contexts/commerce/order-engine/domain/errors"
	"maxhelp/contexts/commerce/order-engine/ports"
	"maxhelp/internal/shared/identity"
)

// Service carries order placement and role-scoped listing.
type Service struct {
	Repo   ports.Repository
	Clock  ports.Clock
	Logger *slog.Logger
}

// PlaceOrderInput is the transport-facing placement request.
type PlaceOrderInput struct {
	UnitName  string
	OrderType string
	Lines     []ports.OrderLine
}

// PlaceOrder validates the request, resolves the unit by name and hands the
// whole placement to the store as one transaction. Customers only.
func (s Service) PlaceOrder(ctx context.Context, actor identity.Actor, input PlaceOrderInput) (entities.Order, error) {
	if !identity.Allows(actor.Role, identity.ActionOrderPlace) {
		return entities.Order{}, domainerrors.ErrForbidden
	}
	if len(input.Lines) == 0 {
		return entities.Order{}, domainerrors.ErrInvalidRequest
	}
	for _, line := range input.Lines {
		if strings.TrimSpace(line.InventoryName) == "" || line.Quantity <= 0 {
			return entities.Order{}, domainerrors.ErrInvalidRequest
		}
	}

	unit, err := s.Repo.FindUnitByName(ctx, input.UnitName)
	if err != nil {
		return entities.Order{}, err
	}

	order, err := s.Repo.PlaceOrder(ctx, ports.PlaceOrderInput{
		UserID:    actor.UserID,
		UnitID:    unit.ID,
		OrderType: input.OrderType,
		Lines:     input.Lines,
		PlacedAt:  s.now(),
	})
	if err != nil {
		return entities.Order{}, err
	}

	resolveLogger(s.Logger).Info("order placed",
		"event", "order_placed",
		"module", "commerce/order-engine",
		"layer", "application",
		"order_id", order.ID,
		"user_id", actor.UserID,
		"unit_id", unit.ID,
		"total", order.TotalAmount.String(),
	)
	return order, nil
}

// ListOrders returns orders under the actor's scope: admins everything,
// employees their assigned unit. An unassigned employee sees nothing.
func (s Service) ListOrders(ctx context.Context, actor identity.Actor) ([]entities.Order, error) {
	if !identity.Allows(actor.Role, identity.ActionOrderList) {
		return nil, domainerrors.ErrForbidden
	}
	if actor.Role == identity.RoleAdmin {
		return s.Repo.ListAllOrders(ctx)
	}
	if !actor.HasUnit() {
		return []entities.Order{}, nil
	}
	return s.Repo.ListOrdersByUnit(ctx, *actor.UnitID)
}

func (s Service) now() time.Time {
	if s.Clock != nil {
		return s.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
