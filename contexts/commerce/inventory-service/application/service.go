package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"maxhelp/contexts/commerce/inventory-service/domain/entities"
	domainerrors "maxhelp/contexts/commerce/inventory-service/domain/errors"
	"maxhelp/contexts/commerce/inventory-service/ports"
	"maxhelp/internal/shared/identity"
)

// lowStockThreshold is the fixed low-inventory boundary used by stats.
const lowStockThreshold = 10

// Service carries the unit-scoped catalog use-cases.
type Service struct {
	Repo   ports.Repository
	Clock  ports.Clock
	Logger *slog.Logger
}

// CreateItemInput is the admin-facing catalog creation request.
type CreateItemInput struct {
	UnitID       int
	Name         string
	Description  string
	Quantity     int
	ReorderLevel int
	Price        decimal.Decimal
}

// List returns the actor's visible catalog: admins see every unit,
// employees their assigned unit. An unassigned employee sees nothing.
func (s Service) List(ctx context.Context, actor identity.Actor) ([]entities.Item, error) {
	if !identity.Allows(actor.Role, identity.ActionInventoryRead) {
		return nil, domainerrors.ErrForbidden
	}
	if actor.Role == identity.RoleAdmin {
		return s.Repo.ListAllItems(ctx)
	}
	if !actor.HasUnit() {
		return []entities.Item{}, nil
	}
	return s.Repo.ListItemsByUnit(ctx, *actor.UnitID)
}

// Create registers a new catalog item. Admin only; the unit must exist.
func (s Service) Create(ctx context.Context, actor identity.Actor, input CreateItemInput) (entities.Item, error) {
	if !identity.Allows(actor.Role, identity.ActionInventoryCreate) {
		return entities.Item{}, domainerrors.ErrForbidden
	}
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" || input.Quantity < 0 || input.ReorderLevel < 0 || input.Price.IsNegative() {
		return entities.Item{}, domainerrors.ErrInvalidRequest
	}
	if _, err := s.Repo.FindUnitByID(ctx, input.UnitID); err != nil {
		return entities.Item{}, err
	}

	item, err := s.Repo.CreateItem(ctx, entities.Item{
		UnitID:       input.UnitID,
		Name:         input.Name,
		Description:  input.Description,
		Quantity:     input.Quantity,
		ReorderLevel: input.ReorderLevel,
		Price:        input.Price,
		CreatedAt:    s.now(),
	})
	if err != nil {
		return entities.Item{}, err
	}

	resolveLogger(s.Logger).Info("inventory item created",
		"event", "inventory_item_created",
		"module", "commerce/inventory-service",
		"layer", "application",
		"item_id", item.ID,
		"unit_id", item.UnitID,
	)
	return item, nil
}

// Update applies a partial change to an item. The unitName parameter is the
// request's unit override: it must exist when given, and employees stay
// pinned to their own unit no matter what it names.
func (s Service) Update(ctx context.Context, actor identity.Actor, itemID int, unitName string, update ports.ItemUpdate) (entities.Item, error) {
	item, err := s.authorizeWrite(ctx, actor, itemID, unitName)
	if err != nil {
		return entities.Item{}, err
	}

	if update.Name != nil && strings.TrimSpace(*update.Name) != "" {
		item.Name = strings.TrimSpace(*update.Name)
	}
	if update.Description != nil {
		item.Description = *update.Description
	}
	if update.Quantity != nil {
		if *update.Quantity < 0 {
			return entities.Item{}, domainerrors.ErrInvalidRequest
		}
		item.Quantity = *update.Quantity
	}
	if update.ReorderLevel != nil {
		if *update.ReorderLevel < 0 {
			return entities.Item{}, domainerrors.ErrInvalidRequest
		}
		item.ReorderLevel = *update.ReorderLevel
	}
	if update.Price != nil {
		if update.Price.IsNegative() {
			return entities.Item{}, domainerrors.ErrInvalidRequest
		}
		item.Price = *update.Price
	}

	return s.Repo.UpdateItem(ctx, item)
}

// Delete removes an item under the same scoping rule as Update.
func (s Service) Delete(ctx context.Context, actor identity.Actor, itemID int, unitName string) error {
	item, err := s.authorizeWrite(ctx, actor, itemID, unitName)
	if err != nil {
		return err
	}
	return s.Repo.DeleteItem(ctx, item.ID)
}

// Stats returns total and low-stock item counts under the actor's scope.
func (s Service) Stats(ctx context.Context, actor identity.Actor) (ports.Stats, error) {
	if !identity.Allows(actor.Role, identity.ActionInventoryRead) {
		return ports.Stats{}, domainerrors.ErrForbidden
	}

	var unitID *int
	if actor.Role == identity.RoleEmployee {
		if !actor.HasUnit() {
			return ports.Stats{}, nil
		}
		unitID = actor.UnitID
	}

	total, err := s.Repo.CountItems(ctx, unitID)
	if err != nil {
		return ports.Stats{}, err
	}
	low, err := s.Repo.CountItemsBelow(ctx, unitID, lowStockThreshold)
	if err != nil {
		return ports.Stats{}, err
	}
	return ports.Stats{TotalInventory: total, LowInventoryCount: low}, nil
}

func (s Service) authorizeWrite(ctx context.Context, actor identity.Actor, itemID int, unitName string) (entities.Item, error) {
	if !identity.Allows(actor.Role, identity.ActionInventoryWrite) {
		return entities.Item{}, domainerrors.ErrForbidden
	}
	if unitName != "" {
		if _, err := s.Repo.FindUnitByName(ctx, unitName); err != nil {
			return entities.Item{}, err
		}
	}

	item, err := s.Repo.FindItemByID(ctx, itemID)
	if err != nil {
		return entities.Item{}, err
	}
	if !actor.MayAccessUnit(item.UnitID) {
		resolveLogger(s.Logger).Warn("inventory write denied",
			"event", "inventory_write_denied",
			"module", "commerce/inventory-service",
			"layer", "application",
			"user_id", actor.UserID,
			"item_id", item.ID,
			"item_unit_id", item.UnitID,
		)
		return entities.Item{}, domainerrors.ErrForbidden
	}
	return item, nil
}

func (s Service) now() time.Time {
	if s.Clock != nil {
		return s.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
