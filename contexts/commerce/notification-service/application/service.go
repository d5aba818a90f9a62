package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"maxhelp/contexts/commerce/notification-service/domain/entities"
	domainerrors "maxhelp/contexts/commerce/notification-service/domain/errors"
	"maxhelp/contexts/commerce/notification-service/ports"
	"maxhelp/internal/shared/identity"
)

// lowStockThreshold is the fixed quantity boundary for low-stock handling.
const lowStockThreshold = 10

// Service carries low-stock reporting and the admin review.
type Service struct {
	Repo   ports.Repository
	Clock  ports.Clock
	Logger *slog.Logger
}

// ReportLowInventory files a low-stock notification for an item in the
// reporting employee's own unit. Items at or above the threshold are
// rejected without creating a row.
func (s Service) ReportLowInventory(ctx context.Context, actor identity.Actor, inventoryID int, message string) (entities.Notification, error) {
	if !identity.Allows(actor.Role, identity.ActionNotificationReport) {
		return entities.Notification{}, domainerrors.ErrForbidden
	}

	item, err := s.Repo.FindItemByID(ctx, inventoryID)
	if err != nil {
		return entities.Notification{}, err
	}
	if !actor.MayAccessUnit(item.UnitID) {
		return entities.Notification{}, domainerrors.ErrForbidden
	}
	if item.Quantity >= lowStockThreshold {
		return entities.Notification{}, domainerrors.ErrThresholdNotMet
	}

	if strings.TrimSpace(message) == "" {
		message = fmt.Sprintf("Low stock: %s (%d remaining)", item.Name, item.Quantity)
	}
	notification, err := s.Repo.CreateNotification(ctx, entities.Notification{
		InventoryID: item.ID,
		Message:     message,
		CreatedAt:   s.now(),
	})
	if err != nil {
		return entities.Notification{}, err
	}

	resolveLogger(s.Logger).Info("low stock reported",
		"event", "low_stock_reported",
		"module", "commerce/notification-service",
		"layer", "application",
		"notification_id", notification.ID,
		"inventory_id", item.ID,
		"unit_id", item.UnitID,
		"user_id", actor.UserID,
	)
	return notification, nil
}

// ReviewLowInventory is the admin dashboard view: every item currently below
// the threshold, joined with its unit's name, location and employee count.
// It reads live stock rather than stored notification rows, so items
// restocked since a report drop out on their own.
func (s Service) ReviewLowInventory(ctx context.Context, actor identity.Actor) ([]ports.LowStockEntry, error) {
	if !identity.Allows(actor.Role, identity.ActionNotificationReview) {
		return nil, domainerrors.ErrForbidden
	}
	return s.Repo.ListLowStock(ctx, lowStockThreshold)
}

func (s Service) now() time.Time {
	if s.Clock != nil {
		return s.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
