package httpadapter

import (
	"context"
	"log/slog"

	"maxhelp/contexts/commerce/notification-service/application"
	httptransport "maxhelp/contexts/commerce/notification-service/transport/http"
	"maxhelp/internal/shared/identity"
)

// Handler maps HTTP DTOs to notification application use-cases.
type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) ReportLowInventoryHandler(
	ctx context.Context,
	actor identity.Actor,
	request httptransport.ReportLowInventoryRequest,
) (httptransport.NotificationResponse, error) {
	notification, err := h.Service.ReportLowInventory(ctx, actor, request.InventoryID, request.Message)
	if err != nil {
		return httptransport.NotificationResponse{}, err
	}
	return httptransport.NotificationResponse{
		ID:          notification.ID,
		InventoryID: notification.InventoryID,
		Message:     notification.Message,
		Resolved:    notification.Resolved,
		CreatedAt:   notification.CreatedAt,
	}, nil
}

func (h Handler) ReviewLowInventoryHandler(ctx context.Context, actor identity.Actor) ([]httptransport.LowStockEntryResponse, error) {
	entries, err := h.Service.ReviewLowInventory(ctx, actor)
	if err != nil {
		return nil, err
	}
	responses := make([]httptransport.LowStockEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, httptransport.LowStockEntryResponse{
			InventoryID:   entry.InventoryID,
			InventoryName: entry.InventoryName,
			Quantity:      entry.Quantity,
			UnitID:        entry.UnitID,
			UnitName:      entry.UnitName,
			UnitLocation:  entry.UnitLocation,
			EmployeeCount: entry.EmployeeCount,
		})
	}
	return responses, nil
}
