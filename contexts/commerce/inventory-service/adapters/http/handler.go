package httpadapter

import (
	"context"
	"log/slog"

	"maxhelp/contexts/commerce/inventory-service/application"
	"maxhelp/contexts/commerce/inventory-service/domain/entities"
	"maxhelp/contexts/commerce/inventory-service/ports"
	httptransport "maxhelp/contexts/commerce/inventory-service/transport/http"
	"maxhelp/internal/shared/identity"
)

// Handler maps HTTP DTOs to catalog application use-cases.
type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) ListItemsHandler(ctx context.Context, actor identity.Actor) ([]httptransport.ItemResponse, error) {
	items, err := h.Service.List(ctx, actor)
	if err != nil {
		return nil, err
	}
	responses := make([]httptransport.ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, itemResponse(item))
	}
	return responses, nil
}

func (h Handler) CreateItemHandler(
	ctx context.Context,
	actor identity.Actor,
	request httptransport.CreateItemRequest,
) (httptransport.ItemResponse, error) {
	item, err := h.Service.Create(ctx, actor, application.CreateItemInput{
		UnitID:       request.UnitID,
		Name:         request.Name,
		Description:  request.Description,
		Quantity:     request.Quantity,
		ReorderLevel: request.ReorderLevel,
		Price:        request.Price,
	})
	if err != nil {
		return httptransport.ItemResponse{}, err
	}
	return itemResponse(item), nil
}

func (h Handler) UpdateItemHandler(
	ctx context.Context,
	actor identity.Actor,
	itemID int,
	unitName string,
	request httptransport.UpdateItemRequest,
) (httptransport.ItemResponse, error) {
	item, err := h.Service.Update(ctx, actor, itemID, unitName, ports.ItemUpdate{
		Name:         request.Name,
		Description:  request.Description,
		Quantity:     request.Quantity,
		ReorderLevel: request.ReorderLevel,
		Price:        request.Price,
	})
	if err != nil {
		return httptransport.ItemResponse{}, err
	}
	return itemResponse(item), nil
}

func (h Handler) DeleteItemHandler(ctx context.Context, actor identity.Actor, itemID int, unitName string) (httptransport.MessageResponse, error) {
	if err := h.Service.Delete(ctx, actor, itemID, unitName); err != nil {
		return httptransport.MessageResponse{}, err
	}
	return httptransport.MessageResponse{Message: "Inventory deleted successfully"}, nil
}

func (h Handler) StatsHandler(ctx context.Context, actor identity.Actor) (httptransport.StatsResponse, error) {
	stats, err := h.Service.Stats(ctx, actor)
	if err != nil {
		return httptransport.StatsResponse{}, err
	}
	return httptransport.StatsResponse{
		TotalInventory:    stats.TotalInventory,
		LowInventoryCount: stats.LowInventoryCount,
	}, nil
}

func itemResponse(item entities.Item) httptransport.ItemResponse {
	return httptransport.ItemResponse{
		ID:           item.ID,
		UnitID:       item.UnitID,
		Name:         item.Name,
		Description:  item.Description,
		Quantity:     item.Quantity,
		ReorderLevel: item.ReorderLevel,
		Price:        item.Price,
		CreatedAt:    item.CreatedAt,
	}
}
