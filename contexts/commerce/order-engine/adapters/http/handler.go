package httpadapter

import (
	"context"
	"log/slog"

	"maxhelp/contexts/commerce/order-engine/application"
	"maxhelp/contexts/commerce/order-engine/domain/entities"
	"maxhelp/contexts/commerce/order-engine/ports"
	httptransport "maxhelp/contexts/commerce/order-engine/transport/http"
	"maxhelp/internal/shared/identity"
)

// Handler maps HTTP DTOs to order application use-cases.
type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) PlaceOrderHandler(
	ctx context.Context,
	actor identity.Actor,
	request httptransport.PlaceOrderRequest,
) (httptransport.OrderResponse, error) {
	lines := make([]ports.OrderLine, 0, len(request.Items))
	for _, item := range request.Items {
		lines = append(lines, ports.OrderLine{
			InventoryName: item.InventoryName,
			Quantity:      item.Quantity,
		})
	}
	order, err := h.Service.PlaceOrder(ctx, actor, application.PlaceOrderInput{
		UnitName:  request.UnitName,
		OrderType: request.OrderType,
		Lines:     lines,
	})
	if err != nil {
		return httptransport.OrderResponse{}, err
	}
	return orderResponse(order), nil
}

func (h Handler) ListOrdersHandler(ctx context.Context, actor identity.Actor) ([]httptransport.OrderResponse, error) {
	orders, err := h.Service.ListOrders(ctx, actor)
	if err != nil {
		return nil, err
	}
	responses := make([]httptransport.OrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, orderResponse(order))
	}
	return responses, nil
}

func orderResponse(order entities.Order) httptransport.OrderResponse {
	response := httptransport.OrderResponse{
		ID:          order.ID,
		UserID:      order.UserID,
		UnitID:      order.UnitID,
		OrderType:   order.OrderType,
		TotalAmount: order.TotalAmount,
		CreatedAt:   order.CreatedAt,
		Items:       make([]httptransport.OrderItemResponse, 0, len(order.Items)),
	}
	for _, item := range order.Items {
		response.Items = append(response.Items, httptransport.OrderItemResponse{
			ID:          item.ID,
			InventoryID: item.InventoryID,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}
	return response
}
