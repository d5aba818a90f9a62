package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	ordererrors "maxhelp/contexts/commerce/order-engine/domain/errors"
	orderhttp "maxhelp/contexts/commerce/order-engine/transport/http"
)

func writeOrderError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, orderhttp.ErrorResponse{Code: code, Message: message})
}

func writeOrderDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ordererrors.ErrForbidden):
		writeOrderError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, ordererrors.ErrUnitNotFound),
		errors.Is(err, ordererrors.ErrItemNotFound):
		writeOrderError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ordererrors.ErrInsufficientStock):
		writeOrderError(w, http.StatusBadRequest, "insufficient_stock", err.Error())
	case errors.Is(err, ordererrors.ErrInvalidRequest):
		writeOrderError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeOrderError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	var req orderhttp.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeOrderError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.orders.Handler.PlaceOrderHandler(r.Context(), actor, req)
	if err != nil {
		writeOrderDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	resp, err := s.orders.Handler.ListOrdersHandler(r.Context(), actor)
	if err != nil {
		writeOrderDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
