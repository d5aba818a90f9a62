package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	inventoryerrors "maxhelp/contexts/commerce/inventory-service/domain/errors"
	inventoryhttp "maxhelp/contexts/commerce/inventory-service/transport/http"
)

func writeInventoryError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, inventoryhttp.ErrorResponse{Code: code, Message: message})
}

func writeInventoryDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, inventoryerrors.ErrForbidden):
		writeInventoryError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, inventoryerrors.ErrItemNotFound),
		errors.Is(err, inventoryerrors.ErrUnitNotFound):
		writeInventoryError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, inventoryerrors.ErrInvalidRequest):
		writeInventoryError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeInventoryError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

// handleCreateInventory backs the admin route POST /auth/admin/create-inventory.
func (s *Server) handleCreateInventory(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	var req inventoryhttp.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInventoryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.inventory.Handler.CreateItemHandler(r.Context(), actor, req)
	if err != nil {
		writeInventoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListInventory(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	resp, err := s.inventory.Handler.ListItemsHandler(r.Context(), actor)
	if err != nil {
		writeInventoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateInventory(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	itemID, ok := inventoryPathID(w, r)
	if !ok {
		return
	}
	var req inventoryhttp.UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInventoryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.inventory.Handler.UpdateItemHandler(r.Context(), actor, itemID, r.URL.Query().Get("unit_name"), req)
	if err != nil {
		writeInventoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteInventory(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	itemID, ok := inventoryPathID(w, r)
	if !ok {
		return
	}
	resp, err := s.inventory.Handler.DeleteItemHandler(r.Context(), actor, itemID, r.URL.Query().Get("unit_name"))
	if err != nil {
		writeInventoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleInventoryStats(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	resp, err := s.inventory.Handler.StatsHandler(r.Context(), actor)
	if err != nil {
		writeInventoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func inventoryPathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := parsePathInt(r, "item_id")
	if err != nil {
		writeInventoryError(w, http.StatusBadRequest, "invalid_id", "item_id must be a positive integer")
		return 0, false
	}
	return id, true
}
