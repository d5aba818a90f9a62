package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestInventoryListRequiresToken(t *testing.T) {
	server := newTestServer()
	req := authorizedRequest(t, http.MethodGet, "/inventory/", "", nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestInventoryListForbiddenForCustomer(t *testing.T) {
	server := newTestServer()
	token := loginToken(t, server, "chika@maxhelp.test", "customer-password")
	req := authorizedRequest(t, http.MethodGet, "/inventory/", token, nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestInventoryListScopedToEmployeeUnit(t *testing.T) {
	server := newTestServer()
	token := loginToken(t, server, "efe@maxhelp.test", "employee-password")
	req := authorizedRequest(t, http.MethodGet, "/inventory/", token, nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), "Widget") {
		t.Fatalf("expected unit 1 catalog, got %s", rr.Body.String())
	}
}

func TestInventoryListEmptyForUnassignedEmployee(t *testing.T) {
	server := newTestServer()
	token := loginToken(t, server, "noah@maxhelp.test", "employee-password")
	req := authorizedRequest(t, http.MethodGet, "/inventory/", token, nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	if strings.TrimSpace(rr.Body.String()) != "[]" {
		t.Fatalf("expected empty list, got %s", rr.Body.String())
	}
}

func TestInventoryUpdateUnknownUnitNameIsNotFound(t *testing.T) {
	server := newTestServer()
	token := loginToken(t, server, "admin@maxhelp.test", "admin-password")
	req := authorizedRequest(t, http.MethodPut, "/inventory/1?unit_name=No-Such-Unit", token, map[string]any{
		"quantity": 7,
	})

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestInventoryCreateRequiresAdmin(t *testing.T) {
	server := newTestServer()
	token := loginToken(t, server, "efe@maxhelp.test", "employee-password")
	req := authorizedRequest(t, http.MethodPost, "/auth/admin/create-inventory", token, map[string]any{
		"unit_id":  1,
		"name":     "Spacer",
		"quantity": 10,
		"price":    "0.50",
	})

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestInventoryStatsCountsLowStock(t *testing.T) {
	server := newTestServer()
	token := loginToken(t, server, "admin@maxhelp.test", "admin-password")
	req := authorizedRequest(t, http.MethodGet, "/inventory/inventory-stats", token, nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	// Seeded catalog: Widget at 5 is low, Bracket at 40 is not.
	if !strings.Contains(rr.Body.String(), `"total_inventory":2`) || !strings.Contains(rr.Body.String(), `"low_inventory_count":1`) {
		t.Fatalf("unexpected stats body: %s", rr.Body.String())
	}
}
