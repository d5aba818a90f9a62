package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestReportLowInventoryEmployeeOnly(t *testing.T) {
	server := newTestServer()
	body := map[string]any{"inventory_id": 1}

	for _, account := range []struct{ email, password string }{
		{"admin@maxhelp.test", "admin-password"},
		{"chika@maxhelp.test", "customer-password"},
	} {
		token := loginToken(t, server, account.email, account.password)
		req := authorizedRequest(t, http.MethodPost, "/notifications/report-low-inventory", token, body)

		rr := httptest.NewRecorder()
		server.mux.ServeHTTP(rr, req)
		if rr.Code != http.StatusForbidden {
			t.Fatalf("%s: expected 403, got %d body=%s", account.email, rr.Code, rr.Body.String())
		}
	}
}

func TestReportLowInventoryCreatesNotification(t *testing.T) {
	server := newTestServer()
	token := loginToken(t, server, "efe@maxhelp.test", "employee-password")
	req := authorizedRequest(t, http.MethodPost, "/notifications/report-low-inventory", token, map[string]any{
		"inventory_id": 1,
	})

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), "Widget") {
		t.Fatalf("expected synthesized message, got %s", rr.Body.String())
	}
}

func TestReportAboveThresholdRejected(t *testing.T) {
	server := newTestServer()
	token := loginToken(t, server, "efe@maxhelp.test", "employee-password")
	// Bracket carries 40 units.
	req := authorizedRequest(t, http.MethodPost, "/notifications/report-low-inventory", token, map[string]any{
		"inventory_id": 2,
	})

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), "threshold_not_met") {
		t.Fatalf("expected threshold_not_met code, got %s", rr.Body.String())
	}
}

func TestLowInventoryReviewAdminOnly(t *testing.T) {
	server := newTestServer()
	employeeToken := loginToken(t, server, "efe@maxhelp.test", "employee-password")
	req := authorizedRequest(t, http.MethodGet, "/notifications/low-inventory", employeeToken, nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}

	adminToken := loginToken(t, server, "admin@maxhelp.test", "admin-password")
	req = authorizedRequest(t, http.MethodGet, "/notifications/low-inventory", adminToken, nil)

	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), "Warehouse-A") {
		t.Fatalf("expected unit context in review, got %s", rr.Body.String())
	}
}
