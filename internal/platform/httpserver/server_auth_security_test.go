package httpserver

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	inventoryservice "maxhelp/contexts/commerce/inventory-service"
	notificationservice "maxhelp/contexts/commerce/notification-service"
	orderengine "maxhelp/contexts/commerce/order-engine"
	reportingservice "maxhelp/contexts/commerce/reporting-service"
	feedbackservice "maxhelp/contexts/community-experience/feedback-service"
	authservice "maxhelp/contexts/identity-access/auth-service"
)

func newTestServer() *Server {
	return New(
		authservice.NewInMemoryModule(slog.Default()),
		inventoryservice.NewInMemoryModule(slog.Default()),
		orderengine.NewInMemoryModule(slog.Default()),
		notificationservice.NewInMemoryModule(slog.Default()),
		reportingservice.NewInMemoryModule(slog.Default()),
		feedbackservice.NewInMemoryModule(slog.Default()),
		slog.Default(),
		":0",
	)
}

// loginToken signs the fixture account in through the real login route.
func loginToken(t *testing.T, server *Server, email, password string) string {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d body=%s", email, rr.Code, rr.Body.String())
	}

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	return resp.AccessToken
}

func authorizedRequest(t *testing.T, method, target, token string, payload any) *http.Request {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestAdminLoginRejectsWrongPassword(t *testing.T) {
	server := newTestServer()
	form := url.Values{"username": {"Ada Obi"}, "password": {"wrong-password"}}
	req := httptest.NewRequest(http.MethodPost, "/auth/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestAdminLoginAcceptsFormCredentials(t *testing.T) {
	server := newTestServer()
	form := url.Values{"username": {"Ada Obi"}, "password": {"admin-password"}}
	req := httptest.NewRequest(http.MethodPost, "/auth/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), "access_token") {
		t.Fatalf("expected token in response, got %s", rr.Body.String())
	}
}

func TestEmployeeManagementRequiresToken(t *testing.T) {
	server := newTestServer()
	req := authorizedRequest(t, http.MethodGet, "/auth/admin/list-details", "", nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestEmployeeManagementRejectsNonAdmin(t *testing.T) {
	server := newTestServer()
	token := loginToken(t, server, "chika@maxhelp.test", "customer-password")
	req := authorizedRequest(t, http.MethodPost, "/auth/admin/create-employee", token, map[string]any{
		"name":     "Intruder",
		"email":    "intruder@maxhelp.test",
		"password": "intruder-password",
	})

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestAdminCanListEmployees(t *testing.T) {
	server := newTestServer()
	token := loginToken(t, server, "admin@maxhelp.test", "admin-password")
	req := authorizedRequest(t, http.MethodGet, "/auth/admin/list-details", token, nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), "efe@maxhelp.test") {
		t.Fatalf("expected seeded employee in response, got %s", rr.Body.String())
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	server := newTestServer()
	token := loginToken(t, server, "admin@maxhelp.test", "admin-password")
	tampered := token[:len(token)-2] + "xx"
	req := authorizedRequest(t, http.MethodGet, "/auth/admin/list-details", tampered, nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}
