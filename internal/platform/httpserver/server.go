package httpserver

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	httpSwagger "github.com/swaggo/http-swagger"

	inventoryservice "maxhelp/contexts/commerce/inventory-service"
	notificationservice "maxhelp/contexts/commerce/notification-service"
	orderengine "maxhelp/contexts/commerce/order-engine"
	reportingservice "maxhelp/contexts/commerce/reporting-service"
	feedbackservice "maxhelp/contexts/community-experience/feedback-service"
	authservice "maxhelp/contexts/identity-access/auth-service"
	authhttp "maxhelp/contexts/identity-access/auth-service/transport/http"
	"maxhelp/internal/shared/identity"

	_ "maxhelp/internal/platform/httpserver/docs"
)

type Server struct {
	mux    *http.ServeMux
	logger *slog.Logger
	addr   string

	auth          authservice.Module
	inventory     inventoryservice.Module
	orders        orderengine.Module
	notifications notificationservice.Module
	reports       reportingservice.Module
	feedback      feedbackservice.Module
}

func New(
	auth authservice.Module,
	inventory inventoryservice.Module,
	orders orderengine.Module,
	notifications notificationservice.Module,
	reports reportingservice.Module,
	feedback feedbackservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:           http.NewServeMux(),
		logger:        logger,
		addr:          addr,
		auth:          auth,
		inventory:     inventory,
		orders:        orders,
		notifications: notifications,
		reports:       reports,
		feedback:      feedback,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.withRequestLog(s.mux))
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /auth/login", s.handleLogin)
	s.mux.HandleFunc("POST /auth/admin/login", s.handleAdminLogin)
	s.mux.HandleFunc("POST /auth/admin/create-business-unit", s.handleCreateBusinessUnit)
	s.mux.HandleFunc("GET /auth/admin/list-details", s.handleListEmployees)
	s.mux.HandleFunc("POST /auth/admin/create-employee", s.handleCreateEmployee)
	s.mux.HandleFunc("PUT /auth/admin/update-employee/{employee_id}", s.handleUpdateEmployee)
	s.mux.HandleFunc("DELETE /auth/admin/delete-employee/{employee_id}", s.handleDeleteEmployee)
	s.mux.HandleFunc("GET /auth/admin/list-stats", s.handleAdminStats)
	s.mux.HandleFunc("POST /auth/admin/create-inventory", s.handleCreateInventory)

	s.mux.HandleFunc("GET /inventory/{$}", s.handleListInventory)
	s.mux.HandleFunc("GET /inventory/inventory-stats", s.handleInventoryStats)
	s.mux.HandleFunc("PUT /inventory/{item_id}", s.handleUpdateInventory)
	s.mux.HandleFunc("DELETE /inventory/{item_id}", s.handleDeleteInventory)

	s.mux.HandleFunc("POST /orders/place-order", s.handlePlaceOrder)
	s.mux.HandleFunc("GET /orders/list-orders", s.handleListOrders)

	s.mux.HandleFunc("POST /notifications/report-low-inventory", s.handleReportLowInventory)
	s.mux.HandleFunc("GET /notifications/low-inventory", s.handleReviewLowInventory)

	s.mux.HandleFunc("POST /feedback/create-feeback", s.handleCreateFeedback)
	s.mux.HandleFunc("GET /feedback/list-feedbacks", s.handleListFeedback)

	s.mux.HandleFunc("GET /financial-reports/sales-report", s.handleSalesReport)
	s.mux.HandleFunc("GET /financial-reports/sales-report/monthly", s.handleMonthlySales)
	s.mux.HandleFunc("GET /financial-reports/inventory-valuation", s.handleInventoryValuation)
	s.mux.HandleFunc("GET /financial-reports/revenue-by-product", s.handleRevenueByProduct)
	s.mux.HandleFunc("GET /financial-reports/top-customers", s.handleTopCustomers)
}

// authenticate resolves the bearer token into a typed actor. A missing or
// unverifiable token ends the request with a 401 here.
func (s *Server) authenticate(w http.ResponseWriter, r *http.Request) (identity.Actor, bool) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		writeJSON(w, http.StatusUnauthorized, authhttp.ErrorResponse{
			Code:    "unauthorized",
			Message: "Authorization bearer token is required",
		})
		return identity.Actor{}, false
	}

	actor, err := s.auth.Handler.AuthenticateHandler(r.Context(), strings.TrimSpace(parts[1]))
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, authhttp.ErrorResponse{
			Code:    "invalid_token",
			Message: "bearer token is invalid or expired",
		})
		return identity.Actor{}, false
	}
	return actor, true
}

func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := strings.TrimSpace(r.Header.Get("X-Request-Id"))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		s.logger.Info("http request",
			"event", "http_request",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
		)
		next.ServeHTTP(w, r)
	})
}

func parsePathInt(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(r.PathValue(name))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
