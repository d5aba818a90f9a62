package httpserver

import (
	"errors"
	"net/http"

	reportingerrors "maxhelp/contexts/commerce/reporting-service/domain/errors"
	reportinghttp "maxhelp/contexts/commerce/reporting-service/transport/http"
)

func writeReportError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, reportinghttp.ErrorResponse{Code: code, Message: message})
}

func writeReportDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, reportingerrors.ErrForbidden):
		writeReportError(w, http.StatusForbidden, "forbidden", err.Error())
	default:
		writeReportError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleSalesReport(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	resp, err := s.reports.Handler.SalesReportHandler(r.Context(), actor)
	if err != nil {
		writeReportDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleInventoryValuation(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	resp, err := s.reports.Handler.InventoryValuationHandler(r.Context(), actor)
	if err != nil {
		writeReportDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRevenueByProduct(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	resp, err := s.reports.Handler.RevenueByProductHandler(r.Context(), actor)
	if err != nil {
		writeReportDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTopCustomers(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	resp, err := s.reports.Handler.TopCustomersHandler(r.Context(), actor)
	if err != nil {
		writeReportDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMonthlySales(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	resp, err := s.reports.Handler.MonthlySalesHandler(r.Context(), actor)
	if err != nil {
		writeReportDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
