package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	autherrors "maxhelp/contexts/identity-access/auth-service/domain/errors"
	authhttp "maxhelp/contexts/identity-access/auth-service/transport/http"
)

func writeAuthError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, authhttp.ErrorResponse{Code: code, Message: message})
}

func writeAuthDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, autherrors.ErrInvalidCredentials),
		errors.Is(err, autherrors.ErrInvalidToken):
		writeAuthError(w, http.StatusUnauthorized, "unauthorized", err.Error())
	case errors.Is(err, autherrors.ErrForbidden):
		writeAuthError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, autherrors.ErrUserNotFound),
		errors.Is(err, autherrors.ErrEmployeeNotFound),
		errors.Is(err, autherrors.ErrUnitNotFound):
		writeAuthError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, autherrors.ErrEmailTaken),
		errors.Is(err, autherrors.ErrUnitNameTaken),
		errors.Is(err, autherrors.ErrInvalidRequest):
		writeAuthError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeAuthError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req authhttp.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAuthError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.auth.Handler.LoginHandler(r.Context(), req)
	if err != nil {
		writeAuthDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleAdminLogin accepts form-encoded credentials keyed by the admin's
// user name rather than email.
func (s *Server) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeAuthError(w, http.StatusBadRequest, "invalid_form", "request body must be form encoded")
		return
	}
	resp, err := s.auth.Handler.AdminLoginHandler(r.Context(), r.PostFormValue("username"), r.PostFormValue("password"))
	if err != nil {
		writeAuthDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateBusinessUnit(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	var req authhttp.CreateBusinessUnitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAuthError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.auth.Handler.CreateBusinessUnitHandler(r.Context(), actor, req)
	if err != nil {
		writeAuthDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	resp, err := s.auth.Handler.ListEmployeesHandler(r.Context(), actor)
	if err != nil {
		writeAuthDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	var req authhttp.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAuthError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.auth.Handler.CreateEmployeeHandler(r.Context(), actor, req)
	if err != nil {
		writeAuthDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	employeeID, ok := pathID(w, r, "employee_id")
	if !ok {
		return
	}
	var req authhttp.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAuthError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.auth.Handler.UpdateEmployeeHandler(r.Context(), actor, employeeID, req)
	if err != nil {
		writeAuthDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	employeeID, ok := pathID(w, r, "employee_id")
	if !ok {
		return
	}
	resp, err := s.auth.Handler.DeleteEmployeeHandler(r.Context(), actor, employeeID)
	if err != nil {
		writeAuthDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAdminStats(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	resp, err := s.auth.Handler.AdminStatsHandler(r.Context(), actor)
	if err != nil {
		writeAuthDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := parsePathInt(r, name)
	if err != nil {
		writeAuthError(w, http.StatusBadRequest, "invalid_id", name+" must be a positive integer")
		return 0, false
	}
	return id, true
}
