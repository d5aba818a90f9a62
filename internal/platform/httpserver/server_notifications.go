package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	notificationerrors "maxhelp/contexts/commerce/notification-service/domain/errors"
	notificationhttp "maxhelp/contexts/commerce/notification-service/transport/http"
)

func writeNotificationError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, notificationhttp.ErrorResponse{Code: code, Message: message})
}

func writeNotificationDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, notificationerrors.ErrForbidden):
		writeNotificationError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, notificationerrors.ErrItemNotFound):
		writeNotificationError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, notificationerrors.ErrThresholdNotMet):
		writeNotificationError(w, http.StatusBadRequest, "threshold_not_met", err.Error())
	default:
		writeNotificationError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleReportLowInventory(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	var req notificationhttp.ReportLowInventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeNotificationError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.notifications.Handler.ReportLowInventoryHandler(r.Context(), actor, req)
	if err != nil {
		writeNotificationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleReviewLowInventory(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	resp, err := s.notifications.Handler.ReviewLowInventoryHandler(r.Context(), actor)
	if err != nil {
		writeNotificationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
