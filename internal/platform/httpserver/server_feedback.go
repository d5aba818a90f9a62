package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	feedbackerrors "maxhelp/contexts/community-experience/feedback-service/domain/errors"
	feedbackhttp "maxhelp/contexts/community-experience/feedback-service/transport/http"
)

func writeFeedbackError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, feedbackhttp.ErrorResponse{Code: code, Message: message})
}

func writeFeedbackDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, feedbackerrors.ErrForbidden):
		writeFeedbackError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, feedbackerrors.ErrUnitNotFound):
		writeFeedbackError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, feedbackerrors.ErrInvalidRequest),
		errors.Is(err, feedbackerrors.ErrUnitAssignmentRequired):
		writeFeedbackError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeFeedbackError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleCreateFeedback(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	var req feedbackhttp.CreateFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFeedbackError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.feedback.Handler.CreateFeedbackHandler(r.Context(), actor, req)
	if err != nil {
		writeFeedbackDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListFeedback(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	resp, err := s.feedback.Handler.ListFeedbackHandler(r.Context(), actor)
	if err != nil {
		writeFeedbackDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
