package httpadapter

import (
	"context"
	"log/slog"

	"maxhelp/contexts/community-experience/feedback-service/application"
	"maxhelp/contexts/community-experience/feedback-service/domain/entities"
	httptransport "maxhelp/contexts/community-experience/feedback-service/transport/http"
	"maxhelp/internal/shared/identity"
)

// Handler maps HTTP DTOs to feedback application use-cases.
type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) CreateFeedbackHandler(
	ctx context.Context,
	actor identity.Actor,
	request httptransport.CreateFeedbackRequest,
) (httptransport.FeedbackResponse, error) {
	feedback, err := h.Service.CreateFeedback(ctx, actor, application.CreateFeedbackInput{
		UnitName: request.UnitName,
		Comment:  request.Comment,
		Rating:   request.Rating,
	})
	if err != nil {
		return httptransport.FeedbackResponse{}, err
	}
	return feedbackResponse(feedback), nil
}

func (h Handler) ListFeedbackHandler(ctx context.Context, actor identity.Actor) ([]httptransport.FeedbackResponse, error) {
	feedback, err := h.Service.ListFeedback(ctx, actor)
	if err != nil {
		return nil, err
	}
	responses := make([]httptransport.FeedbackResponse, 0, len(feedback))
	for _, item := range feedback {
		responses = append(responses, feedbackResponse(item))
	}
	return responses, nil
}

func feedbackResponse(feedback entities.Feedback) httptransport.FeedbackResponse {
	return httptransport.FeedbackResponse{
		ID:        feedback.ID,
		UserID:    feedback.UserID,
		UnitID:    feedback.UnitID,
		Comment:   feedback.Comment,
		Rating:    feedback.Rating,
		CreatedAt: feedback.CreatedAt,
	}
}
