package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"maxhelp/contexts/community-experience/feedback-service/domain/entities"
	domainerrors "maxhelp/contexts/community-experience/feedback-service/domain/errors"
	"maxhelp/contexts/community-experience/feedback-service/ports"
	"maxhelp/internal/shared/identity"
)

// Service carries feedback submission and role-scoped listing.
type Service struct {
	Repo   ports.Repository
	Clock  ports.Clock
	Logger *slog.Logger
}

// CreateFeedbackInput is the transport-facing submission.
type CreateFeedbackInput struct {
	UnitName string
	Comment  string
	Rating   *int
}

// CreateFeedback records a customer's comment against a unit resolved by
// name. A rating, when present, must sit in 1..5.
func (s Service) CreateFeedback(ctx context.Context, actor identity.Actor, input CreateFeedbackInput) (entities.Feedback, error) {
	if !identity.Allows(actor.Role, identity.ActionFeedbackCreate) {
		return entities.Feedback{}, domainerrors.ErrForbidden
	}
	if strings.TrimSpace(input.Comment) == "" {
		return entities.Feedback{}, domainerrors.ErrInvalidRequest
	}
	if input.Rating != nil && (*input.Rating < 1 || *input.Rating > 5) {
		return entities.Feedback{}, domainerrors.ErrInvalidRequest
	}

	unit, err := s.Repo.FindUnitByName(ctx, input.UnitName)
	if err != nil {
		return entities.Feedback{}, err
	}

	feedback, err := s.Repo.CreateFeedback(ctx, entities.Feedback{
		UserID:    actor.UserID,
		UnitID:    unit.ID,
		Comment:   strings.TrimSpace(input.Comment),
		Rating:    input.Rating,
		CreatedAt: s.now(),
	})
	if err != nil {
		return entities.Feedback{}, err
	}

	resolveLogger(s.Logger).Info("feedback created",
		"event", "feedback_created",
		"module", "community-experience/feedback-service",
		"layer", "application",
		"feedback_id", feedback.ID,
		"unit_id", unit.ID,
		"user_id", actor.UserID,
	)
	return feedback, nil
}

// ListFeedback returns feedback under the actor's scope. Unlike the other
// listings, an employee without a unit assignment gets an explicit error
// here rather than an empty page.
func (s Service) ListFeedback(ctx context.Context, actor identity.Actor) ([]entities.Feedback, error) {
	if !identity.Allows(actor.Role, identity.ActionFeedbackList) {
		return nil, domainerrors.ErrForbidden
	}
	if actor.Role == identity.RoleAdmin {
		return s.Repo.ListAllFeedback(ctx)
	}
	if !actor.HasUnit() {
		return nil, domainerrors.ErrUnitAssignmentRequired
	}
	return s.Repo.ListFeedbackByUnit(ctx, *actor.UnitID)
}

func (s Service) now() time.Time {
	if s.Clock != nil {
		return s.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
