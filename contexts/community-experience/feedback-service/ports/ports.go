package ports

import (
	"context"
	"time"

	"maxhelp/contexts/community-experience/feedback-service/domain/entities"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// Unit is the minimal business-unit view feedback needs.
type Unit struct {
	ID   int
	Name string
}

// Repository is the feedback persistence boundary.
type Repository interface {
	FindUnitByName(ctx context.Context, name string) (Unit, error)
	CreateFeedback(ctx context.Context, feedback entities.Feedback) (entities.Feedback, error)
	ListAllFeedback(ctx context.Context) ([]entities.Feedback, error)
	ListFeedbackByUnit(ctx context.Context, unitID int) ([]entities.Feedback, error)
}
