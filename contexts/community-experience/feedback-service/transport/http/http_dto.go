package httptransport

import "time"

// ErrorResponse is the module's wire error shape.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateFeedbackRequest struct {
	UnitName string `json:"unit_name"`
	Comment  string `json:"comment"`
	Rating   *int   `json:"rating,omitempty"`
}

type FeedbackResponse struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	UnitID    int       `json:"unit_id"`
	Comment   string    `json:"comment"`
	Rating    *int      `json:"rating,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
