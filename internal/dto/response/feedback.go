package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type FeedbackResponse struct {
	ID        int64                   `json:"id"`
	UserID    *int64                  `json:"user_id,omitempty"`
	UserName  string                  `json:"user_name"`
	Rating    int                     `json:"rating"`
	Comment   string                  `json:"comment"`
	Category  entity.FeedbackCategory `json:"category"`
	CreatedAt time.Time               `json:"created_at"`
}

type SupportTicketResponse struct {
	TicketID int64 `json:"ticket_id"`
}

func FeedbackToResponse(f *entity.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:        f.ID,
		UserID:    f.UserID,
		UserName:  f.UserName,
		Rating:    f.Rating,
		Comment:   f.Comment,
		Category:  f.Category,
		CreatedAt: f.CreatedAt,
	}
}
