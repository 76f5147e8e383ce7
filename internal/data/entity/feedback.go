package entity

type FeedbackCategory string

const (
	FeedbackGeneral    FeedbackCategory = "general"
	FeedbackRooms      FeedbackCategory = "rooms"
	FeedbackServices   FeedbackCategory = "services"
	FeedbackDining     FeedbackCategory = "dining"
	FeedbackStaff      FeedbackCategory = "staff"
	FeedbackFacilities FeedbackCategory = "facilities"
)

const AnonymousName = "Anonymous"

type Feedback struct {
	Base
	UserID   *int64           `db:"user_id"`
	UserName string           `db:"user_name"`
	Rating   int              `db:"rating"` // 1-5
	Comment  string           `db:"comment"`
	Category FeedbackCategory `db:"category"`
}

type SupportTicket struct {
	Base
	Username string `db:"username"`
	Message  string `db:"message"`
}
