package request

type SubmitFeedbackRequest struct {
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Comment  string `json:"comment" validate:"required,max=2000"`
	Category string `json:"category" validate:"required,oneof=general rooms services dining staff facilities"`
}

type SupportTicketRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Message  string `json:"message" validate:"required,max=5000"`
}
