package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireFeedback(
	r chi.Router,
	feedbackHandler *adaptor.FeedbackHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// A token, when sent, names the author; otherwise "Anonymous"
	r.With(middleware.OptionalAuth(config.JWT.Secret, log)).Post("/api/feedback", feedbackHandler.SubmitFeedback)
	r.Get("/api/feedback", feedbackHandler.ListFeedback)
	r.Post("/api/support", feedbackHandler.SubmitSupportTicket)
}
