package adaptor

import (
	"net/http"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type FeedbackHandler struct {
	service usecase.FeedbackService
	log     *zap.Logger
}

func NewFeedbackHandler(service usecase.FeedbackService, log *zap.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		service: service,
		log:     log.With(zap.String("handler", "feedback")),
	}
}

// SubmitFeedback handles POST /api/feedback (token optional)
func (h *FeedbackHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitFeedbackRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	var identity *utils.Identity
	if id, ok := utils.GetIdentityFromContext(r.Context()); ok {
		identity = &id
	}

	feedback, err := h.service.SubmitFeedback(r.Context(), identity, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "submit feedback")
		return
	}

	utils.ResponseCreated(w, "Feedback submitted", feedback)
}

// ListFeedback handles GET /api/feedback
func (h *FeedbackHandler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListFeedback(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list feedback")
		return
	}

	utils.ResponseSuccess(w, "success", items)
}

// SubmitSupportTicket handles POST /api/support
func (h *FeedbackHandler) SubmitSupportTicket(w http.ResponseWriter, r *http.Request) {
	var req request.SupportTicketRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	ticket, err := h.service.SubmitSupportTicket(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "submit support ticket")
		return
	}

	utils.ResponseSuccess(w, "Support request received", ticket)
}
