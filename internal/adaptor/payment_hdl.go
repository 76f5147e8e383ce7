package adaptor

import (
	"net/http"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// RecordPayment handles POST /api/payment (protected)
func (h *PaymentHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	identity, ok := mustIdentity(w, r)
	if !ok {
		return
	}

	var req request.RecordPaymentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.RecordPayment(r.Context(), identity, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "record payment")
		return
	}

	utils.ResponseSuccess(w, "Payment recorded", result)
}

// ListPayments handles GET /api/payments?user_id=|username= (protected)
func (h *PaymentHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	identity, ok := mustIdentity(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	req := &request.ListPaymentsRequest{Username: query.Get("username")}

	if raw := query.Get("user_id"); raw != "" {
		id, ok := utils.ParseID(raw)
		if !ok {
			utils.ResponseBadRequest(w, "Invalid user_id", nil)
			return
		}
		req.UserID = &id
	}

	payments, err := h.service.ListPayments(r.Context(), identity, req)
	if err != nil {
		handleServiceError(w, h.log, err, "list payments")
		return
	}

	utils.ResponseSuccess(w, "success", payments)
}
