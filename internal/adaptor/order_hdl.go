package adaptor

import (
	"net/http"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log.With(zap.String("handler", "room_service")),
	}
}

// PlaceOrder handles POST /api/room-service (protected)
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	identity, ok := mustIdentity(w, r)
	if !ok {
		return
	}

	var req request.PlaceOrderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.PlaceOrder(r.Context(), identity, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "place order")
		return
	}

	utils.ResponseSuccess(w, "Order placed", result)
}

// ListOrders handles GET /api/room-service?user_id= (protected)
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	identity, ok := mustIdentity(w, r)
	if !ok {
		return
	}

	var userID *int64
	if raw := r.URL.Query().Get("user_id"); raw != "" {
		id, ok := utils.ParseID(raw)
		if !ok {
			utils.ResponseBadRequest(w, "Invalid user_id", nil)
			return
		}
		userID = &id
	}

	orders, err := h.service.ListOrders(r.Context(), identity, userID)
	if err != nil {
		handleServiceError(w, h.log, err, "list orders")
		return
	}

	utils.ResponseSuccess(w, "success", orders)
}

// DeleteOrder handles DELETE /api/room-service?order_id= (protected)
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	identity, ok := mustIdentity(w, r)
	if !ok {
		return
	}

	orderID, ok := utils.ParseID(r.URL.Query().Get("order_id"))
	if !ok {
		utils.ResponseBadRequest(w, "order_id is required", nil)
		return
	}

	if err := h.service.DeleteOrder(r.Context(), identity, orderID); err != nil {
		handleServiceError(w, h.log, err, "delete order")
		return
	}

	utils.ResponseSuccess(w, "Order deleted", nil)
}
