package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT.Secret, log))

		// POST /api/booking - identity comes from the token, not the body
		r.Post("/api/booking", bookingHandler.CreateBooking)

		// GET /api/bookings - newest first, ?user_id= | ?mine=true
		r.Get("/api/bookings", bookingHandler.ListBookings)
		r.Post("/api/bookings", bookingHandler.CreateBooking)
	})
}

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT.Secret, log))

		r.Post("/api/room-service", orderHandler.PlaceOrder)
		r.Get("/api/room-service", orderHandler.ListOrders)
		r.Delete("/api/room-service", orderHandler.DeleteOrder)
	})
}

func wirePayment(
	r chi.Router,
	paymentHandler *adaptor.PaymentHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT.Secret, log))

		r.Post("/api/payment", paymentHandler.RecordPayment)
		r.Get("/api/payments", paymentHandler.ListPayments)
	})
}
