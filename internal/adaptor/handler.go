package adaptor

import (
	"hotel-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Catalog  *CatalogHandler
	Booking  *BookingHandler
	Order    *OrderHandler
	Payment  *PaymentHandler
	Feedback *FeedbackHandler
	Health   *HealthHandler
}

func NewHandler(service *usecase.Service, db Pinger, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		User:     NewUserHandler(service.User, log),
		Catalog:  NewCatalogHandler(service.Catalog, log),
		Booking:  NewBookingHandler(service.Booking, log),
		Order:    NewOrderHandler(service.Order, log),
		Payment:  NewPaymentHandler(service.Payment, log),
		Feedback: NewFeedbackHandler(service.Feedback, log),
		Health:   NewHealthHandler(db, log),
	}
}
