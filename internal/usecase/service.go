package usecase

import (
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/broker"
	"hotel-booking/pkg/cache"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	User     UserService
	Catalog  CatalogService
	Booking  BookingService
	Order    OrderService
	Payment  PaymentService
	Feedback FeedbackService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	cache *cache.JSONCache,
	events broker.Publisher,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, log),
		User:     NewUserService(repo.User, log),
		Catalog:  NewCatalogService(repo, cache, log),
		Booking:  NewBookingService(repo, events, log),
		Order:    NewOrderService(repo, events, log),
		Payment:  NewPaymentService(repo, events, log),
		Feedback: NewFeedbackService(repo, log),
	}
}
