package repository

import (
	"hotel-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Room     RoomRepository
	Booking  BookingRepository
	Order    OrderRepository
	Payment  PaymentRepository
	Feedback FeedbackRepository
	Support  SupportRepository
	Catalog  CatalogRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Room:     NewRoomRepository(db, log),
		Booking:  NewBookingRepository(db, log),
		Order:    NewOrderRepository(db, log),
		Payment:  NewPaymentRepository(db, log),
		Feedback: NewFeedbackRepository(db, log),
		Support:  NewSupportRepository(db, log),
		Catalog:  NewCatalogRepository(db, log),
	}
}
