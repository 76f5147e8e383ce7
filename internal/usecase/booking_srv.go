package usecase

import (
	"context"
	"fmt"
	"strings"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/broker"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, identity utils.Identity, req *request.CreateBookingRequest) (*response.BookingCreatedResponse, error)
	ListBookings(ctx context.Context, identity utils.Identity, req *request.ListBookingsRequest) (*response.PaginatedResponse[response.BookingResponse], error)
}

type bookingService struct {
	repo   *repository.Repository
	events broker.Publisher
	log    *zap.Logger
}

func NewBookingService(repo *repository.Repository, events broker.Publisher, log *zap.Logger) BookingService {
	return &bookingService{
		repo:   repo,
		events: events,
		log:    log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, identity utils.Identity, req *request.CreateBookingRequest) (*response.BookingCreatedResponse, error) {
	req.Room = strings.TrimSpace(req.Room)

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	checkIn, err := utils.ParseStayDate(req.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("%w: check_in: %v", ErrValidation, err)
	}
	checkOut, err := utils.ParseStayDate(req.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("%w: check_out: %v", ErrValidation, err)
	}

	nights, err := utils.Nights(checkIn, checkOut)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	room, err := s.resolveRoom(ctx, req)
	if err != nil {
		return nil, err
	}

	booking := &entity.Booking{
		UserID:          identity.UserID,
		Username:        displayName(identity.Name, identity.Email),
		RoomID:          room.ID,
		RoomType:        room.RoomType,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Nights:          nights,
		GuestCount:      req.Guests,
		TotalAmount:     utils.StayTotal(room.PricePerNight, nights),
		SpecialRequests: req.SpecialRequests,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.Int64("booking_id", booking.ID),
		zap.Int64("user_id", booking.UserID),
		zap.Int64("room_id", booking.RoomID),
		zap.Int("nights", nights),
		zap.String("total_amount", booking.TotalAmount.StringFixed(2)),
	)

	publishEvent(ctx, s.events, s.log, broker.RoutingBookingCreated, broker.BookingCreatedEvent{
		BookingID:   booking.ID,
		UserID:      booking.UserID,
		RoomID:      booking.RoomID,
		RoomType:    string(booking.RoomType),
		CheckIn:     checkIn.Format(utils.DateLayout),
		CheckOut:    checkOut.Format(utils.DateLayout),
		Nights:      nights,
		TotalAmount: booking.TotalAmount,
		CreatedAt:   booking.CreatedAt,
	})

	resp := response.BookingToCreatedResponse(booking)
	return &resp, nil
}

// resolveRoom finds the room by id, or by type label when no id was given.
func (s *bookingService) resolveRoom(ctx context.Context, req *request.CreateBookingRequest) (*entity.Room, error) {
	if req.RoomID != nil {
		room, err := s.repo.Room.FindByID(ctx, *req.RoomID)
		if err != nil {
			return nil, fmt.Errorf("find room: %w", err)
		}
		if room == nil {
			return nil, fmt.Errorf("%w: room %d", ErrNotFound, *req.RoomID)
		}
		return room, nil
	}

	roomType, ok := entity.ParseRoomType(req.Room)
	if !ok {
		return nil, fmt.Errorf("%w: room type %q", ErrNotFound, req.Room)
	}

	room, err := s.repo.Room.FindFirstByType(ctx, roomType)
	if err != nil {
		return nil, fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("%w: no %s room", ErrNotFound, roomType)
	}
	return room, nil
}

func (s *bookingService) ListBookings(ctx context.Context, identity utils.Identity, req *request.ListBookingsRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 {
		req.PerPage = 10
	}
	req.PerPage = req.Limit()

	filter := entity.BookingFilter{
		UserID: req.UserID,
		Limit:  req.Limit(),
		Offset: req.Offset(),
	}
	if req.Mine {
		filter.UserID = &identity.UserID
	}

	bookings, err := s.repo.Booking.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	total, err := s.repo.Booking.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	out := make([]response.BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = response.BookingToResponse(b)
	}

	return response.NewPaginatedResponse(out, req.Page, req.PerPage, total), nil
}
