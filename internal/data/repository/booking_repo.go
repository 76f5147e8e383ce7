package repository

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindAll(ctx context.Context, filter entity.BookingFilter) ([]*entity.BookingDetail, error)
	Count(ctx context.Context, filter entity.BookingFilter) (int64, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (user_id, username, room_id, room_type, check_in, check_out,
		                      nights, guest_count, total_amount, special_requests)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		booking.UserID,
		booking.Username,
		booking.RoomID,
		booking.RoomType,
		booking.CheckIn,
		booking.CheckOut,
		booking.Nights,
		booking.GuestCount,
		booking.TotalAmount,
		booking.SpecialRequests,
	).Scan(&booking.ID, &booking.CreatedAt)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.Int64("user_id", booking.UserID),
			zap.Int64("room_id", booking.RoomID),
		)
		return fmt.Errorf("create booking for user %d: %w", booking.UserID, err)
	}

	return nil
}

// FindAll lists bookings newest first, joined with the room number and the
// guest's account name.
func (r *bookingRepository) FindAll(ctx context.Context, filter entity.BookingFilter) ([]*entity.BookingDetail, error) {
	query := `
		SELECT b.id, b.user_id, b.username, b.room_id, b.room_type, b.check_in, b.check_out,
		       b.nights, b.guest_count, b.total_amount, b.special_requests, b.created_at,
		       COALESCE(r.room_number, ''), COALESCE(u.name, b.username)
		FROM bookings b
		LEFT JOIN rooms r ON r.id = b.room_id
		LEFT JOIN users u ON u.id = b.user_id
		WHERE ($1::BIGINT IS NULL OR b.user_id = $1)
		ORDER BY b.created_at DESC, b.id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, filter.UserID, filter.Limit, filter.Offset)
	if err != nil {
		r.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]*entity.BookingDetail, 0)
	for rows.Next() {
		var b entity.BookingDetail
		err := rows.Scan(
			&b.ID,
			&b.UserID,
			&b.Username,
			&b.RoomID,
			&b.RoomType,
			&b.CheckIn,
			&b.CheckOut,
			&b.Nights,
			&b.GuestCount,
			&b.TotalAmount,
			&b.SpecialRequests,
			&b.CreatedAt,
			&b.RoomNumber,
			&b.UserName,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) Count(ctx context.Context, filter entity.BookingFilter) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE ($1::BIGINT IS NULL OR user_id = $1)`

	var count int64
	if err := r.db.QueryRow(ctx, query, filter.UserID).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}
