package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Booking struct {
	Base
	UserID          int64           `db:"user_id"`
	Username        string          `db:"username"`
	RoomID          int64           `db:"room_id"`
	RoomType        RoomType        `db:"room_type"`
	CheckIn         time.Time       `db:"check_in"`
	CheckOut        time.Time       `db:"check_out"`
	Nights          int             `db:"nights"`
	GuestCount      int             `db:"guest_count"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	SpecialRequests *string         `db:"special_requests"`
}

// BookingDetail is a booking joined with its room and guest for listings.
type BookingDetail struct {
	Booking
	RoomNumber string `db:"room_number"`
	UserName   string `db:"user_name"`
}

type BookingFilter struct {
	UserID *int64
	Limit  int
	Offset int
}
