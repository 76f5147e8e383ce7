package response

import (
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/utils"

	"github.com/shopspring/decimal"
)

type BookingCreatedResponse struct {
	BookingID   int64           `json:"booking_id"`
	RoomID      int64           `json:"room_id"`
	RoomType    entity.RoomType `json:"room_type"`
	CheckIn     string          `json:"check_in"`
	CheckOut    string          `json:"check_out"`
	Nights      int             `json:"nights"`
	GuestCount  int             `json:"guest_count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type BookingResponse struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"user_id"`
	UserName        string          `json:"user_name"`
	RoomID          int64           `json:"room_id"`
	RoomNumber      string          `json:"room_number"`
	RoomType        entity.RoomType `json:"room_type"`
	CheckIn         string          `json:"check_in"`
	CheckOut        string          `json:"check_out"`
	Nights          int             `json:"nights"`
	GuestCount      int             `json:"guest_count"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	SpecialRequests *string         `json:"special_requests,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

func BookingToCreatedResponse(b *entity.Booking) BookingCreatedResponse {
	return BookingCreatedResponse{
		BookingID:   b.ID,
		RoomID:      b.RoomID,
		RoomType:    b.RoomType,
		CheckIn:     b.CheckIn.Format(utils.DateLayout),
		CheckOut:    b.CheckOut.Format(utils.DateLayout),
		Nights:      b.Nights,
		GuestCount:  b.GuestCount,
		TotalAmount: b.TotalAmount,
	}
}

func BookingToResponse(b *entity.BookingDetail) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		UserID:          b.UserID,
		UserName:        b.UserName,
		RoomID:          b.RoomID,
		RoomNumber:      b.RoomNumber,
		RoomType:        b.RoomType,
		CheckIn:         b.CheckIn.Format(utils.DateLayout),
		CheckOut:        b.CheckOut.Format(utils.DateLayout),
		Nights:          b.Nights,
		GuestCount:      b.GuestCount,
		TotalAmount:     b.TotalAmount,
		SpecialRequests: b.SpecialRequests,
		CreatedAt:       b.CreatedAt,
	}
}
