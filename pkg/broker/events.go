// Package broker publishes domain events to RabbitMQ.
package broker

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RoutingBookingCreated  = "booking.created"
	RoutingOrderPlaced     = "order.placed"
	RoutingPaymentRecorded = "payment.recorded"
)

type BookingCreatedEvent struct {
	BookingID   int64           `json:"booking_id"`
	UserID      int64           `json:"user_id"`
	RoomID      int64           `json:"room_id"`
	RoomType    string          `json:"room_type"`
	CheckIn     string          `json:"check_in"`
	CheckOut    string          `json:"check_out"`
	Nights      int             `json:"nights"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
}

type OrderPlacedEvent struct {
	UserID   int64   `json:"user_id"`
	OrderIDs []int64 `json:"order_ids"`
	Accepted int     `json:"accepted"`
	Skipped  int     `json:"skipped"`
}

type PaymentRecordedEvent struct {
	PaymentID     int64           `json:"payment_id"`
	TransactionID string          `json:"transaction_id"`
	UserID        int64           `json:"user_id"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	OrderID       *int64          `json:"order_id,omitempty"`
	OrderSettled  bool            `json:"order_settled"`
}
