package response

import (
	"time"

	"hotel-booking/internal/data/entity"

	"github.com/shopspring/decimal"
)

type OrderResponse struct {
	ID         int64           `json:"id"`
	UserID     int64           `json:"user_id"`
	Username   string          `json:"username"`
	ItemName   string          `json:"item_name"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
}

// PlaceOrderResponse reports partial acceptance: skipped items are not an error.
type PlaceOrderResponse struct {
	Accepted int             `json:"accepted"`
	Skipped  int             `json:"skipped"`
	Orders   []OrderResponse `json:"orders"`
}

func OrderToResponse(o *entity.RoomServiceOrder) OrderResponse {
	return OrderResponse{
		ID:         o.ID,
		UserID:     o.UserID,
		Username:   o.Username,
		ItemName:   o.ItemName,
		UnitPrice:  o.UnitPrice,
		Quantity:   o.Quantity,
		TotalPrice: o.TotalPrice,
		CreatedAt:  o.CreatedAt,
	}
}
