package request

import "github.com/shopspring/decimal"

// OrderItemRequest has no validate tags. Invalid items are skipped, not rejected.
type OrderItemRequest struct {
	ItemName string           `json:"item_name"`
	Price    *decimal.Decimal `json:"price"`
	Quantity int              `json:"quantity"`
}

type PlaceOrderRequest struct {
	Items []OrderItemRequest `json:"items" validate:"required,min=1"`
}
