package entity

import (
	"github.com/shopspring/decimal"
)

// RoomServiceOrder is one ordered item. There is no order aggregate, a
// submission with three items produces three rows.
type RoomServiceOrder struct {
	Base
	UserID     int64           `db:"user_id"`
	Username   string          `db:"username"`
	ItemName   string          `db:"item_name"`
	UnitPrice  decimal.Decimal `db:"unit_price"`
	Quantity   int             `db:"quantity"`
	TotalPrice decimal.Decimal `db:"total_price"`
}
