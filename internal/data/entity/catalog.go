package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Service struct {
	ID          int64           `db:"id"`
	Name        string          `db:"name"`
	Category    string          `db:"category"`
	Description string          `db:"description"`
	Price       decimal.Decimal `db:"price"`
	Available   bool            `db:"available"`
}

type Offer struct {
	ID              int64     `db:"id"`
	Title           string    `db:"title"`
	Description     string    `db:"description"`
	DiscountPercent int       `db:"discount_percent"`
	ValidUntil      time.Time `db:"valid_until"`
	Active          bool      `db:"active"`
}
