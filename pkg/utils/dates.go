package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

var (
	ErrInvalidDate = errors.New("date must be YYYY-MM-DD or RFC3339")
	ErrInvalidStay = errors.New("check_out must be after check_in")
)

const day = 24 * time.Hour

// ParseStayDate accepts a calendar date or a full RFC3339 timestamp and
// returns the UTC calendar date it falls on. Stays are stored as DATE columns,
// so the time of day never reaches the ledger.
func ParseStayDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		y, m, d := t.UTC().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, ErrInvalidDate
}

// Nights is the number of started 24h periods between check-in and check-out.
// For dates from ParseStayDate that is the calendar day difference.
func Nights(checkIn, checkOut time.Time) (int, error) {
	diff := checkOut.Sub(checkIn)
	if diff <= 0 {
		return 0, ErrInvalidStay
	}
	nights := diff / day
	if diff%day != 0 {
		nights++
	}
	return int(nights), nil
}

// StayTotal is nightly price * nights.
func StayTotal(price decimal.Decimal, nights int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(nights)))
}
