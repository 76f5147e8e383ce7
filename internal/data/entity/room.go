package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

type RoomType string

const (
	RoomTypeStandard RoomType = "standard"
	RoomTypeDeluxe   RoomType = "deluxe"
	RoomTypeSuite    RoomType = "suite"
)

// ParseRoomType accepts the stored value or a display label such as
// "Deluxe Room", case-insensitively.
func ParseRoomType(label string) (RoomType, bool) {
	s := strings.ToLower(strings.TrimSpace(label))
	s = strings.TrimSpace(strings.TrimSuffix(s, " room"))

	switch RoomType(s) {
	case RoomTypeStandard, RoomTypeDeluxe, RoomTypeSuite:
		return RoomType(s), true
	}
	return "", false
}

func (t RoomType) Label() string {
	switch t {
	case RoomTypeStandard:
		return "Standard Room"
	case RoomTypeDeluxe:
		return "Deluxe Room"
	case RoomTypeSuite:
		return "Suite"
	}
	return string(t)
}

type Room struct {
	Base
	RoomNumber    string          `db:"room_number"`
	RoomType      RoomType        `db:"room_type"`
	PricePerNight decimal.Decimal `db:"price_per_night"`
	Description   string          `db:"description"`
	Capacity      int             `db:"capacity"`
}
