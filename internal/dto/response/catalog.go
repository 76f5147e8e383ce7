package response

import (
	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/utils"

	"github.com/shopspring/decimal"
)

type RoomResponse struct {
	ID            int64           `json:"id"`
	RoomNumber    string          `json:"room_number"`
	RoomType      entity.RoomType `json:"room_type"`
	Label         string          `json:"label"`
	PricePerNight decimal.Decimal `json:"price_per_night"`
	Description   string          `json:"description"`
	Capacity      int             `json:"capacity"`
}

type ServiceResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

type OfferResponse struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	DiscountPercent int    `json:"discount_percent"`
	ValidUntil      string `json:"valid_until"`
}

func RoomToResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		ID:            room.ID,
		RoomNumber:    room.RoomNumber,
		RoomType:      room.RoomType,
		Label:         room.RoomType.Label(),
		PricePerNight: room.PricePerNight,
		Description:   room.Description,
		Capacity:      room.Capacity,
	}
}

func ServiceToResponse(s *entity.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Category:    s.Category,
		Description: s.Description,
		Price:       s.Price,
	}
}

func OfferToResponse(o *entity.Offer) OfferResponse {
	return OfferResponse{
		ID:              o.ID,
		Title:           o.Title,
		Description:     o.Description,
		DiscountPercent: o.DiscountPercent,
		ValidUntil:      o.ValidUntil.Format(utils.DateLayout),
	}
}
