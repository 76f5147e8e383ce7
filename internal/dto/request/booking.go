package request

import "encoding/json"

// CreateBookingRequest names the room either by id or by type label
// ("Deluxe Room", "suite"). Dates are YYYY-MM-DD or RFC3339.
type CreateBookingRequest struct {
	RoomID          *int64  `json:"room_id,omitempty" validate:"required_without=Room,omitempty,gt=0"`
	Room            string  `json:"room,omitempty" validate:"required_without=RoomID,omitempty,max=50"`
	CheckIn         string  `json:"check_in" validate:"required"`
	CheckOut        string  `json:"check_out" validate:"required"`
	Guests          int     `json:"guests" validate:"required,min=1,max=20"`
	SpecialRequests *string `json:"special_requests,omitempty" validate:"omitempty,max=500"`
}

// UnmarshalJSON also accepts the camelCase field names browser clients send.
func (r *CreateBookingRequest) UnmarshalJSON(b []byte) error {
	type plain CreateBookingRequest
	var aux struct {
		plain
		RoomIDCamel     *int64  `json:"roomId"`
		CheckInCamel    string  `json:"checkIn"`
		CheckOutCamel   string  `json:"checkOut"`
		GuestCount      int     `json:"guestCount"`
		SpecialRequests *string `json:"specialRequests"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	*r = CreateBookingRequest(aux.plain)
	if r.RoomID == nil {
		r.RoomID = aux.RoomIDCamel
	}
	if r.CheckIn == "" {
		r.CheckIn = aux.CheckInCamel
	}
	if r.CheckOut == "" {
		r.CheckOut = aux.CheckOutCamel
	}
	if r.Guests == 0 {
		r.Guests = aux.GuestCount
	}
	if r.SpecialRequests == nil {
		r.SpecialRequests = aux.SpecialRequests
	}
	return nil
}

type ListBookingsRequest struct {
	PaginatedRequest
	UserID *int64
	Mine   bool
}
