package model

// BookingRequest is the transport-level payload for a booking attempt.
type BookingRequest struct {
	FlightID string  `json:"flight_id" validate:"required,min=1,max=40"`
	SeatID   string  `json:"seat_id" validate:"required,seat_code"`
	Buyer    *Person `json:"buyer" validate:"required"`
}

// BookingResult reports the outcome. Buyer echoes the caller's record:
// on success its balance is debited and the previous balance and charge
// are filled in; on failure it is returned untouched.
type BookingResult struct {
	Booked bool    `json:"booked"`
	Buyer  *Person `json:"buyer"`
}
