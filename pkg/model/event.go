package model

import "time"

// SeatBookedEvent is published after a booking commit is confirmed by
// the store. Publishing is best effort and never changes the booking
// outcome.
type SeatBookedEvent struct {
	EventID    string    `json:"event_id"`
	FlightID   string    `json:"flight_id"`
	SeatID     string    `json:"seat_id"`
	DocumentID string    `json:"document_id"`
	Price      float64   `json:"price"`
	OccurredAt time.Time `json:"occurred_at"`
}
