package errors

import "errors"

// Rejection causes. All of them collapse to a false booking outcome at
// the service boundary; they exist so logs can tell the cases apart.
var (
	ErrFlightNotFound = errors.New("flight not found")

	ErrPriceUnavailable = errors.New("price per person missing or invalid")

	ErrSeatUnavailable = errors.New("seat not found or already booked")

	ErrInsufficientBalance = errors.New("insufficient balance")

	ErrLostCommitRace = errors.New("seat was booked concurrently")
)
