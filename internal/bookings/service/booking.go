package service

import (
	"context"
	"errors"
	"time"

	bookingserrors "airseat/internal/bookings/errors"
	"airseat/internal/inventory/repository"
	"airseat/pkg/config"
	apperrors "airseat/pkg/errors"
	"airseat/pkg/keylock"
	"airseat/pkg/model"

	"github.com/google/uuid"
)

// BookingService is the transaction engine. BookFlight returns whether
// the booking went through; every rejection cause (unknown flight,
// missing price, taken seat, insolvent buyer, lost commit race) is an
// ordinary false outcome. A non-nil error means the store itself
// failed and nothing can be said about the seat.
type BookingService interface {
	BookFlight(ctx context.Context, flightID, seatID string, buyer *model.Person) (bool, error)
}

// EventPublisher emits a seat-booked event after a confirmed commit.
type EventPublisher interface {
	PublishSeatBooked(ctx context.Context, event model.SeatBookedEvent) error
}

type bookingService struct {
	repo   repository.AirportRepository
	locks  keylock.Manager
	events EventPublisher
	cfg    *config.Config
}

// NewBookingService wires the engine. events may be nil, in which case
// no events are published.
func NewBookingService(
	repo repository.AirportRepository,
	locks keylock.Manager,
	events EventPublisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:   repo,
		locks:  locks,
		events: events,
		cfg:    cfg,
	}
}

func (s *bookingService) BookFlight(ctx context.Context, flightID, seatID string, buyer *model.Person) (bool, error) {
	if flightID == "" || seatID == "" || buyer == nil {
		return false, apperrors.InvalidInput("Flight ID, seat ID and buyer are required")
	}

	// The whole check-then-commit sequence runs under a per-seat lock
	// so outcomes within this process are deterministic. The lock is
	// not what guarantees at-most-one booking: the conditional write
	// below stays correct without it.
	key := flightID + "/" + seatID
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	airport, err := s.repo.FindByFlightID(ctx, flightID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return s.reject(flightID, seatID, bookingserrors.ErrFlightNotFound), nil
		}
		return false, apperrors.Internal("Failed to look up flight", err)
	}

	flight := airport.FlightByID(flightID)
	if flight == nil {
		return s.reject(flightID, seatID, bookingserrors.ErrFlightNotFound), nil
	}

	price := flight.PricePerPerson
	if price <= 0 {
		return s.reject(flightID, seatID, bookingserrors.ErrPriceUnavailable), nil
	}

	// Read-side vacancy check. This snapshot may already be stale; it
	// only saves a doomed conditional write.
	seat := flight.SeatByID(seatID)
	if seat == nil || seat.Status != model.SeatVacant {
		return s.reject(flightID, seatID, bookingserrors.ErrSeatUnavailable), nil
	}

	if buyer.Balance < price {
		return s.reject(flightID, seatID, bookingserrors.ErrInsufficientBalance), nil
	}

	modified, err := s.repo.BookSeat(ctx, flightID, seatID, buyer.OccupantAt(price))
	if err != nil {
		return false, apperrors.Internal("Failed to commit booking", err)
	}
	if modified != 1 {
		// Another caller's conditional write was accepted between our
		// read and our write. The buyer's balance stays untouched.
		return s.reject(flightID, seatID, bookingserrors.ErrLostCommitRace), nil
	}

	buyer.PreviousBalance = buyer.Balance
	buyer.LastCharge = price
	buyer.Balance = model.RoundToCents(buyer.Balance - price)

	s.cfg.Log.Info("Seat booked",
		"flight_id", flightID,
		"seat_id", seatID,
		"document_id", buyer.DocumentID,
		"price", price,
	)

	s.publishSeatBooked(ctx, flightID, seatID, buyer.DocumentID, price)

	return true, nil
}

func (s *bookingService) reject(flightID, seatID string, cause error) bool {
	s.cfg.Log.Info("Booking rejected",
		"flight_id", flightID,
		"seat_id", seatID,
		"reason", cause.Error(),
	)
	return false
}

// publishSeatBooked is best effort: a failed publish is logged and
// dropped, it never turns a committed booking into a failure.
func (s *bookingService) publishSeatBooked(ctx context.Context, flightID, seatID, documentID string, price float64) {
	if s.events == nil {
		return
	}

	event := model.SeatBookedEvent{
		EventID:    uuid.NewString(),
		FlightID:   flightID,
		SeatID:     seatID,
		DocumentID: documentID,
		Price:      price,
		OccurredAt: time.Now().UTC(),
	}

	if err := s.events.PublishSeatBooked(ctx, event); err != nil {
		s.cfg.Log.Warn("Failed to publish seat-booked event",
			"event_id", event.EventID,
			"flight_id", flightID,
			"seat_id", seatID,
			"error", err,
		)
	}
}
