package service

import (
	"context"
	"io"
	"reflect"
	"testing"

	"airseat/internal/inventory/repository"
	"airseat/pkg/config"
	"airseat/pkg/logger"
	"airseat/pkg/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockAirportRepository struct {
	findByCodeFunc     func(ctx context.Context, code string) (*model.Airport, error)
	findByIDFunc       func(ctx context.Context, id primitive.ObjectID) (*model.Airport, error)
	findByFlightIDFunc func(ctx context.Context, flightID string) (*model.Airport, error)
	bookSeatFunc       func(ctx context.Context, flightID, seatID string, occupant model.Occupant) (int64, error)
}

func (m *mockAirportRepository) FindByCode(ctx context.Context, code string) (*model.Airport, error) {
	if m.findByCodeFunc != nil {
		return m.findByCodeFunc(ctx, code)
	}
	return nil, repository.ErrNotFound
}

func (m *mockAirportRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Airport, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockAirportRepository) FindByFlightID(ctx context.Context, flightID string) (*model.Airport, error) {
	if m.findByFlightIDFunc != nil {
		return m.findByFlightIDFunc(ctx, flightID)
	}
	return nil, repository.ErrNotFound
}

func (m *mockAirportRepository) BookSeat(ctx context.Context, flightID, seatID string, occupant model.Occupant) (int64, error) {
	if m.bookSeatFunc != nil {
		return m.bookSeatFunc(ctx, flightID, seatID, occupant)
	}
	return 0, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{
			Level:  "error",
			Output: io.Discard,
		}),
	}
}

// fixture: MXP with flights to PMV and LIN, plus one dangling reference.
type fixture struct {
	origin  model.Airport
	pmv     model.Airport
	lin     model.Airport
	unknown primitive.ObjectID
}

func newFixture() *fixture {
	f := &fixture{
		pmv: model.Airport{
			ID:      primitive.NewObjectID(),
			Code:    "PMV",
			Name:    "Del Caribe",
			Country: "Venezuela",
		},
		lin: model.Airport{
			ID:      primitive.NewObjectID(),
			Code:    "LIN",
			Name:    "Milano Linate",
			Country: "Italy",
		},
		unknown: primitive.NewObjectID(),
	}
	f.origin = model.Airport{
		ID:      primitive.NewObjectID(),
		Code:    "MXP",
		Name:    "Milano Malpensa",
		Country: "Italy",
		Flights: []model.Flight{
			{
				ID:             "FL-100",
				Destination:    f.pmv.ID,
				PricePerPerson: 250.00,
				Seats: []model.Seat{
					{ID: "1A", Status: model.SeatVacant},
					{ID: "1B", Status: model.SeatBooked},
					{ID: "2A", Status: model.SeatVacant},
					{ID: "2B", Status: model.SeatVacant},
				},
			},
			{
				ID:          "FL-200",
				Destination: f.unknown,
			},
			{
				ID:             "FL-300",
				Destination:    f.lin.ID,
				PricePerPerson: 80.00,
				Seats: []model.Seat{
					{ID: "1A", Status: model.SeatBooked},
				},
			},
		},
	}
	return f
}

func (f *fixture) repo() *mockAirportRepository {
	return &mockAirportRepository{
		findByCodeFunc: func(ctx context.Context, code string) (*model.Airport, error) {
			if code == f.origin.Code {
				airport := f.origin
				return &airport, nil
			}
			return nil, repository.ErrNotFound
		},
		findByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*model.Airport, error) {
			switch id {
			case f.pmv.ID:
				airport := f.pmv
				return &airport, nil
			case f.lin.ID:
				airport := f.lin
				return &airport, nil
			}
			return nil, repository.ErrNotFound
		},
	}
}

func TestFlightsFrom(t *testing.T) {
	f := newFixture()
	svc := NewRouteService(f.repo(), testConfig())

	flights, err := svc.FlightsFrom(context.Background(), "MXP")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// FL-200 has a dangling destination and must be silently excluded.
	if len(flights) != 2 {
		t.Fatalf("expected 2 destinations, got %d: %v", len(flights), flights)
	}

	pmv, ok := flights["PMV"]
	if !ok {
		t.Fatal("expected destination PMV")
	}
	if pmv.FlightID != "FL-100" || pmv.Name != "Del Caribe" || pmv.Country != "Venezuela" {
		t.Errorf("unexpected PMV option: %+v", pmv)
	}

	lin, ok := flights["LIN"]
	if !ok {
		t.Fatal("expected destination LIN")
	}
	if lin.FlightID != "FL-300" {
		t.Errorf("unexpected LIN option: %+v", lin)
	}
}

func TestFlightsFrom_UnknownAirport(t *testing.T) {
	f := newFixture()
	svc := NewRouteService(f.repo(), testConfig())

	flights, err := svc.FlightsFrom(context.Background(), "ZZZ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(flights) != 0 {
		t.Errorf("expected no destinations, got %v", flights)
	}
}

func TestFlightsFrom_EmptyCode(t *testing.T) {
	svc := NewRouteService(&mockAirportRepository{}, testConfig())

	if _, err := svc.FlightsFrom(context.Background(), ""); err == nil {
		t.Error("expected an error for an empty airport code")
	}
}

func TestAvailableSeats(t *testing.T) {
	f := newFixture()
	svc := NewRouteService(f.repo(), testConfig())

	seats, err := svc.AvailableSeats(context.Background(), "MXP", "PMV")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{"1A", "2A", "2B"}
	if !reflect.DeepEqual(seats, expected) {
		t.Errorf("expected seats %v in storage order, got %v", expected, seats)
	}
}

func TestAvailableSeats_Idempotent(t *testing.T) {
	f := newFixture()
	svc := NewRouteService(f.repo(), testConfig())

	first, err := svc.AvailableSeats(context.Background(), "MXP", "PMV")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.AvailableSeats(context.Background(), "MXP", "PMV")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated lookups must match: %v vs %v", first, second)
	}
}

func TestAvailableSeats_FullFlight(t *testing.T) {
	f := newFixture()
	svc := NewRouteService(f.repo(), testConfig())

	seats, err := svc.AvailableSeats(context.Background(), "MXP", "LIN")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seats) != 0 {
		t.Errorf("expected no vacant seats, got %v", seats)
	}
}

func TestAvailableSeats_NoRouteAndNoAirport(t *testing.T) {
	f := newFixture()
	svc := NewRouteService(f.repo(), testConfig())

	// Callers must not be able to tell "no route" from "no airport".
	noRoute, err := svc.AvailableSeats(context.Background(), "MXP", "JFK")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	noAirport, err := svc.AvailableSeats(context.Background(), "ZZZ", "PMV")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(noRoute) != 0 || len(noAirport) != 0 {
		t.Errorf("expected empty results, got %v and %v", noRoute, noAirport)
	}
}

func TestAvailableSeats_FirstMatchingFlightWins(t *testing.T) {
	f := newFixture()
	// Second flight serving the same route; must never be reached.
	f.origin.Flights = append(f.origin.Flights, model.Flight{
		ID:          "FL-900",
		Destination: f.pmv.ID,
		Seats: []model.Seat{
			{ID: "9A", Status: model.SeatVacant},
		},
	})
	svc := NewRouteService(f.repo(), testConfig())

	seats, err := svc.AvailableSeats(context.Background(), "MXP", "PMV")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, seat := range seats {
		if seat == "9A" {
			t.Fatal("seats must come from the first matching flight in storage order")
		}
	}
}
