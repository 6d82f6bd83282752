package service

import (
	"context"
	"errors"

	"airseat/internal/inventory/repository"
	"airseat/pkg/config"
	apperrors "airseat/pkg/errors"
	"airseat/pkg/model"
)

// RouteService resolves flights between airports and enumerates vacant
// seats. It never distinguishes "no route" from "no seats": both are an
// empty result, not an error.
type RouteService interface {
	FlightsFrom(ctx context.Context, airportCode string) (map[string]model.RouteOption, error)
	AvailableSeats(ctx context.Context, departureCode, arrivalCode string) ([]string, error)
}

type routeService struct {
	repo repository.AirportRepository
	cfg  *config.Config
}

func NewRouteService(repo repository.AirportRepository, cfg *config.Config) RouteService {
	return &routeService{
		repo: repo,
		cfg:  cfg,
	}
}

func (s *routeService) FlightsFrom(ctx context.Context, airportCode string) (map[string]model.RouteOption, error) {
	if airportCode == "" {
		return nil, apperrors.InvalidInput("Airport code cannot be empty")
	}

	options := map[string]model.RouteOption{}

	airport, err := s.repo.FindByCode(ctx, airportCode)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return options, nil
		}
		return nil, apperrors.Internal("Failed to look up airport", err)
	}

	for i := range airport.Flights {
		flight := &airport.Flights[i]

		destination, err := s.repo.FindByID(ctx, flight.Destination)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				// Dangling destination reference; referential integrity
				// is assumed, not enforced, so the flight is skipped.
				s.cfg.Log.Warn("Skipping flight with unresolvable destination",
					"flight_id", flight.ID,
					"origin", airportCode,
				)
				continue
			}
			return nil, apperrors.Internal("Failed to resolve destination airport", err)
		}

		options[destination.Code] = model.RouteOption{
			FlightID: flight.ID,
			Code:     destination.Code,
			Name:     destination.Name,
			Country:  destination.Country,
		}
	}

	s.cfg.Log.Debug("Resolved flights from airport",
		"origin", airportCode,
		"destinations", len(options),
	)
	return options, nil
}

func (s *routeService) AvailableSeats(ctx context.Context, departureCode, arrivalCode string) ([]string, error) {
	if departureCode == "" || arrivalCode == "" {
		return nil, apperrors.InvalidInput("Departure and arrival codes are required")
	}

	airport, err := s.repo.FindByCode(ctx, departureCode)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return []string{}, nil
		}
		return nil, apperrors.Internal("Failed to look up departure airport", err)
	}

	for i := range airport.Flights {
		flight := &airport.Flights[i]

		destination, err := s.repo.FindByID(ctx, flight.Destination)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return nil, apperrors.Internal("Failed to resolve destination airport", err)
		}

		// First flight serving the route wins, in storage order.
		if destination.Code == arrivalCode {
			seats := flight.VacantSeatIDs()
			s.cfg.Log.Debug("Enumerated vacant seats",
				"flight_id", flight.ID,
				"departure", departureCode,
				"arrival", arrivalCode,
				"vacant", len(seats),
			)
			return seats, nil
		}
	}

	return []string{}, nil
}
