package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"airseat/pkg/logger"
	"airseat/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type mockRouteService struct {
	flightsFromFunc    func(ctx context.Context, airportCode string) (map[string]model.RouteOption, error)
	availableSeatsFunc func(ctx context.Context, departureCode, arrivalCode string) ([]string, error)
}

func (m *mockRouteService) FlightsFrom(ctx context.Context, airportCode string) (map[string]model.RouteOption, error) {
	if m.flightsFromFunc != nil {
		return m.flightsFromFunc(ctx, airportCode)
	}
	return map[string]model.RouteOption{}, nil
}

func (m *mockRouteService) AvailableSeats(ctx context.Context, departureCode, arrivalCode string) ([]string, error) {
	if m.availableSeatsFunc != nil {
		return m.availableSeatsFunc(ctx, departureCode, arrivalCode)
	}
	return []string{}, nil
}

func newTestRouter(svc *mockRouteService) *httprouter.Router {
	log := logger.New(logger.Config{Level: "error", Output: io.Discard})
	router := httprouter.New()
	NewRouteHandler(svc, log).RegisterRoutes(router)
	return router
}

func TestFlightsFrom(t *testing.T) {
	svc := &mockRouteService{
		flightsFromFunc: func(ctx context.Context, airportCode string) (map[string]model.RouteOption, error) {
			if airportCode != "MXP" {
				t.Errorf("expected code MXP, got %s", airportCode)
			}
			return map[string]model.RouteOption{
				"PMV": {FlightID: "FL-100", Code: "PMV", Name: "Del Caribe", Country: "Venezuela"},
			}, nil
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/airports/MXP/flights", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data map[string]model.RouteOption `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data["PMV"].FlightID != "FL-100" {
		t.Errorf("unexpected payload: %+v", resp.Data)
	}
}

func TestAvailableSeats(t *testing.T) {
	svc := &mockRouteService{
		availableSeatsFunc: func(ctx context.Context, departureCode, arrivalCode string) ([]string, error) {
			if departureCode != "MXP" || arrivalCode != "PMV" {
				t.Errorf("unexpected route %s -> %s", departureCode, arrivalCode)
			}
			return []string{"1A", "2A"}, nil
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/routes/MXP/PMV/seats", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data []string `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Data) != 2 || resp.Data[0] != "1A" {
		t.Errorf("unexpected seats: %v", resp.Data)
	}
}

func TestAvailableSeats_EmptyResultIsOK(t *testing.T) {
	router := newTestRouter(&mockRouteService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/routes/MXP/JFK/seats", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("no route must not be an error, got %d", rec.Code)
	}
}
