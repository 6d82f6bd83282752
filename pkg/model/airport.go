package model

import (
	"math"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SeatStatus is the lifecycle state of a seat. Booking is the only
// defined transition; there is no way back to Vacant.
type SeatStatus string

const (
	SeatVacant SeatStatus = "Vacant"
	SeatBooked SeatStatus = "Booked"
)

// Airport is the root document of the inventory collection. Outbound
// flights are embedded; cross-airport references use the destination
// airport ObjectID, never a copy of its data.
type Airport struct {
	ID      primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Code    string             `json:"iata_code" bson:"iata_code"`
	Name    string             `json:"name" bson:"name"`
	Country string             `json:"country" bson:"country"`
	Size    int                `json:"size" bson:"size"`
	Flights []Flight           `json:"flights" bson:"flights"`
}

type Flight struct {
	ID             string             `json:"id" bson:"id"`
	Destination    primitive.ObjectID `json:"destination" bson:"destination"`
	Date           string             `json:"date" bson:"date"`
	Time           string             `json:"time" bson:"time"`
	Duration       string             `json:"duration" bson:"duration"`
	Operator       string             `json:"operator" bson:"operator"`
	PricePerPerson float64            `json:"price_per_person" bson:"price_per_person"`
	Seats          []Seat             `json:"seats" bson:"seats"`
}

// Seat carries occupant fields only when Booked; they are empty iff the
// seat is Vacant. Balance is the occupant balance recorded at booking
// time, kept for observability only.
type Seat struct {
	ID          string     `json:"id" bson:"id"`
	Status      SeatStatus `json:"status" bson:"status"`
	Name        string     `json:"name,omitempty" bson:"name,omitempty"`
	Surname     string     `json:"surname,omitempty" bson:"surname,omitempty"`
	DocumentID  string     `json:"document_id,omitempty" bson:"document_id,omitempty"`
	DateOfBirth string     `json:"date_of_birth,omitempty" bson:"date_of_birth,omitempty"`
	Balance     float64    `json:"balance,omitempty" bson:"balance,omitempty"`
}

// RouteOption describes one bookable destination reachable from an
// origin airport.
type RouteOption struct {
	FlightID string `json:"flight_id"`
	Code     string `json:"iata_code"`
	Name     string `json:"name"`
	Country  string `json:"country"`
}

// FlightByID returns the embedded flight with the given ID, or nil.
func (a *Airport) FlightByID(flightID string) *Flight {
	for i := range a.Flights {
		if a.Flights[i].ID == flightID {
			return &a.Flights[i]
		}
	}
	return nil
}

// SeatByID returns the seat with the given ID, or nil.
func (f *Flight) SeatByID(seatID string) *Seat {
	for i := range f.Seats {
		if f.Seats[i].ID == seatID {
			return &f.Seats[i]
		}
	}
	return nil
}

// VacantSeatIDs returns the IDs of all Vacant seats in storage order.
func (f *Flight) VacantSeatIDs() []string {
	ids := make([]string, 0, len(f.Seats))
	for i := range f.Seats {
		if f.Seats[i].Status == SeatVacant {
			ids = append(ids, f.Seats[i].ID)
		}
	}
	return ids
}

// RoundToCents rounds a monetary amount to two decimal places.
func RoundToCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
