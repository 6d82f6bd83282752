package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"airseat/pkg/config"
	"airseat/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AirportRepository is the inventory store consumed by the query
// service and the booking engine. Airports embed their outbound
// flights, which embed their seats; BookSeat is the only write.
type AirportRepository interface {
	FindByCode(ctx context.Context, code string) (*model.Airport, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Airport, error)
	FindByFlightID(ctx context.Context, flightID string) (*model.Airport, error)

	// BookSeat transitions a seat from Vacant to Booked and writes the
	// occupant onto it, guarded by a predicate on the seat's current
	// status. Returns the number of documents the store modified: 1 if
	// this caller won the seat, 0 if another writer got there first.
	BookSeat(ctx context.Context, flightID, seatID string, occupant model.Occupant) (int64, error)
}

type mongoAirportRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoAirportRepository(cfg *config.Config) AirportRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoAirportRepository{
		cfg:        cfg,
		collection: db.Collection(cfg.MongoCollectionName),
	}
}

// withTimeout bounds store calls with the configured timeout unless the
// caller's deadline is already tighter.
func (r *mongoAirportRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < timeout {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

func (r *mongoAirportRepository) FindByCode(ctx context.Context, code string) (*model.Airport, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var airport model.Airport
	err := r.collection.FindOne(ctx, bson.M{"iata_code": code}).Decode(&airport)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find airport by code: %w", err)
	}

	return &airport, nil
}

func (r *mongoAirportRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Airport, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var airport model.Airport
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&airport)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find airport by id: %w", err)
	}

	return &airport, nil
}

func (r *mongoAirportRepository) FindByFlightID(ctx context.Context, flightID string) (*model.Airport, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var airport model.Airport
	err := r.collection.FindOne(ctx, bson.M{"flights.id": flightID}).Decode(&airport)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find airport by flight id: %w", err)
	}

	return &airport, nil
}

func (r *mongoAirportRepository) BookSeat(ctx context.Context, flightID, seatID string, occupant model.Occupant) (int64, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	// The match predicate and the seat array filter both require the
	// seat to still be Vacant at write time. A concurrent booking that
	// already flipped the status makes this update match nothing, so
	// ModifiedCount stays 0 and the caller knows it lost the race.
	filter := bson.M{
		"flights": bson.M{"$elemMatch": bson.M{
			"id": flightID,
			"seats": bson.M{"$elemMatch": bson.M{
				"id":     seatID,
				"status": model.SeatVacant,
			}},
		}},
	}

	update := bson.M{"$set": bson.M{
		"flights.$[f].seats.$[s].status":        model.SeatBooked,
		"flights.$[f].seats.$[s].name":          occupant.Name,
		"flights.$[f].seats.$[s].surname":       occupant.Surname,
		"flights.$[f].seats.$[s].document_id":   occupant.DocumentID,
		"flights.$[f].seats.$[s].date_of_birth": occupant.DateOfBirth,
		"flights.$[f].seats.$[s].balance":       occupant.Balance,
	}}

	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{
			bson.M{"f.id": flightID},
			bson.M{"s.id": seatID, "s.status": model.SeatVacant},
		},
	})

	result, err := r.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return 0, fmt.Errorf("failed to book seat: %w", err)
	}

	return result.ModifiedCount, nil
}
