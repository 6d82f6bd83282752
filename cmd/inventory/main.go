package main

import (
	bookinghandler "airseat/internal/bookings/handler"
	bookingservice "airseat/internal/bookings/service"
	"airseat/internal/bookings/validator"
	"airseat/internal/inventory/repository"
	routehandler "airseat/internal/routes/handler"
	routeservice "airseat/internal/routes/service"
	"airseat/pkg/app"
	"airseat/pkg/config"
	"airseat/pkg/contracts"
	"airseat/pkg/kafka"
	"airseat/pkg/keylock"
)

const ServiceName = "inventory"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting seat inventory service")

	handlers, cleanup := initServices(cfg)
	defer cleanup()

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(handlers...)
	serverApp.Run()
}

func initServices(cfg *config.Config) ([]contracts.Handler, func()) {
	airportRepo := repository.NewMongoAirportRepository(cfg)

	routeService := routeservice.NewRouteService(airportRepo, cfg)

	var events bookingservice.EventPublisher
	cleanup := func() {}
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaBookingTopic, cfg.Log)
		if err != nil {
			cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
		}
		publisher := kafka.NewBookingEventPublisher(producer)
		events = publisher
		cleanup = func() {
			if err := publisher.Close(); err != nil {
				cfg.Log.Error("Failed to close Kafka producer", "error", err)
			}
		}
		cfg.Log.Info("Booking event publishing enabled",
			"brokers", cfg.KafkaBrokers,
			"topic", cfg.KafkaBookingTopic,
		)
	}

	bookingService := bookingservice.NewBookingService(
		airportRepo,
		keylock.NewManager(),
		events,
		cfg,
	)
	bookingValidator := validator.NewBookingValidator(cfg.Log)

	cfg.Log.Info("Inventory services initialized",
		"database", cfg.MongoDatabaseName,
		"collection", cfg.MongoCollectionName,
	)

	return []contracts.Handler{
		routehandler.NewRouteHandler(routeService, cfg.Log),
		bookinghandler.NewBookingHandler(bookingService, bookingValidator, cfg.Log),
	}, cleanup
}
