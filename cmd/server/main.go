package main

import (
	bookinghandler "travelease/internal/bookings/handler"
	bookingrepository "travelease/internal/bookings/repository"
	bookingservice "travelease/internal/bookings/service"
	bookingvalidator "travelease/internal/bookings/validator"
	listinghandler "travelease/internal/listings/handler"
	listingrepository "travelease/internal/listings/repository"
	listingservice "travelease/internal/listings/service"
	listingvalidator "travelease/internal/listings/validator"
	statushandler "travelease/internal/status/handler"
	"travelease/pkg/app"
	"travelease/pkg/config"
	"travelease/pkg/kafka"
)

const ServiceName = "travelease"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting TravelEase server")

	listingService := initListingService(cfg)
	serverApp := app.NewApplication(cfg)
	bookingService := initBookingService(cfg, serverApp)

	status := statushandler.NewStatusHandler(cfg.Client.Mongo, listingService, cfg.Log)
	serverApp.SetApp(status,
		listinghandler.NewListingHandler(listingService, cfg.Log),
		bookinghandler.NewBookingHandler(bookingService, cfg.Log),
	)
	serverApp.Run()
}

func initListingService(cfg *config.Config) listingservice.ListingService {
	listingValidator := listingvalidator.NewListingValidator(cfg.Log)
	listingRepo := listingrepository.NewMongoListingRepository(cfg)
	svc := listingservice.NewListingService(listingRepo, listingValidator, cfg)

	cfg.Log.Info("Listing service initialized", "database", cfg.MongoDatabaseName)
	return svc
}

func initBookingService(cfg *config.Config, serverApp *app.Application) bookingservice.BookingService {
	var events bookingservice.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaBookingEventsTopic)
		if err != nil {
			cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
		}
		serverApp.OnShutdown(func() {
			if err := producer.Close(); err != nil {
				cfg.Log.Error("Failed to close Kafka producer", "error", err)
			}
		})
		events = producer
		cfg.Log.Info("Booking event publication enabled",
			"brokers", cfg.KafkaBrokers,
			"topic", cfg.KafkaBookingEventsTopic,
		)
	}

	bookingValidator := bookingvalidator.NewBookingValidator(cfg.Log)
	bookingRepo := bookingrepository.NewMongoBookingRepository(cfg)
	svc := bookingservice.NewBookingService(bookingRepo, bookingValidator, events, cfg)

	cfg.Log.Info("Booking service initialized", "database", cfg.MongoDatabaseName)
	return svc
}
