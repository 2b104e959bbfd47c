package config

import "time"

const (
	DefaultMongoDatabaseName = "travelease_db"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort = "3000"

	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultLatestListingsLimit = 6

	DefaultKafkaBookingEventsTopic = "booking-events"
)
