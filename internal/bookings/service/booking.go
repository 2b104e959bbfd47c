package service

import (
	"context"
	"errors"

	bookingserrors "travelease/internal/bookings/errors"
	"travelease/internal/bookings/repository"
	"travelease/internal/bookings/validator"
	"travelease/pkg/config"
	apperrors "travelease/pkg/errors"
	"travelease/pkg/kafka"
	"travelease/pkg/model"
)

const (
	EventBookingCreated = "booking.created"
	EventBookingDeleted = "booking.deleted"

	eventSource = "travelease"
)

// EventPublisher publishes booking lifecycle events. A nil publisher disables
// event publication entirely.
type EventPublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

type BookingService interface {
	Create(ctx context.Context, booking *model.Booking) error
	GetAll(ctx context.Context, userEmail string) ([]*model.Booking, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	validator *validator.BookingValidator
	events    EventPublisher
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	validator *validator.BookingValidator,
	events EventPublisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		validator: validator,
		events:    events,
		cfg:       cfg,
	}
}

func (s *bookingService) Create(ctx context.Context, booking *model.Booking) error {
	if err := s.validator.Validate(booking); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return apperrors.InvalidInput("Missing required fields")
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		s.cfg.Log.Error("Failed to create booking", "error", err)
		return apperrors.Internal("Failed to create booking", err)
	}

	s.cfg.Log.Info("Booking created successfully",
		"id", booking.ID,
		"vehicle_name", booking.VehicleName,
		"user_email", booking.UserEmail,
	)

	s.publishEvent(ctx, EventBookingCreated, booking)
	return nil
}

func (s *bookingService) GetAll(ctx context.Context, userEmail string) ([]*model.Booking, error) {
	bookings, err := s.repo.FindAll(ctx, userEmail)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings", "user_email", userEmail, "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}
	return bookings, nil
}

func (s *bookingService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.NotFound("Booking")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		// A malformed id matches nothing, same as an unknown one.
		if errors.Is(err, bookingserrors.ErrNotFound) || errors.Is(err, bookingserrors.ErrInvalidID) {
			return apperrors.NotFound("Booking")
		}
		s.cfg.Log.Error("Failed to delete booking", "id", id, "error", err)
		return apperrors.Internal("Failed to delete booking", err)
	}

	s.cfg.Log.Info("Booking deleted successfully", "id", id)

	s.publishEvent(ctx, EventBookingDeleted, &model.Booking{ID: id})
	return nil
}

func (s *bookingService) Count(ctx context.Context) (int64, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to count bookings", "error", err)
		return 0, apperrors.Internal("Failed to count bookings", err)
	}
	return count, nil
}

// publishEvent is best-effort: the booking is already persisted, so a broker
// failure is logged and never surfaced to the caller.
func (s *bookingService) publishEvent(ctx context.Context, eventType string, booking *model.Booking) {
	if s.events == nil {
		return
	}

	msg := kafka.NewMessage().
		WithKey(booking.ID).
		WithValue(booking).
		WithEventType(eventType).
		WithSource(eventSource).
		Build()

	if err := s.events.Publish(ctx, msg); err != nil {
		s.cfg.Log.Warn("Failed to publish booking event",
			"event_type", eventType,
			"booking_id", booking.ID,
			"error", err,
		)
	}
}
