package service

import (
	"context"
	"errors"

	listingserrors "travelease/internal/listings/errors"
	"travelease/internal/listings/repository"
	"travelease/internal/listings/validator"
	"travelease/pkg/config"
	apperrors "travelease/pkg/errors"
	"travelease/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
)

type ListingService interface {
	Create(ctx context.Context, listing *model.Listing) error
	GetAll(ctx context.Context) ([]*model.Listing, error)
	GetLatest(ctx context.Context) ([]*model.Listing, error)
	GetByID(ctx context.Context, id string) (*model.Listing, error)
	Update(ctx context.Context, id string, fields map[string]any) (*model.Listing, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type listingService struct {
	repo      repository.ListingRepository
	validator *validator.ListingValidator
	cfg       *config.Config
}

func NewListingService(
	repo repository.ListingRepository,
	validator *validator.ListingValidator,
	cfg *config.Config,
) ListingService {
	return &listingService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *listingService) Create(ctx context.Context, listing *model.Listing) error {
	if err := s.validator.Validate(listing); err != nil {
		s.cfg.Log.Warn("Listing validation failed", "error", err)
		return apperrors.InvalidInput("Missing required fields")
	}

	if err := s.repo.Create(ctx, listing); err != nil {
		s.cfg.Log.Error("Failed to create listing", "error", err)
		return apperrors.Internal("Failed to create product", err)
	}

	s.cfg.Log.Info("Listing created successfully",
		"id", listing.ID,
		"vehicle_name", listing.VehicleName,
		"price_per_day", listing.PricePerDay,
	)
	return nil
}

func (s *listingService) GetAll(ctx context.Context) ([]*model.Listing, error) {
	listings, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list listings", "error", err)
		return nil, apperrors.Internal("Failed to retrieve products", err)
	}
	return listings, nil
}

func (s *listingService) GetLatest(ctx context.Context) ([]*model.Listing, error) {
	listings, err := s.repo.FindLatest(ctx, s.cfg.LatestListingsLimit)
	if err != nil {
		s.cfg.Log.Error("Failed to list latest listings", "error", err)
		return nil, apperrors.Internal("Failed to retrieve latest products", err)
	}
	return listings, nil
}

func (s *listingService) GetByID(ctx context.Context, id string) (*model.Listing, error) {
	if id == "" {
		return nil, apperrors.NotFound("Product")
	}

	listing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		// A malformed id matches nothing, same as an unknown one.
		if errors.Is(err, listingserrors.ErrNotFound) || errors.Is(err, listingserrors.ErrInvalidID) {
			return nil, apperrors.NotFound("Product")
		}
		return nil, apperrors.Internal("Failed to retrieve product", err)
	}

	return listing, nil
}

// Update overlays the supplied fields onto the existing document. The store
// identifier and the creation timestamp are immutable and stripped from the
// overlay.
func (s *listingService) Update(ctx context.Context, id string, fields map[string]any) (*model.Listing, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Product ID cannot be empty")
	}

	overlay := bson.M{}
	for k, v := range fields {
		if k == "_id" || k == "createdAt" {
			continue
		}
		overlay[k] = v
	}

	updated, err := s.repo.UpdateFields(ctx, id, overlay)
	if err != nil {
		if errors.Is(err, listingserrors.ErrNotFound) || errors.Is(err, listingserrors.ErrInvalidID) {
			return nil, apperrors.NotFound("Product")
		}
		s.cfg.Log.Error("Failed to update listing", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to update product", err)
	}

	s.cfg.Log.Info("Listing updated successfully", "id", id, "fields", len(overlay))
	return updated, nil
}

func (s *listingService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.NotFound("Product")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, listingserrors.ErrNotFound) || errors.Is(err, listingserrors.ErrInvalidID) {
			return apperrors.NotFound("Product")
		}
		s.cfg.Log.Error("Failed to delete listing", "id", id, "error", err)
		return apperrors.Internal("Failed to delete product", err)
	}

	s.cfg.Log.Info("Listing deleted successfully", "id", id)
	return nil
}

func (s *listingService) Count(ctx context.Context) (int64, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to count listings", "error", err)
		return 0, apperrors.Internal("Failed to count products", err)
	}
	return count, nil
}
