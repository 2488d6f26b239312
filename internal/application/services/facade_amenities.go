package services

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/yemitan/staylodge/internal/domain/entities"
	apperrors "github.com/yemitan/staylodge/pkg/errors"
)

// CreateAmenity validates the input and stores the new amenity.
func (f *Facade) CreateAmenity(ctx context.Context, input entities.NewAmenityInput) (*entities.Amenity, error) {
	amenity, err := entities.NewAmenity(input)
	if err != nil {
		return nil, err
	}

	if err := f.amenityRepo.Add(ctx, amenity); err != nil {
		return nil, err
	}

	log.Info().Str("amenity_id", amenity.ID).Msg("amenity created")
	return amenity, nil
}

// GetAmenity retrieves an amenity by id
func (f *Facade) GetAmenity(ctx context.Context, id string) (*entities.Amenity, error) {
	amenity, err := f.amenityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if amenity == nil {
		return nil, apperrors.NewNotFoundError("amenity not found")
	}
	return amenity, nil
}

// ListAmenities retrieves all amenities
func (f *Facade) ListAmenities(ctx context.Context) ([]*entities.Amenity, error) {
	return f.amenityRepo.List(ctx)
}

// UpdateAmenity applies an update to an amenity. Name must be present
// in the payload.
func (f *Facade) UpdateAmenity(ctx context.Context, id string, update entities.AmenityUpdate) (*entities.Amenity, error) {
	amenity, err := f.amenityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if amenity == nil {
		return nil, apperrors.NewNotFoundError("amenity not found")
	}

	if err := amenity.ApplyUpdate(update); err != nil {
		return nil, err
	}
	if err := f.amenityRepo.Update(ctx, amenity); err != nil {
		return nil, err
	}

	log.Info().Str("amenity_id", amenity.ID).Msg("amenity updated")
	return amenity, nil
}
