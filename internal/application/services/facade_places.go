package services

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/yemitan/staylodge/internal/domain/entities"
	apperrors "github.com/yemitan/staylodge/pkg/errors"
)

// CreatePlace checks that the owner and every referenced amenity exist,
// then validates the input and stores the new place. The place id is
// appended to the owner's place list.
func (f *Facade) CreatePlace(ctx context.Context, input entities.NewPlaceInput) (*entities.Place, error) {
	owner, err := f.userRepo.GetByID(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, apperrors.NewReferenceError("owner not found")
	}

	if err := f.checkAmenityIDs(ctx, input.Amenities); err != nil {
		return nil, err
	}

	place, err := entities.NewPlace(input)
	if err != nil {
		return nil, err
	}

	if err := f.placeRepo.Add(ctx, place); err != nil {
		return nil, err
	}

	owner.AddPlaceID(place.ID)
	if err := f.userRepo.Update(ctx, owner); err != nil {
		return nil, err
	}

	log.Info().Str("place_id", place.ID).Str("owner_id", owner.ID).Msg("place created")
	return place, nil
}

// GetPlace retrieves a place by id
func (f *Facade) GetPlace(ctx context.Context, id string) (*entities.Place, error) {
	place, err := f.placeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if place == nil {
		return nil, apperrors.NewNotFoundError("place not found")
	}
	return place, nil
}

// ListPlaces retrieves all places
func (f *Facade) ListPlaces(ctx context.Context) ([]*entities.Place, error) {
	return f.placeRepo.List(ctx)
}

// UpdatePlace applies a partial update to a place. A supplied amenity
// list replaces the stored one wholesale after every id is checked to
// exist. OwnerID cannot appear in the update payload.
func (f *Facade) UpdatePlace(ctx context.Context, id string, update entities.PlaceUpdate) (*entities.Place, error) {
	place, err := f.placeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if place == nil {
		return nil, apperrors.NewNotFoundError("place not found")
	}

	if update.Amenities != nil {
		if err := f.checkAmenityIDs(ctx, *update.Amenities); err != nil {
			return nil, err
		}
	}

	if err := place.ApplyUpdate(update); err != nil {
		return nil, err
	}
	if err := f.placeRepo.Update(ctx, place); err != nil {
		return nil, err
	}

	log.Info().Str("place_id", place.ID).Msg("place updated")
	return place, nil
}

func (f *Facade) checkAmenityIDs(ctx context.Context, amenityIDs []string) error {
	for _, amenityID := range amenityIDs {
		amenity, err := f.amenityRepo.GetByID(ctx, amenityID)
		if err != nil {
			return err
		}
		if amenity == nil {
			return apperrors.NewReferenceError("amenity not found: " + amenityID)
		}
	}
	return nil
}
