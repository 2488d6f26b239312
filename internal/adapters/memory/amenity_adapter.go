package memory

import (
	"context"

	"github.com/yemitan/staylodge/internal/domain/entities"
	"github.com/yemitan/staylodge/internal/domain/repositories"
)

// AmenityAdapter implements AmenityRepository over an in-memory store
type AmenityAdapter struct {
	store *store[*entities.Amenity]
}

// NewAmenityAdapter creates a new in-memory amenity adapter
func NewAmenityAdapter() repositories.AmenityRepository {
	return &AmenityAdapter{store: newStore[*entities.Amenity]()}
}

// Add stores an amenity
func (a *AmenityAdapter) Add(ctx context.Context, amenity *entities.Amenity) error {
	a.store.add(amenity)
	return nil
}

// GetByID retrieves an amenity by ID; absent ids yield (nil, nil)
func (a *AmenityAdapter) GetByID(ctx context.Context, id string) (*entities.Amenity, error) {
	amenity, ok := a.store.get(id)
	if !ok {
		return nil, nil
	}
	return amenity, nil
}

// List retrieves all amenities in insertion order
func (a *AmenityAdapter) List(ctx context.Context) ([]*entities.Amenity, error) {
	return a.store.list(), nil
}

// Update stores the mutated amenity back
func (a *AmenityAdapter) Update(ctx context.Context, amenity *entities.Amenity) error {
	a.store.add(amenity)
	return nil
}

// Delete removes an amenity; absent ids are a no-op
func (a *AmenityAdapter) Delete(ctx context.Context, id string) error {
	a.store.delete(id)
	return nil
}
