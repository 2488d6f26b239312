package repositories

import (
	"context"

	"github.com/yemitan/staylodge/internal/domain/entities"
)

// AmenityRepository defines the interface for amenity data operations.
// Lookups return (nil, nil) when no record matches.
type AmenityRepository interface {
	// Add stores an amenity; the last write for a given id wins
	Add(ctx context.Context, amenity *entities.Amenity) error

	// GetByID retrieves an amenity by ID
	GetByID(ctx context.Context, id string) (*entities.Amenity, error)

	// List retrieves all amenities in insertion order
	List(ctx context.Context) ([]*entities.Amenity, error)

	// Update stores the mutated amenity back
	Update(ctx context.Context, amenity *entities.Amenity) error

	// Delete removes an amenity; absent ids are a no-op
	Delete(ctx context.Context, id string) error
}
