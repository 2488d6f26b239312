package repositories

import (
	"context"

	"github.com/yemitan/staylodge/internal/domain/entities"
)

// PlaceRepository defines the interface for place data operations.
// Lookups return (nil, nil) when no record matches.
type PlaceRepository interface {
	// Add stores a place; the last write for a given id wins
	Add(ctx context.Context, place *entities.Place) error

	// GetByID retrieves a place by ID
	GetByID(ctx context.Context, id string) (*entities.Place, error)

	// List retrieves all places in insertion order
	List(ctx context.Context) ([]*entities.Place, error)

	// Update stores the mutated place back
	Update(ctx context.Context, place *entities.Place) error

	// Delete removes a place; absent ids are a no-op
	Delete(ctx context.Context, id string) error
}
