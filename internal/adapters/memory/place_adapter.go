package memory

import (
	"context"

	"github.com/yemitan/staylodge/internal/domain/entities"
	"github.com/yemitan/staylodge/internal/domain/repositories"
)

// PlaceAdapter implements PlaceRepository over an in-memory store
type PlaceAdapter struct {
	store *store[*entities.Place]
}

// NewPlaceAdapter creates a new in-memory place adapter
func NewPlaceAdapter() repositories.PlaceRepository {
	return &PlaceAdapter{store: newStore[*entities.Place]()}
}

// Add stores a place
func (a *PlaceAdapter) Add(ctx context.Context, place *entities.Place) error {
	a.store.add(place)
	return nil
}

// GetByID retrieves a place by ID; absent ids yield (nil, nil)
func (a *PlaceAdapter) GetByID(ctx context.Context, id string) (*entities.Place, error) {
	place, ok := a.store.get(id)
	if !ok {
		return nil, nil
	}
	return place, nil
}

// List retrieves all places in insertion order
func (a *PlaceAdapter) List(ctx context.Context) ([]*entities.Place, error) {
	return a.store.list(), nil
}

// Update stores the mutated place back
func (a *PlaceAdapter) Update(ctx context.Context, place *entities.Place) error {
	a.store.add(place)
	return nil
}

// Delete removes a place; absent ids are a no-op
func (a *PlaceAdapter) Delete(ctx context.Context, id string) error {
	a.store.delete(id)
	return nil
}
