package memory

import (
	"context"

	"github.com/yemitan/staylodge/internal/domain/entities"
	"github.com/yemitan/staylodge/internal/domain/repositories"
)

// ReviewAdapter implements ReviewRepository over an in-memory store
type ReviewAdapter struct {
	store *store[*entities.Review]
}

// NewReviewAdapter creates a new in-memory review adapter
func NewReviewAdapter() repositories.ReviewRepository {
	return &ReviewAdapter{store: newStore[*entities.Review]()}
}

// Add stores a review
func (a *ReviewAdapter) Add(ctx context.Context, review *entities.Review) error {
	a.store.add(review)
	return nil
}

// GetByID retrieves a review by ID; absent ids yield (nil, nil)
func (a *ReviewAdapter) GetByID(ctx context.Context, id string) (*entities.Review, error) {
	review, ok := a.store.get(id)
	if !ok {
		return nil, nil
	}
	return review, nil
}

// List retrieves all reviews in insertion order
func (a *ReviewAdapter) List(ctx context.Context) ([]*entities.Review, error) {
	return a.store.list(), nil
}

// ListByPlace retrieves the reviews of one place with a linear scan in
// insertion order. Empty results are an empty slice, never an error.
func (a *ReviewAdapter) ListByPlace(ctx context.Context, placeID string) ([]*entities.Review, error) {
	reviews := []*entities.Review{}
	for _, review := range a.store.list() {
		if review.PlaceID == placeID {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}

// Update stores the mutated review back
func (a *ReviewAdapter) Update(ctx context.Context, review *entities.Review) error {
	a.store.add(review)
	return nil
}

// Delete removes a review; absent ids are a no-op
func (a *ReviewAdapter) Delete(ctx context.Context, id string) error {
	a.store.delete(id)
	return nil
}
