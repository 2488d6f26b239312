package repositories

import (
	"context"

	"github.com/yemitan/staylodge/internal/domain/entities"
)

// ReviewRepository defines the interface for review data operations.
// Lookups return (nil, nil) when no record matches.
type ReviewRepository interface {
	// Add stores a review; the last write for a given id wins
	Add(ctx context.Context, review *entities.Review) error

	// GetByID retrieves a review by ID
	GetByID(ctx context.Context, id string) (*entities.Review, error)

	// List retrieves all reviews in insertion order
	List(ctx context.Context) ([]*entities.Review, error)

	// ListByPlace retrieves the reviews of one place, in insertion order
	ListByPlace(ctx context.Context, placeID string) ([]*entities.Review, error)

	// Update stores the mutated review back
	Update(ctx context.Context, review *entities.Review) error

	// Delete removes a review; absent ids are a no-op
	Delete(ctx context.Context, id string) error
}
