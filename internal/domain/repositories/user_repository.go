package repositories

import (
	"context"

	"github.com/yemitan/staylodge/internal/domain/entities"
)

// UserRepository defines the interface for user data operations.
// Lookups return (nil, nil) when no record matches: absence is a
// normal result, not an error, and callers decide what it means.
type UserRepository interface {
	// Add stores a user; the last write for a given id wins
	Add(ctx context.Context, user *entities.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*entities.User, error)

	// GetByEmail retrieves the first user with the given normalized email
	GetByEmail(ctx context.Context, email string) (*entities.User, error)

	// List retrieves all users in insertion order
	List(ctx context.Context) ([]*entities.User, error)

	// Update stores the mutated user back
	Update(ctx context.Context, user *entities.User) error

	// Delete removes a user; absent ids are a no-op
	Delete(ctx context.Context, id string) error
}
