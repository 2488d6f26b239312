package memory

import (
	"context"

	"github.com/yemitan/staylodge/internal/domain/entities"
	"github.com/yemitan/staylodge/internal/domain/repositories"
)

// UserAdapter implements UserRepository over an in-memory store
type UserAdapter struct {
	store *store[*entities.User]
}

// NewUserAdapter creates a new in-memory user adapter
func NewUserAdapter() repositories.UserRepository {
	return &UserAdapter{store: newStore[*entities.User]()}
}

// Add stores a user
func (a *UserAdapter) Add(ctx context.Context, user *entities.User) error {
	a.store.add(user)
	return nil
}

// GetByID retrieves a user by ID; absent ids yield (nil, nil)
func (a *UserAdapter) GetByID(ctx context.Context, id string) (*entities.User, error) {
	user, ok := a.store.get(id)
	if !ok {
		return nil, nil
	}
	return user, nil
}

// GetByEmail retrieves the first user with the given normalized email;
// no match yields (nil, nil)
func (a *UserAdapter) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	user, ok := a.store.find(func(u *entities.User) bool {
		return u.Email == email
	})
	if !ok {
		return nil, nil
	}
	return user, nil
}

// List retrieves all users in insertion order
func (a *UserAdapter) List(ctx context.Context) ([]*entities.User, error) {
	return a.store.list(), nil
}

// Update stores the mutated user back
func (a *UserAdapter) Update(ctx context.Context, user *entities.User) error {
	a.store.add(user)
	return nil
}

// Delete removes a user; absent ids are a no-op
func (a *UserAdapter) Delete(ctx context.Context, id string) error {
	a.store.delete(id)
	return nil
}
