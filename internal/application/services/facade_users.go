package services

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/yemitan/staylodge/internal/domain/entities"
	apperrors "github.com/yemitan/staylodge/pkg/errors"
)

// CreateUser validates the input, enforces email uniqueness and stores
// the new user.
func (f *Facade) CreateUser(ctx context.Context, input entities.NewUserInput) (*entities.User, error) {
	user, err := entities.NewUser(input)
	if err != nil {
		return nil, err
	}

	existing, err := f.userRepo.GetByEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("email already registered")
	}

	if err := f.userRepo.Add(ctx, user); err != nil {
		return nil, err
	}

	log.Info().Str("user_id", user.ID).Msg("user created")
	return user, nil
}

// GetUser retrieves a user by id
func (f *Facade) GetUser(ctx context.Context, id string) (*entities.User, error) {
	user, err := f.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NewNotFoundError("user not found")
	}
	return user, nil
}

// ListUsers retrieves all users
func (f *Facade) ListUsers(ctx context.Context) ([]*entities.User, error) {
	return f.userRepo.List(ctx)
}

// GetUserByEmail retrieves a user by normalized email
func (f *Facade) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	normalized, err := entities.NormalizeEmail(email)
	if err != nil {
		return nil, err
	}

	user, err := f.userRepo.GetByEmail(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NewNotFoundError("user not found")
	}
	return user, nil
}

// UpdateUser applies a partial update to a user. A changed email is
// checked for uniqueness before anything is written. Protected fields
// (id, timestamps, is_admin, place_ids, review_ids) cannot appear in
// the update payload.
func (f *Facade) UpdateUser(ctx context.Context, id string, update entities.UserUpdate) (*entities.User, error) {
	user, err := f.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NewNotFoundError("user not found")
	}

	if update.Email != nil {
		normalized, err := entities.NormalizeEmail(*update.Email)
		if err != nil {
			return nil, err
		}
		existing, err := f.userRepo.GetByEmail(ctx, normalized)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, apperrors.NewConflictError("email already registered")
		}
	}

	if err := user.ApplyUpdate(update); err != nil {
		return nil, err
	}
	if err := f.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	log.Info().Str("user_id", user.ID).Msg("user updated")
	return user, nil
}
