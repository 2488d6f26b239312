package services

import (
	"github.com/yemitan/staylodge/internal/domain/repositories"
)

// Facade is the single entry point between the presentation layer and
// the domain. It composes the per-entity repositories, resolves
// cross-entity references before any entity is constructed, and keeps
// the reverse-reference lists (a user's places and reviews, a place's
// reviews) consistent on create and delete.
type Facade struct {
	userRepo    repositories.UserRepository
	placeRepo   repositories.PlaceRepository
	reviewRepo  repositories.ReviewRepository
	amenityRepo repositories.AmenityRepository
}

// NewFacade creates a new facade
func NewFacade(
	userRepo repositories.UserRepository,
	placeRepo repositories.PlaceRepository,
	reviewRepo repositories.ReviewRepository,
	amenityRepo repositories.AmenityRepository,
) *Facade {
	return &Facade{
		userRepo:    userRepo,
		placeRepo:   placeRepo,
		reviewRepo:  reviewRepo,
		amenityRepo: amenityRepo,
	}
}
