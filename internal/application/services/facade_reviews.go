package services

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/yemitan/staylodge/internal/domain/entities"
	apperrors "github.com/yemitan/staylodge/pkg/errors"
)

// CreateReview checks that the author and the reviewed place exist,
// then validates the input and stores the new review. The review id is
// appended to the author's and the place's review lists.
func (f *Facade) CreateReview(ctx context.Context, input entities.NewReviewInput) (*entities.Review, error) {
	user, err := f.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NewReferenceError("user not found")
	}

	place, err := f.placeRepo.GetByID(ctx, input.PlaceID)
	if err != nil {
		return nil, err
	}
	if place == nil {
		return nil, apperrors.NewReferenceError("place not found")
	}

	review, err := entities.NewReview(input)
	if err != nil {
		return nil, err
	}

	if err := f.reviewRepo.Add(ctx, review); err != nil {
		return nil, err
	}

	user.AddReviewID(review.ID)
	if err := f.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	place.AddReviewID(review.ID)
	if err := f.placeRepo.Update(ctx, place); err != nil {
		return nil, err
	}

	log.Info().Str("review_id", review.ID).Str("place_id", place.ID).Msg("review created")
	return review, nil
}

// GetReview retrieves a review by id
func (f *Facade) GetReview(ctx context.Context, id string) (*entities.Review, error) {
	review, err := f.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, apperrors.NewNotFoundError("review not found")
	}
	return review, nil
}

// ListReviews retrieves all reviews
func (f *Facade) ListReviews(ctx context.Context) ([]*entities.Review, error) {
	return f.reviewRepo.List(ctx)
}

// ListReviewsByPlace retrieves all reviews of one place. The place must
// exist; an existing place with no reviews yields an empty slice.
func (f *Facade) ListReviewsByPlace(ctx context.Context, placeID string) ([]*entities.Review, error) {
	place, err := f.placeRepo.GetByID(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if place == nil {
		return nil, apperrors.NewNotFoundError("place not found")
	}
	return f.reviewRepo.ListByPlace(ctx, placeID)
}

// UpdateReview applies a partial update to a review. UserID and
// PlaceID cannot appear in the update payload.
func (f *Facade) UpdateReview(ctx context.Context, id string, update entities.ReviewUpdate) (*entities.Review, error) {
	review, err := f.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, apperrors.NewNotFoundError("review not found")
	}

	if err := review.ApplyUpdate(update); err != nil {
		return nil, err
	}
	if err := f.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	log.Info().Str("review_id", review.ID).Msg("review updated")
	return review, nil
}

// DeleteReview removes a review and its id from the author's and the
// place's review lists.
func (f *Facade) DeleteReview(ctx context.Context, id string) error {
	review, err := f.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if review == nil {
		return apperrors.NewNotFoundError("review not found")
	}

	if err := f.reviewRepo.Delete(ctx, id); err != nil {
		return err
	}

	if user, err := f.userRepo.GetByID(ctx, review.UserID); err == nil && user != nil {
		user.RemoveReviewID(id)
		if err := f.userRepo.Update(ctx, user); err != nil {
			return err
		}
	}
	if place, err := f.placeRepo.GetByID(ctx, review.PlaceID); err == nil && place != nil {
		place.RemoveReviewID(id)
		if err := f.placeRepo.Update(ctx, place); err != nil {
			return err
		}
	}

	log.Info().Str("review_id", id).Msg("review deleted")
	return nil
}
