package entities

import (
	"strings"

	apperrors "github.com/yemitan/staylodge/pkg/errors"
)

// Review represents a rating and comment left by a user on a place.
// UserID and PlaceID are fixed at creation.
type Review struct {
	Base
	UserID  string `json:"user_id"`
	PlaceID string `json:"place_id"`
	Rating  int    `json:"rating"`
	Text    string `json:"text"`
}

// NewReviewInput carries the client-settable fields for review
// creation. The facade checks that UserID and PlaceID reference
// existing entities before construction runs.
type NewReviewInput struct {
	UserID  string `json:"user_id"`
	PlaceID string `json:"place_id"`
	Rating  int    `json:"rating"`
	Text    string `json:"text"`
}

// ReviewUpdate carries a partial update. Nil fields were not supplied.
// UserID and PlaceID are not representable here and never change.
type ReviewUpdate struct {
	Rating *int    `json:"rating"`
	Text   *string `json:"text"`
}

// NewReview validates the input and constructs a review.
func NewReview(input NewReviewInput) (*Review, error) {
	if err := validateRating(input.Rating); err != nil {
		return nil, err
	}
	text, err := validateReviewText(input.Text)
	if err != nil {
		return nil, err
	}

	return &Review{
		Base:    NewBase(),
		UserID:  input.UserID,
		PlaceID: input.PlaceID,
		Rating:  input.Rating,
		Text:    text,
	}, nil
}

// ApplyUpdate re-validates every supplied field with the construction
// rules, then assigns them and refreshes UpdatedAt. No field is
// assigned if any check fails.
func (r *Review) ApplyUpdate(update ReviewUpdate) error {
	rating := r.Rating
	text := r.Text

	var err error
	if update.Rating != nil {
		if err = validateRating(*update.Rating); err != nil {
			return err
		}
		rating = *update.Rating
	}
	if update.Text != nil {
		if text, err = validateReviewText(*update.Text); err != nil {
			return err
		}
	}

	r.Rating = rating
	r.Text = text
	r.Touch()
	return nil
}

func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return apperrors.NewValueError("rating must be between 1 and 5")
	}
	return nil
}

func validateReviewText(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", apperrors.NewValueError("text cannot be empty")
	}
	return text, nil
}
