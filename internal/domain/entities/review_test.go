package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/yemitan/staylodge/pkg/errors"
)

func validReviewInput() NewReviewInput {
	return NewReviewInput{
		UserID:  "user-1",
		PlaceID: "place-1",
		Rating:  4,
		Text:    "  Great stay  ",
	}
}

func TestNewReview_Success(t *testing.T) {
	review, err := NewReview(validReviewInput())
	require.NoError(t, err)

	assert.Equal(t, "user-1", review.UserID)
	assert.Equal(t, "place-1", review.PlaceID)
	assert.Equal(t, 4, review.Rating)
	assert.Equal(t, "Great stay", review.Text)
}

func TestNewReview_RatingBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		rating  int
		wantErr bool
	}{
		{"rating 1 accepted", 1, false},
		{"rating 5 accepted", 5, false},
		{"rating 0 rejected", 0, true},
		{"rating 6 rejected", 6, true},
		{"negative rating rejected", -3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validReviewInput()
			input.Rating = tt.rating

			review, err := NewReview(input)
			if tt.wantErr {
				assert.Nil(t, review)
				assert.Equal(t, apperrors.ErrorTypeInvalidValue, apperrors.TypeOf(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewReview_EmptyTextRejected(t *testing.T) {
	input := validReviewInput()
	input.Text = "   "

	review, err := NewReview(input)
	assert.Nil(t, review)
	assert.Equal(t, apperrors.ErrorTypeInvalidValue, apperrors.TypeOf(err))
}

func TestReview_ApplyUpdate(t *testing.T) {
	review, err := NewReview(validReviewInput())
	require.NoError(t, err)

	rating := 2
	text := " Could be cleaner "
	err = review.ApplyUpdate(ReviewUpdate{Rating: &rating, Text: &text})
	require.NoError(t, err)

	assert.Equal(t, 2, review.Rating)
	assert.Equal(t, "Could be cleaner", review.Text)
	assert.Equal(t, "user-1", review.UserID)
	assert.Equal(t, "place-1", review.PlaceID)
}

func TestReview_ApplyUpdate_AllOrNothing(t *testing.T) {
	review, err := NewReview(validReviewInput())
	require.NoError(t, err)
	before := review.UpdatedAt

	rating := 3
	text := ""
	err = review.ApplyUpdate(ReviewUpdate{Rating: &rating, Text: &text})
	assert.Error(t, err)

	assert.Equal(t, 4, review.Rating)
	assert.Equal(t, "Great stay", review.Text)
	assert.Equal(t, before, review.UpdatedAt)
}
