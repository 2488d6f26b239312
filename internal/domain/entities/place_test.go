package entities

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/yemitan/staylodge/pkg/errors"
)

func validPlaceInput() NewPlaceInput {
	return NewPlaceInput{
		OwnerID:     "owner-1",
		Title:       "Cozy loft",
		Description: "A quiet loft downtown",
		Price:       120.0,
		Latitude:    48.8566,
		Longitude:   2.3522,
	}
}

func TestNewPlace_Success(t *testing.T) {
	place, err := NewPlace(validPlaceInput())
	require.NoError(t, err)

	assert.Equal(t, "owner-1", place.OwnerID)
	assert.Equal(t, "Cozy loft", place.Title)
	assert.Equal(t, 120.0, place.Price)
	assert.Empty(t, place.AmenityIDs)
	assert.Empty(t, place.ReviewIDs)
	assert.Equal(t, place.CreatedAt, place.UpdatedAt)
}

func TestNewPlace_DeduplicatesAmenities(t *testing.T) {
	input := validPlaceInput()
	input.Amenities = []string{"a-1", "a-2", "a-1"}

	place, err := NewPlace(input)
	require.NoError(t, err)
	assert.Equal(t, []string{"a-1", "a-2"}, place.AmenityIDs)
}

func TestNewPlace_Boundaries(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*NewPlaceInput)
		wantErr bool
	}{
		{"zero price rejected", func(in *NewPlaceInput) { in.Price = 0 }, true},
		{"negative price rejected", func(in *NewPlaceInput) { in.Price = -10 }, true},
		{"tiny positive price accepted", func(in *NewPlaceInput) { in.Price = 0.0001 }, false},
		{"latitude 90 accepted", func(in *NewPlaceInput) { in.Latitude = 90 }, false},
		{"latitude -90 accepted", func(in *NewPlaceInput) { in.Latitude = -90 }, false},
		{"latitude 90.0001 rejected", func(in *NewPlaceInput) { in.Latitude = 90.0001 }, true},
		{"latitude -90.0001 rejected", func(in *NewPlaceInput) { in.Latitude = -90.0001 }, true},
		{"longitude 180 accepted", func(in *NewPlaceInput) { in.Longitude = 180 }, false},
		{"longitude -180 accepted", func(in *NewPlaceInput) { in.Longitude = -180 }, false},
		{"longitude 180.0001 rejected", func(in *NewPlaceInput) { in.Longitude = 180.0001 }, true},
		{"empty title rejected", func(in *NewPlaceInput) { in.Title = "   " }, true},
		{"title too long rejected", func(in *NewPlaceInput) { in.Title = strings.Repeat("t", 101) }, true},
		{"title at max length accepted", func(in *NewPlaceInput) { in.Title = strings.Repeat("t", 100) }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validPlaceInput()
			tt.mutate(&input)

			place, err := NewPlace(input)
			if tt.wantErr {
				assert.Nil(t, place)
				assert.Equal(t, apperrors.ErrorTypeInvalidValue, apperrors.TypeOf(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPlace_ApplyUpdate(t *testing.T) {
	place, err := NewPlace(validPlaceInput())
	require.NoError(t, err)

	title := "  Sunny loft "
	price := 150.5
	err = place.ApplyUpdate(PlaceUpdate{Title: &title, Price: &price})
	require.NoError(t, err)

	assert.Equal(t, "Sunny loft", place.Title)
	assert.Equal(t, 150.5, place.Price)
	assert.Equal(t, "owner-1", place.OwnerID)
	assert.True(t, place.UpdatedAt.After(place.CreatedAt))
}

func TestPlace_ApplyUpdate_AllOrNothing(t *testing.T) {
	place, err := NewPlace(validPlaceInput())
	require.NoError(t, err)
	before := place.UpdatedAt

	title := "New title"
	badPrice := -1.0
	err = place.ApplyUpdate(PlaceUpdate{Title: &title, Price: &badPrice})
	assert.Error(t, err)

	assert.Equal(t, "Cozy loft", place.Title)
	assert.Equal(t, 120.0, place.Price)
	assert.Equal(t, before, place.UpdatedAt)
}

func TestPlace_ApplyUpdate_ReplacesAmenitiesWholesale(t *testing.T) {
	input := validPlaceInput()
	input.Amenities = []string{"a-1", "a-2"}
	place, err := NewPlace(input)
	require.NoError(t, err)

	amenities := []string{"a-3", "a-3", "a-4"}
	err = place.ApplyUpdate(PlaceUpdate{Amenities: &amenities})
	require.NoError(t, err)

	assert.Equal(t, []string{"a-3", "a-4"}, place.AmenityIDs)
}

func TestPlace_ApplyUpdate_EmptyAmenityListClears(t *testing.T) {
	input := validPlaceInput()
	input.Amenities = []string{"a-1"}
	place, err := NewPlace(input)
	require.NoError(t, err)

	amenities := []string{}
	err = place.ApplyUpdate(PlaceUpdate{Amenities: &amenities})
	require.NoError(t, err)
	assert.Empty(t, place.AmenityIDs)
}

func TestPlace_AddAmenityID_Idempotent(t *testing.T) {
	place, err := NewPlace(validPlaceInput())
	require.NoError(t, err)

	place.AddAmenityID("a-1")
	place.AddAmenityID("a-1")
	assert.Equal(t, []string{"a-1"}, place.AmenityIDs)
}

func TestPlace_AddReviewID_Idempotent(t *testing.T) {
	place, err := NewPlace(validPlaceInput())
	require.NoError(t, err)

	place.AddReviewID("r-1")
	place.AddReviewID("r-1")
	assert.Equal(t, []string{"r-1"}, place.ReviewIDs)

	place.RemoveReviewID("r-1")
	assert.Empty(t, place.ReviewIDs)
}
