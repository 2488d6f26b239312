package entities

import (
	"strings"
	"unicode/utf8"

	apperrors "github.com/yemitan/staylodge/pkg/errors"
)

const maxTitleLength = 100

// Place represents a stay listing owned by a user. OwnerID is fixed at
// creation; ReviewIDs is maintained by the facade only.
type Place struct {
	Base
	OwnerID     string   `json:"owner_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	AmenityIDs  []string `json:"amenity_ids"`
	ReviewIDs   []string `json:"review_ids"`
}

// NewPlaceInput carries the client-settable fields for place creation.
// Amenities lists amenity ids; the facade checks each one exists before
// construction runs.
type NewPlaceInput struct {
	OwnerID     string   `json:"owner_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Amenities   []string `json:"amenities"`
}

// PlaceUpdate carries a partial update. Nil fields were not supplied.
// A non-nil Amenities replaces the amenity-id list wholesale. OwnerID
// is not representable here and therefore never changes.
type PlaceUpdate struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	Amenities   *[]string `json:"amenities"`
}

// NewPlace validates the input and constructs a place. The amenity ids
// are deduplicated, preserving first-seen order.
func NewPlace(input NewPlaceInput) (*Place, error) {
	title, err := validateTitle(input.Title)
	if err != nil {
		return nil, err
	}
	if err := validatePrice(input.Price); err != nil {
		return nil, err
	}
	if err := validateLatitude(input.Latitude); err != nil {
		return nil, err
	}
	if err := validateLongitude(input.Longitude); err != nil {
		return nil, err
	}

	place := &Place{
		Base:        NewBase(),
		OwnerID:     input.OwnerID,
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		AmenityIDs:  []string{},
		ReviewIDs:   []string{},
	}
	for _, amenityID := range input.Amenities {
		place.AddAmenityID(amenityID)
	}
	return place, nil
}

// ApplyUpdate re-validates every supplied field with the construction
// rules, then assigns them and refreshes UpdatedAt. No field is
// assigned if any check fails.
func (p *Place) ApplyUpdate(update PlaceUpdate) error {
	title := p.Title
	description := p.Description
	price := p.Price
	latitude := p.Latitude
	longitude := p.Longitude

	var err error
	if update.Title != nil {
		if title, err = validateTitle(*update.Title); err != nil {
			return err
		}
	}
	if update.Description != nil {
		description = strings.TrimSpace(*update.Description)
	}
	if update.Price != nil {
		if err = validatePrice(*update.Price); err != nil {
			return err
		}
		price = *update.Price
	}
	if update.Latitude != nil {
		if err = validateLatitude(*update.Latitude); err != nil {
			return err
		}
		latitude = *update.Latitude
	}
	if update.Longitude != nil {
		if err = validateLongitude(*update.Longitude); err != nil {
			return err
		}
		longitude = *update.Longitude
	}

	p.Title = title
	p.Description = description
	p.Price = price
	p.Latitude = latitude
	p.Longitude = longitude
	if update.Amenities != nil {
		p.AmenityIDs = []string{}
		for _, amenityID := range *update.Amenities {
			p.AddAmenityID(amenityID)
		}
	}
	p.Touch()
	return nil
}

// AddAmenityID links an amenity. Adding the same id twice keeps it
// exactly once.
func (p *Place) AddAmenityID(amenityID string) {
	p.AmenityIDs = appendUnique(p.AmenityIDs, amenityID)
}

// AddReviewID records a review of this place. Adding the same id twice
// keeps it exactly once.
func (p *Place) AddReviewID(reviewID string) {
	p.ReviewIDs = appendUnique(p.ReviewIDs, reviewID)
}

// RemoveReviewID removes a review reference, if present.
func (p *Place) RemoveReviewID(reviewID string) {
	p.ReviewIDs = removeID(p.ReviewIDs, reviewID)
}

func validateTitle(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if title == "" {
		return "", apperrors.NewValueError("title cannot be empty")
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return "", apperrors.NewValueError("title must not exceed 100 characters")
	}
	return title, nil
}

func validatePrice(price float64) error {
	if price <= 0 {
		return apperrors.NewValueError("price must be positive")
	}
	return nil
}

func validateLatitude(latitude float64) error {
	if latitude < -90.0 || latitude > 90.0 {
		return apperrors.NewValueError("latitude must be between -90 and 90")
	}
	return nil
}

func validateLongitude(longitude float64) error {
	if longitude < -180.0 || longitude > 180.0 {
		return apperrors.NewValueError("longitude must be between -180 and 180")
	}
	return nil
}
