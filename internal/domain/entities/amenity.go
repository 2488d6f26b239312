package entities

import (
	"strings"
	"unicode/utf8"

	apperrors "github.com/yemitan/staylodge/pkg/errors"
)

const (
	maxAmenityNameLength        = 50
	maxAmenityDescriptionLength = 150
)

// Amenity represents a feature a place can offer.
type Amenity struct {
	Base
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NewAmenityInput carries the client-settable fields for amenity
// creation. Description is optional.
type NewAmenityInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AmenityUpdate carries an amenity update. Name is required in every
// update payload, unlike the other entities' partial updates.
type AmenityUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// NewAmenity validates the input and constructs an amenity.
func NewAmenity(input NewAmenityInput) (*Amenity, error) {
	name, err := validateAmenityName(input.Name)
	if err != nil {
		return nil, err
	}
	description, err := validateAmenityDescription(input.Description)
	if err != nil {
		return nil, err
	}

	return &Amenity{
		Base:        NewBase(),
		Name:        name,
		Description: description,
	}, nil
}

// ApplyUpdate re-validates the supplied fields and assigns them, then
// refreshes UpdatedAt. Name must be present.
func (a *Amenity) ApplyUpdate(update AmenityUpdate) error {
	if update.Name == nil {
		return apperrors.NewValueError("name is required")
	}
	name, err := validateAmenityName(*update.Name)
	if err != nil {
		return err
	}

	description := a.Description
	if update.Description != nil {
		if description, err = validateAmenityDescription(*update.Description); err != nil {
			return err
		}
	}

	a.Name = name
	a.Description = description
	a.Touch()
	return nil
}

func validateAmenityName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", apperrors.NewValueError("name cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxAmenityNameLength {
		return "", apperrors.NewValueError("name must not exceed 50 characters")
	}
	return name, nil
}

func validateAmenityDescription(raw string) (string, error) {
	description := strings.TrimSpace(raw)
	if utf8.RuneCountInString(description) > maxAmenityDescriptionLength {
		return "", apperrors.NewValueError("description must not exceed 150 characters")
	}
	return description, nil
}
