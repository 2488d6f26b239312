package entities

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/yemitan/staylodge/pkg/errors"
)

const maxNameLength = 50

// User represents an account that can own places and write reviews.
// PlaceIDs and ReviewIDs are maintained by the facade only and never
// accepted from clients; the same goes for IsAdmin.
type User struct {
	Base
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	IsAdmin      bool     `json:"is_admin"`
	PlaceIDs     []string `json:"place_ids"`
	ReviewIDs    []string `json:"review_ids"`
}

// NewUserInput carries the client-settable fields for user creation.
type NewUserInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// UserUpdate carries a partial update. Nil fields were not supplied.
// Protected fields (id, timestamps, is_admin, place_ids, review_ids)
// are not representable here, so they can never change through an
// update payload.
type UserUpdate struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
}

// NewUser validates the input and constructs a user. Construction is
// all-or-nothing: the first failing check wins and no user is returned.
func NewUser(input NewUserInput) (*User, error) {
	firstName, err := validateName("first_name", input.FirstName)
	if err != nil {
		return nil, err
	}

	lastName, err := validateName("last_name", input.LastName)
	if err != nil {
		return nil, err
	}

	email, err := NormalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}

	var passwordHash string
	if input.Password != "" {
		passwordHash, err = hashPassword(input.Password)
		if err != nil {
			return nil, err
		}
	}

	return &User{
		Base:         NewBase(),
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: passwordHash,
		PlaceIDs:     []string{},
		ReviewIDs:    []string{},
	}, nil
}

// ApplyUpdate re-validates every supplied field with the construction
// rules, then assigns them and refreshes UpdatedAt. No field is
// assigned if any check fails.
func (u *User) ApplyUpdate(update UserUpdate) error {
	firstName := u.FirstName
	lastName := u.LastName
	email := u.Email
	passwordHash := u.PasswordHash

	var err error
	if update.FirstName != nil {
		if firstName, err = validateName("first_name", *update.FirstName); err != nil {
			return err
		}
	}
	if update.LastName != nil {
		if lastName, err = validateName("last_name", *update.LastName); err != nil {
			return err
		}
	}
	if update.Email != nil {
		if email, err = NormalizeEmail(*update.Email); err != nil {
			return err
		}
	}
	if update.Password != nil {
		if passwordHash, err = hashPassword(*update.Password); err != nil {
			return err
		}
	}

	u.FirstName = firstName
	u.LastName = lastName
	u.Email = email
	u.PasswordHash = passwordHash
	u.Touch()
	return nil
}

// AddPlaceID records ownership of a place. Adding the same id twice
// keeps it exactly once.
func (u *User) AddPlaceID(placeID string) {
	u.PlaceIDs = appendUnique(u.PlaceIDs, placeID)
}

// RemovePlaceID removes a place from the owned set, if present.
func (u *User) RemovePlaceID(placeID string) {
	u.PlaceIDs = removeID(u.PlaceIDs, placeID)
}

// AddReviewID records authorship of a review. Adding the same id twice
// keeps it exactly once.
func (u *User) AddReviewID(reviewID string) {
	u.ReviewIDs = appendUnique(u.ReviewIDs, reviewID)
}

// RemoveReviewID removes a review from the authored set, if present.
func (u *User) RemoveReviewID(reviewID string) {
	u.ReviewIDs = removeID(u.ReviewIDs, reviewID)
}

// NormalizeEmail trims, lowercases and validates an email address:
// exactly one '@', a non-empty local part, and a domain containing a
// dot that neither starts nor ends with one.
func NormalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", apperrors.NewValueError("email is required")
	}
	if strings.Count(email, "@") != 1 {
		return "", apperrors.NewValueError("email must contain exactly one '@' sign")
	}

	at := strings.Index(email, "@")
	local, domain := email[:at], email[at+1:]
	if local == "" ||
		domain == "" ||
		!strings.Contains(domain, ".") ||
		strings.HasPrefix(domain, ".") ||
		strings.HasSuffix(domain, ".") {
		return "", apperrors.NewValueError("email must be valid")
	}

	return email, nil
}

func validateName(field, raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", apperrors.NewValueError(field + " is required")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return "", apperrors.NewValueError(field + " must not exceed 50 characters")
	}
	return name, nil
}

func hashPassword(password string) (string, error) {
	if utf8.RuneCountInString(password) < 6 {
		return "", apperrors.NewValueError("password must contain at least 6 characters")
	}

	var hasDigit, hasUpper bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsUpper(r):
			hasUpper = true
		}
	}
	if !hasDigit {
		return "", apperrors.NewValueError("password must contain at least one digit")
	}
	if !hasUpper {
		return "", apperrors.NewValueError("password must contain at least one uppercase letter")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", apperrors.NewInternalError("failed to hash password", err)
	}
	return string(hash), nil
}

func appendUnique(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

func removeID(ids []string, id string) []string {
	for i, existing := range ids {
		if existing == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
