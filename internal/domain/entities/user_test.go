package entities

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/yemitan/staylodge/pkg/errors"
)

func validUserInput() NewUserInput {
	return NewUserInput{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john.doe@example.com",
		Password:  "Secret1",
	}
}

func TestNewUser_Success(t *testing.T) {
	user, err := NewUser(validUserInput())
	require.NoError(t, err)

	assert.Equal(t, "John", user.FirstName)
	assert.Equal(t, "Doe", user.LastName)
	assert.Equal(t, "john.doe@example.com", user.Email)
	assert.False(t, user.IsAdmin)
	assert.Empty(t, user.PlaceIDs)
	assert.Empty(t, user.ReviewIDs)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, user.CreatedAt, user.UpdatedAt)

	// The raw password is never stored
	assert.NotEqual(t, "Secret1", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Secret1")))
}

func TestNewUser_NormalizesFields(t *testing.T) {
	input := validUserInput()
	input.FirstName = "  John "
	input.LastName = " Doe  "
	input.Email = "  John.DOE@Example.COM "

	user, err := NewUser(input)
	require.NoError(t, err)

	assert.Equal(t, "John", user.FirstName)
	assert.Equal(t, "Doe", user.LastName)
	assert.Equal(t, "john.doe@example.com", user.Email)
}

func TestNewUser_PasswordOptional(t *testing.T) {
	input := validUserInput()
	input.Password = ""

	user, err := NewUser(input)
	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)
}

func TestNewUser_InvalidInputs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*NewUserInput)
	}{
		{"empty first name", func(in *NewUserInput) { in.FirstName = "   " }},
		{"first name too long", func(in *NewUserInput) { in.FirstName = strings.Repeat("a", 51) }},
		{"empty last name", func(in *NewUserInput) { in.LastName = "" }},
		{"last name too long", func(in *NewUserInput) { in.LastName = strings.Repeat("b", 51) }},
		{"empty email", func(in *NewUserInput) { in.Email = "" }},
		{"email without at sign", func(in *NewUserInput) { in.Email = "john.example.com" }},
		{"email with two at signs", func(in *NewUserInput) { in.Email = "john@doe@example.com" }},
		{"email without local part", func(in *NewUserInput) { in.Email = "@example.com" }},
		{"email without domain", func(in *NewUserInput) { in.Email = "john@" }},
		{"email domain without dot", func(in *NewUserInput) { in.Email = "john@example" }},
		{"email domain starts with dot", func(in *NewUserInput) { in.Email = "john@.example.com" }},
		{"email domain ends with dot", func(in *NewUserInput) { in.Email = "john@example.com." }},
		{"password too short", func(in *NewUserInput) { in.Password = "Ab1" }},
		{"password without digit", func(in *NewUserInput) { in.Password = "Abcdef" }},
		{"password without uppercase", func(in *NewUserInput) { in.Password = "abcde1" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validUserInput()
			tt.mutate(&input)

			user, err := NewUser(input)
			assert.Nil(t, user)
			assert.Equal(t, apperrors.ErrorTypeInvalidValue, apperrors.TypeOf(err))
		})
	}
}

func TestNewUser_NameAtMaxLengthAccepted(t *testing.T) {
	input := validUserInput()
	input.FirstName = strings.Repeat("a", 50)

	_, err := NewUser(input)
	assert.NoError(t, err)
}

func TestUser_ApplyUpdate(t *testing.T) {
	user, err := NewUser(validUserInput())
	require.NoError(t, err)

	firstName := "  Jane "
	email := "Jane.Doe@Example.com"
	err = user.ApplyUpdate(UserUpdate{FirstName: &firstName, Email: &email})
	require.NoError(t, err)

	assert.Equal(t, "Jane", user.FirstName)
	assert.Equal(t, "Doe", user.LastName)
	assert.Equal(t, "jane.doe@example.com", user.Email)
	assert.True(t, user.UpdatedAt.After(user.CreatedAt))
}

func TestUser_ApplyUpdate_EmptyUpdateOnlyTouches(t *testing.T) {
	user, err := NewUser(validUserInput())
	require.NoError(t, err)
	before := user.UpdatedAt

	require.NoError(t, user.ApplyUpdate(UserUpdate{}))

	assert.Equal(t, "John", user.FirstName)
	assert.Equal(t, "john.doe@example.com", user.Email)
	assert.True(t, user.UpdatedAt.After(before))
}

func TestUser_ApplyUpdate_AllOrNothing(t *testing.T) {
	user, err := NewUser(validUserInput())
	require.NoError(t, err)
	before := user.UpdatedAt

	firstName := "Jane"
	badEmail := "not-an-email"
	err = user.ApplyUpdate(UserUpdate{FirstName: &firstName, Email: &badEmail})
	assert.Error(t, err)

	// Nothing changed, not even the valid field
	assert.Equal(t, "John", user.FirstName)
	assert.Equal(t, "john.doe@example.com", user.Email)
	assert.Equal(t, before, user.UpdatedAt)
}

func TestUser_ApplyUpdate_PasswordRevalidated(t *testing.T) {
	user, err := NewUser(validUserInput())
	require.NoError(t, err)

	weak := "abc"
	err = user.ApplyUpdate(UserUpdate{Password: &weak})
	assert.Equal(t, apperrors.ErrorTypeInvalidValue, apperrors.TypeOf(err))
}

func TestUser_AddPlaceID_Idempotent(t *testing.T) {
	user, err := NewUser(validUserInput())
	require.NoError(t, err)

	user.AddPlaceID("p-1")
	user.AddPlaceID("p-1")
	user.AddPlaceID("p-2")

	assert.Equal(t, []string{"p-1", "p-2"}, user.PlaceIDs)
}

func TestUser_AddRemoveReviewID(t *testing.T) {
	user, err := NewUser(validUserInput())
	require.NoError(t, err)

	user.AddReviewID("r-1")
	user.AddReviewID("r-1")
	assert.Equal(t, []string{"r-1"}, user.ReviewIDs)

	user.RemoveReviewID("r-1")
	assert.Empty(t, user.ReviewIDs)

	// Removing an absent id is a no-op
	user.RemoveReviewID("r-1")
	assert.Empty(t, user.ReviewIDs)
}
