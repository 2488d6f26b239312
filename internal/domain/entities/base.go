package entities

import (
	"time"

	"github.com/google/uuid"
)

// Base carries the identity and timestamps shared by every entity.
// ID is assigned once at construction; CreatedAt never changes after
// that; UpdatedAt is refreshed through Touch on every successful
// mutation.
type Base struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBase assigns a fresh random identifier and equal creation and
// update timestamps.
func NewBase() Base {
	now := time.Now().UTC()
	return Base{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// EntityID returns the unique identifier
func (b *Base) EntityID() string {
	return b.ID
}

// Touch refreshes the update timestamp. The new value is strictly
// after the previous one even when the clock has not advanced.
func (b *Base) Touch() {
	now := time.Now().UTC()
	if !now.After(b.UpdatedAt) {
		now = b.UpdatedAt.Add(time.Nanosecond)
	}
	b.UpdatedAt = now
}
