package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBase_AssignsUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		base := NewBase()
		assert.NotEmpty(t, base.ID)
		assert.False(t, seen[base.ID], "id %s assigned twice", base.ID)
		seen[base.ID] = true
	}
}

func TestNewBase_TimestampsEqualAtCreation(t *testing.T) {
	base := NewBase()
	assert.Equal(t, base.CreatedAt, base.UpdatedAt)
	assert.False(t, base.CreatedAt.IsZero())
}

func TestTouch_StrictlyIncreasesUpdatedAt(t *testing.T) {
	base := NewBase()
	created := base.CreatedAt

	for i := 0; i < 10; i++ {
		before := base.UpdatedAt
		base.Touch()
		assert.True(t, base.UpdatedAt.After(before))
	}
	assert.Equal(t, created, base.CreatedAt, "Touch must not change CreatedAt")
}
