package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yemitan/staylodge/internal/domain/entities"
)

func newTestUser(t *testing.T, email string) *entities.User {
	t.Helper()
	user, err := entities.NewUser(entities.NewUserInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     email,
	})
	require.NoError(t, err)
	return user
}

func newTestReview(t *testing.T, placeID string) *entities.Review {
	t.Helper()
	review, err := entities.NewReview(entities.NewReviewInput{
		UserID:  "user-1",
		PlaceID: placeID,
		Rating:  5,
		Text:    "Lovely",
	})
	require.NoError(t, err)
	return review
}

func TestUserAdapter_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewUserAdapter()

	user := newTestUser(t, "ada@example.com")
	require.NoError(t, repo.Add(ctx, user))

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestUserAdapter_AbsentIDYieldsNilNil(t *testing.T) {
	repo := NewUserAdapter()
	got, err := repo.GetByID(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserAdapter_GetByEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserAdapter()

	user := newTestUser(t, "ada@example.com")
	require.NoError(t, repo.Add(ctx, user))

	got, err := repo.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.ID, got.ID)

	got, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserAdapter_ListInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewUserAdapter()

	first := newTestUser(t, "first@example.com")
	second := newTestUser(t, "second@example.com")
	require.NoError(t, repo.Add(ctx, first))
	require.NoError(t, repo.Add(ctx, second))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, first.ID, users[0].ID)
	assert.Equal(t, second.ID, users[1].ID)
}

func TestReviewAdapter_ListByPlace(t *testing.T) {
	ctx := context.Background()
	repo := NewReviewAdapter()

	r1 := newTestReview(t, "place-1")
	r2 := newTestReview(t, "place-2")
	r3 := newTestReview(t, "place-1")
	require.NoError(t, repo.Add(ctx, r1))
	require.NoError(t, repo.Add(ctx, r2))
	require.NoError(t, repo.Add(ctx, r3))

	reviews, err := repo.ListByPlace(ctx, "place-1")
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, r1.ID, reviews[0].ID)
	assert.Equal(t, r3.ID, reviews[1].ID)

	empty, err := repo.ListByPlace(ctx, "place-9")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestReviewAdapter_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewReviewAdapter()

	review := newTestReview(t, "place-1")
	require.NoError(t, repo.Add(ctx, review))
	require.NoError(t, repo.Delete(ctx, review.ID))

	got, err := repo.GetByID(ctx, review.ID)
	assert.NoError(t, err)
	assert.Nil(t, got)

	// deleting again is a no-op
	assert.NoError(t, repo.Delete(ctx, review.ID))
}
