package reviews

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easeshop/easeshop/internal/common"
	"github.com/easeshop/easeshop/internal/storage"
)

func newTestBook(t *testing.T) *Book {
	t.Helper()
	return NewBook(storage.NewMemoryStore())
}

func TestAdd_Validation(t *testing.T) {
	book := newTestBook(t)
	ctx := context.Background()

	for _, rating := range []int{0, 6, -1} {
		_, err := book.Add(ctx, 1, rating, "t", "c", "n")
		assert.ErrorIs(t, err, common.ErrInvalidRating)
	}

	list, err := book.ListForProduct(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestAdd_AnonymousDefault(t *testing.T) {
	book := newTestBook(t)

	r, err := book.Add(context.Background(), 1, 5, "Great", "Love it", "")
	require.NoError(t, err)
	assert.Equal(t, "Anonymous", r.Name)
	assert.NotEmpty(t, r.ID)
}

func TestListForProduct_NewestFirstAndIsolated(t *testing.T) {
	book := newTestBook(t)
	ctx := context.Background()

	clock := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	book.WithClock(func() time.Time { return clock })

	first, err := book.Add(ctx, 1, 4, "Good", "", "Asha")
	require.NoError(t, err)
	clock = clock.Add(time.Minute)
	second, err := book.Add(ctx, 1, 5, "Better", "", "Ravi")
	require.NoError(t, err)
	_, err = book.Add(ctx, 2, 1, "Other product", "", "Mira")
	require.NoError(t, err)

	list, err := book.ListForProduct(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestMarkHelpful(t *testing.T) {
	book := newTestBook(t)
	ctx := context.Background()

	r, err := book.Add(ctx, 1, 5, "Great", "", "Asha")
	require.NoError(t, err)

	n, err := book.MarkHelpful(ctx, 1, r.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = book.MarkHelpful(ctx, 1, r.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	list, err := book.ListForProduct(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, list[0].Helpful)

	// wrong product or unknown id
	_, err = book.MarkHelpful(ctx, 2, r.ID)
	assert.ErrorIs(t, err, common.ErrReviewNotFound)
	_, err = book.MarkHelpful(ctx, 1, "nope")
	assert.ErrorIs(t, err, common.ErrReviewNotFound)
}

func TestSummary(t *testing.T) {
	book := newTestBook(t)
	ctx := context.Background()

	s, err := book.Summary(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, s.Count)
	assert.Zero(t, s.Average)

	for _, rating := range []int{5, 5, 4, 1} {
		_, err := book.Add(ctx, 1, rating, "", "", "Asha")
		require.NoError(t, err)
	}

	s, err = book.Summary(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Count)
	assert.InDelta(t, 3.75, s.Average, 1e-9)
	assert.Equal(t, [5]int{1, 0, 0, 1, 2}, s.StarCounts)
}
