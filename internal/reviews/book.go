// Package reviews stores customer product reviews, keyed by product, with a
// helpful-vote counter and an aggregated rating summary per product.
package reviews

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/easeshop/easeshop/internal/common"
	"github.com/easeshop/easeshop/internal/models"
	"github.com/easeshop/easeshop/internal/storage"
)

// Book owns the reviews collection. Reviews are grouped by product ID in a
// single slot.
type Book struct {
	store storage.Store
	now   func() time.Time
}

// NewBook returns a Book over the given store.
func NewBook(store storage.Store) *Book {
	return &Book{store: store, now: time.Now}
}

// WithClock replaces the book's time source. Intended for tests.
func (b *Book) WithClock(now func() time.Time) *Book {
	b.now = now
	return b
}

func (b *Book) loadAll(ctx context.Context) (map[string][]models.Review, error) {
	all, err := storage.LoadJSON[map[string][]models.Review](ctx, b.store, storage.SlotReviews)
	if err != nil {
		return nil, err
	}
	if all == nil {
		all = map[string][]models.Review{}
	}
	return all, nil
}

func productKey(productID int) string {
	return strconv.Itoa(productID)
}

// Add records a review for a product. Rating must be 1 through 5; an empty
// author name is stored as "Anonymous". New reviews go to the front so the
// latest review lists first.
func (b *Book) Add(ctx context.Context, productID int, rating int, title, content, name string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, common.ErrInvalidRating
	}
	if name == "" {
		name = "Anonymous"
	}

	review := models.Review{
		ID:      uuid.NewString(),
		Rating:  rating,
		Title:   title,
		Content: content,
		Name:    name,
		Date:    b.now().UTC(),
	}

	all, err := b.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	key := productKey(productID)
	all[key] = append([]models.Review{review}, all[key]...)
	if err := storage.SaveJSON(ctx, b.store, storage.SlotReviews, all); err != nil {
		return nil, err
	}

	return &review, nil
}

// ListForProduct returns the product's reviews, newest first.
func (b *Book) ListForProduct(ctx context.Context, productID int) ([]models.Review, error) {
	all, err := b.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	return all[productKey(productID)], nil
}

// MarkHelpful increments the helpful counter of one review and returns the
// new count.
func (b *Book) MarkHelpful(ctx context.Context, productID int, reviewID string) (int, error) {
	all, err := b.loadAll(ctx)
	if err != nil {
		return 0, err
	}

	key := productKey(productID)
	for i := range all[key] {
		if all[key][i].ID != reviewID {
			continue
		}
		all[key][i].Helpful++
		if err := storage.SaveJSON(ctx, b.store, storage.SlotReviews, all); err != nil {
			return 0, err
		}
		return all[key][i].Helpful, nil
	}
	return 0, common.ErrReviewNotFound
}

// Summary aggregates a product's reviews into a count, mean rating, and a
// per-star histogram. An unreviewed product yields the zero summary.
func (b *Book) Summary(ctx context.Context, productID int) (models.ReviewSummary, error) {
	list, err := b.ListForProduct(ctx, productID)
	if err != nil {
		return models.ReviewSummary{}, err
	}

	var s models.ReviewSummary
	if len(list) == 0 {
		return s, nil
	}

	sum := 0
	for _, r := range list {
		sum += r.Rating
		s.StarCounts[r.Rating-1]++
	}
	s.Count = len(list)
	s.Average = float64(sum) / float64(s.Count)
	return s, nil
}
