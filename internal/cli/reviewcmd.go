package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/easeshop/easeshop/internal/common"
)

// AddReview records a product review. The author name defaults to the
// logged-in user, falling back to a prompt (empty answers are stored as
// Anonymous). An out-of-range rating is rejected before anything is saved.
func (a *App) AddReview(ctx context.Context, productID string) error {
	id, err := strconv.Atoi(productID)
	if err != nil {
		fmt.Println("Usage: review <product id>")
		return nil
	}

	product, err := a.catalog.Find(id)
	if err != nil {
		return err
	}

	var name string
	if user, sessErr := a.session.Current(ctx); sessErr == nil {
		name = user.FullName()
	} else {
		name, err = getSimpleText(a.reader, "Your name (optional)", os.Stdout)
		if err != nil {
			return err
		}
	}

	ratingText, err := getSimpleText(a.reader, "Rating (1-5)", os.Stdout)
	if err != nil {
		return err
	}
	rating, err := strconv.Atoi(ratingText)
	if err != nil {
		return common.ErrInvalidRating
	}

	title, err := getSimpleText(a.reader, "Review title", os.Stdout)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Your review", os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.reviews.Add(ctx, product.ID, rating, title, content, name); err != nil {
		return err
	}

	fmt.Printf("Thanks for reviewing %s!\n", product.Name)
	return nil
}

// ShowReviews prints a product's rating summary and its reviews, newest
// first.
func (a *App) ShowReviews(ctx context.Context, productID string) error {
	id, err := strconv.Atoi(productID)
	if err != nil {
		fmt.Println("Usage: reviews <product id>")
		return nil
	}

	product, err := a.catalog.Find(id)
	if err != nil {
		return err
	}

	summary, err := a.reviews.Summary(ctx, product.ID)
	if err != nil {
		return err
	}
	if summary.Count == 0 {
		fmt.Printf("No reviews for %s yet.\n", product.Name)
		return nil
	}

	fmt.Printf("%s: %.1f/5 from %d review(s)\n", product.Name, summary.Average, summary.Count)
	for stars := 5; stars >= 1; stars-- {
		fmt.Printf("%d star: %d\n", stars, summary.StarCounts[stars-1])
	}

	list, err := a.reviews.ListForProduct(ctx, product.ID)
	if err != nil {
		return err
	}
	for _, r := range list {
		fmt.Printf("\n%s %s by %s (%s)\n", strings.Repeat("*", r.Rating), r.Title, r.Name, r.Date.Format("2006-01-02"))
		if r.Content != "" {
			fmt.Println(r.Content)
		}
		if r.Helpful > 0 {
			fmt.Printf("%d found this helpful\n", r.Helpful)
		}
	}
	return nil
}
