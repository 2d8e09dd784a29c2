// Package cart manages the pending-purchase list. The cart stores product
// references with quantities; checkout snapshots them into order line items.
package cart

import (
	"context"

	"github.com/easeshop/easeshop/internal/models"
	"github.com/easeshop/easeshop/internal/storage"
)

// Cart owns the cart slot.
type Cart struct {
	store storage.Store
}

// New returns a Cart over the given store.
func New(store storage.Store) *Cart {
	return &Cart{store: store}
}

// Items returns the current cart contents.
func (c *Cart) Items(ctx context.Context) ([]models.CartItem, error) {
	return storage.LoadJSON[[]models.CartItem](ctx, c.store, storage.SlotCart)
}

// Add puts a product in the cart. Adding a product already present merges the
// quantities instead of creating a second line.
func (c *Cart) Add(ctx context.Context, productID, quantity, price int) error {
	items, err := c.Items(ctx)
	if err != nil {
		return err
	}
	items = Merge(items, models.CartItem{ProductID: productID, Quantity: quantity, Price: price})
	return c.Save(ctx, items)
}

// Merge folds item into items, summing quantities on a product match.
func Merge(items []models.CartItem, item models.CartItem) []models.CartItem {
	for i := range items {
		if items[i].ProductID == item.ProductID {
			items[i].Quantity += item.Quantity
			return items
		}
	}
	return append(items, item)
}

// Save replaces the cart contents.
func (c *Cart) Save(ctx context.Context, items []models.CartItem) error {
	return storage.SaveJSON(ctx, c.store, storage.SlotCart, items)
}

// Clear empties the cart.
func (c *Cart) Clear(ctx context.Context) error {
	return c.store.Delete(ctx, storage.SlotCart)
}
