// Package orders implements the order ledger: an append-only collection of
// historical purchase records with totals computed once at checkout, plus the
// read-only tracking derivation shown on the tracking page.
package orders

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"sort"
	"time"

	"github.com/easeshop/easeshop/internal/common"
	"github.com/easeshop/easeshop/internal/models"
	"github.com/easeshop/easeshop/internal/storage"
)

// Pricing holds the checkout pricing rules. Amounts are integer rupees.
type Pricing struct {
	TaxAmount             int
	ShippingFee           int
	FreeShippingThreshold int
}

// ShippingFor returns the shipping charge for a subtotal: free strictly
// above the threshold, the flat fee otherwise.
func (p Pricing) ShippingFor(subtotal int) int {
	if subtotal > p.FreeShippingThreshold {
		return 0
	}
	return p.ShippingFee
}

// Checkout carries the buyer-entered side of an order.
type Checkout struct {
	Customer        models.Customer
	ShippingAddress models.ShippingAddress
	PaymentMethod   string
	Notes           string
}

// Ledger owns the orders collection.
type Ledger struct {
	store   storage.Store
	pricing Pricing
	now     func() time.Time
}

// NewLedger returns a Ledger applying the given pricing rules.
func NewLedger(store storage.Store, pricing Pricing) *Ledger {
	return &Ledger{store: store, pricing: pricing, now: time.Now}
}

// WithClock replaces the ledger's time source. Intended for tests.
func (l *Ledger) WithClock(now func() time.Time) *Ledger {
	l.now = now
	return l
}

func (l *Ledger) loadAll(ctx context.Context) ([]models.Order, error) {
	return storage.LoadJSON[[]models.Order](ctx, l.store, storage.SlotOrders)
}

// generateOrderNumber produces "EASE-<year>-<4 random digits>".
func (l *Ledger) generateOrderNumber() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("EASE-%d-%04d", l.now().Year(), n.Int64()), nil
}

// Place appends a new order for userID. Items must already be denormalized
// snapshots of the purchased products; totals are computed here, once, and
// persisted verbatim. The initial status is always Confirmed.
//
// Clearing the cart slot is the caller's side of the contract.
func (l *Ledger) Place(ctx context.Context, userID string, items []models.OrderItem, co Checkout) (*models.Order, error) {
	if userID == "" {
		return nil, common.ErrNotAuthenticated
	}
	if len(items) == 0 {
		return nil, common.ErrEmptyCart
	}

	subtotal := 0
	for _, item := range items {
		subtotal += item.LineTotal()
	}
	shipping := l.pricing.ShippingFor(subtotal)

	number, err := l.generateOrderNumber()
	if err != nil {
		return nil, err
	}

	order := models.Order{
		Number:          number,
		UserID:          userID,
		Date:            l.now().UTC(),
		Status:          models.StatusConfirmed,
		Customer:        co.Customer,
		ShippingAddress: co.ShippingAddress,
		PaymentMethod:   co.PaymentMethod,
		Items:           items,
		Subtotal:        subtotal,
		Tax:             l.pricing.TaxAmount,
		Shipping:        shipping,
		Total:           subtotal + l.pricing.TaxAmount + shipping,
		Notes:           co.Notes,
	}

	all, err := l.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	all = append(all, order)
	if err := storage.SaveJSON(ctx, l.store, storage.SlotOrders, all); err != nil {
		return nil, err
	}

	return &order, nil
}

// ListForUser returns the user's orders, most recent first. Orders placed at
// the same instant come back in reverse append order.
func (l *Ledger) ListForUser(ctx context.Context, userID string) ([]models.Order, error) {
	all, err := l.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	var mine []models.Order
	for i := len(all) - 1; i >= 0; i-- {
		if all[i].UserID == userID {
			mine = append(mine, all[i])
		}
	}

	sort.SliceStable(mine, func(i, j int) bool {
		return mine[i].Date.After(mine[j].Date)
	})
	return mine, nil
}

// Find returns the order with the given number, or ErrOrderNotFound.
func (l *Ledger) Find(ctx context.Context, number string) (*models.Order, error) {
	all, err := l.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, o := range all {
		if o.Number == number {
			return &o, nil
		}
	}
	return nil, common.ErrOrderNotFound
}
