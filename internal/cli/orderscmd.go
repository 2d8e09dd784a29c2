package cli

import (
	"context"
	"fmt"

	"github.com/easeshop/easeshop/internal/orders"
)

// Orders lists the logged-in user's order history, most recent first.
func (a *App) Orders(ctx context.Context) error {
	user, err := a.session.Current(ctx)
	if err != nil {
		return err
	}

	list, err := a.ledger.ListForUser(ctx, user.ID)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("You have no orders yet.")
		return nil
	}

	for _, o := range list {
		fmt.Printf("%-16s %s  %-10s %2d item(s)  total %d\n",
			o.Number, o.Date.Format("2006-01-02"), o.Status, o.TotalItems(), o.Total)
	}
	return nil
}

// Track prints the tracking timeline of one order.
func (a *App) Track(ctx context.Context, number string) error {
	order, err := a.ledger.Find(ctx, number)
	if err != nil {
		return err
	}

	tr := orders.TrackingFor(order, a.config.DeliveryDays)

	fmt.Printf("Order %s  placed %s  status %s\n",
		order.Number, order.Date.Format("2006-01-02"), order.Status)
	for _, step := range tr.Steps {
		mark := " "
		if step.Completed {
			mark = "x"
		}
		fmt.Printf("[%s] %-16s %s\n", mark, step.Label, step.Note)
	}
	fmt.Println("Estimated delivery:", tr.EstimatedDelivery.Format("2006-01-02"))
	return nil
}

// Reorder puts a past order's items back into the cart, merging with
// whatever is already there.
func (a *App) Reorder(ctx context.Context, number string) error {
	order, err := a.ledger.Find(ctx, number)
	if err != nil {
		return err
	}

	for _, item := range order.Items {
		if err := a.cart.Add(ctx, item.ProductID, item.Quantity, item.Price); err != nil {
			return err
		}
	}

	fmt.Printf("Added %d item(s) from %s back to your cart.\n", order.TotalItems(), order.Number)
	return nil
}
