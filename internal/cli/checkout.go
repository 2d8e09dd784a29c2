package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/easeshop/easeshop/internal/common"
	"github.com/easeshop/easeshop/internal/models"
	"github.com/easeshop/easeshop/internal/orders"
)

// orderItemsFromCart snapshots the cart into order line items. The line price
// is the cart price; name, brand, and image come from the catalog when the
// product still exists.
func (a *App) orderItemsFromCart(items []models.CartItem) []models.OrderItem {
	lines := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		line := models.OrderItem{
			ProductID: item.ProductID,
			Name:      fmt.Sprintf("Product %d", item.ProductID),
			Price:     item.Price,
			Quantity:  item.Quantity,
		}
		if p, err := a.catalog.Find(item.ProductID); err == nil {
			line.Name = p.Name
			line.Brand = p.Brand
			line.Image = p.Image
		}
		lines = append(lines, line)
	}
	return lines
}

// Checkout turns the cart into an order for the logged-in user. The shipping
// address defaults to the profile; each field can be overridden at the
// prompt. The cart is cleared only after the order is persisted.
func (a *App) Checkout(ctx context.Context) error {
	user, err := a.session.Current(ctx)
	if err != nil {
		return err
	}

	items, err := a.cart.Items(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return common.ErrEmptyCart
	}

	address := models.ShippingAddress{
		Address:  user.Address,
		City:     user.City,
		Province: user.Province,
	}
	addressPrompts := []struct {
		label  string
		target *string
	}{
		{"Address", &address.Address},
		{"City", &address.City},
		{"Province", &address.Province},
	}
	for _, p := range addressPrompts {
		answer, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s] (empty keeps)", p.label, *p.target), os.Stdout)
		if err != nil {
			return err
		}
		if answer != "" {
			*p.target = answer
		}
	}

	payment, err := getSimpleText(a.reader, "Payment method (cod/card/easypaisa/jazzcash)", os.Stdout)
	if err != nil {
		return err
	}
	if payment == "" {
		payment = "cod"
	}

	notes, err := getSimpleText(a.reader, "Order notes (optional)", os.Stdout)
	if err != nil {
		return err
	}

	order, err := a.ledger.Place(ctx, user.ID, a.orderItemsFromCart(items), orders.Checkout{
		Customer: models.Customer{
			Name:  user.FullName(),
			Email: user.Email,
			Phone: user.Phone,
		},
		ShippingAddress: address,
		PaymentMethod:   payment,
		Notes:           notes,
	})
	if err != nil {
		return err
	}

	if err := a.cart.Clear(ctx); err != nil {
		return err
	}

	fmt.Println("Order placed! Number:", order.Number)
	fmt.Printf("Subtotal %d  Tax %d  Shipping %d  Total %d\n",
		order.Subtotal, order.Tax, order.Shipping, order.Total)
	return nil
}
