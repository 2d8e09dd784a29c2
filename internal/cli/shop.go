package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/easeshop/easeshop/internal/catalog"
)

func printProducts(products []catalog.Product) {
	for _, p := range products {
		discount := ""
		if p.OriginalPrice > p.Price {
			discount = fmt.Sprintf(" (was %d)", p.OriginalPrice)
		}
		fmt.Printf("%3d  %-30s %-12s %5d%s  stock %d\n",
			p.ID, p.Name, p.Brand, p.Price, discount, p.Stock)
	}
}

// Products lists the whole catalog.
func (a *App) Products(ctx context.Context) error {
	printProducts(a.catalog.All())
	return nil
}

// Search lists the products matching the query.
func (a *App) Search(ctx context.Context, query string) error {
	found := a.catalog.Search(query)
	if len(found) == 0 {
		fmt.Println("No products found.")
		return nil
	}
	printProducts(found)
	return nil
}

// AddToCart puts a catalog product into the cart. args holds the product id
// and an optional quantity, defaulting to 1.
func (a *App) AddToCart(ctx context.Context, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Println("Usage: add <product id> [quantity]")
		return nil
	}

	quantity := 1
	if len(args) > 1 {
		quantity, err = strconv.Atoi(args[1])
		if err != nil || quantity < 1 {
			fmt.Println("Usage: add <product id> [quantity]")
			return nil
		}
	}

	product, err := a.catalog.Find(id)
	if err != nil {
		return err
	}

	if err := a.cart.Add(ctx, product.ID, quantity, product.Price); err != nil {
		return err
	}

	fmt.Printf("Added %s x%d to your cart.\n", product.Name, quantity)
	return nil
}

// ShowCart prints the cart contents and the running subtotal.
func (a *App) ShowCart(ctx context.Context) error {
	items, err := a.cart.Items(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("Your cart is empty.")
		return nil
	}

	subtotal := 0
	for _, item := range items {
		name := fmt.Sprintf("Product %d", item.ProductID)
		if p, err := a.catalog.Find(item.ProductID); err == nil {
			name = p.Name
		}
		lineTotal := item.Price * item.Quantity
		subtotal += lineTotal
		fmt.Printf("%-30s x%-3d %6d\n", name, item.Quantity, lineTotal)
	}
	fmt.Printf("Subtotal: %d\n", subtotal)

	if subtotal > a.config.FreeShippingThreshold {
		fmt.Println("Free shipping applies.")
	}
	return nil
}
