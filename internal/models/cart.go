package models

// CartItem is one line of the cart slot: product reference, quantity and the
// unit price at the time the item was added. The cart slot is owned by the
// storefront UI; the core consumes it at checkout and refills it on reorder.
type CartItem struct {
	ProductID int `json:"id"`
	Quantity  int `json:"quantity"`
	Price     int `json:"price"`
}
