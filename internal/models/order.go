package models

import "time"

// OrderStatus is the closed set of order states. Statuses are display-only:
// nothing in the core transitions an order after creation.
type OrderStatus string

const (
	StatusConfirmed  OrderStatus = "Confirmed"
	StatusProcessing OrderStatus = "Processing"
	StatusShipped    OrderStatus = "Shipped"
	StatusDelivered  OrderStatus = "Delivered"
	StatusCancelled  OrderStatus = "Cancelled"
)

// OrderItem is a denormalized line item: a copy of the product data taken at
// order time, deliberately decoupled from the live catalog so historical
// orders survive catalog changes.
type OrderItem struct {
	ProductID int    `json:"id"`
	Name      string `json:"name"`
	Brand     string `json:"brand,omitempty"`
	Price     int    `json:"price"`
	Quantity  int    `json:"quantity"`
	Image     string `json:"image,omitempty"`
}

// LineTotal is the item's contribution to the order subtotal.
func (i OrderItem) LineTotal() int {
	return i.Price * i.Quantity
}

// Customer is the buyer snapshot stored on an order.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ShippingAddress is the delivery address snapshot stored on an order.
type ShippingAddress struct {
	Address  string `json:"address"`
	City     string `json:"city"`
	Province string `json:"province"`
}

// Order is a historical purchase record. Totals are computed at creation and
// persisted verbatim; all amounts are integer rupees.
type Order struct {
	Number          string          `json:"orderNumber"`
	UserID          string          `json:"userId"`
	Date            time.Time       `json:"date"`
	Status          OrderStatus     `json:"status"`
	Customer        Customer        `json:"customer"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	Items           []OrderItem     `json:"items"`
	Subtotal        int             `json:"subtotal"`
	Tax             int             `json:"tax"`
	Shipping        int             `json:"shipping"`
	Total           int             `json:"total"`
	Notes           string          `json:"notes,omitempty"`
}

// TotalItems sums the quantities across all line items.
func (o Order) TotalItems() int {
	n := 0
	for _, item := range o.Items {
		n += item.Quantity
	}
	return n
}
