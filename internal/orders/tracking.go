package orders

import (
	"time"

	"github.com/easeshop/easeshop/internal/models"
)

// TrackingStep is one milestone on the tracking page.
type TrackingStep struct {
	Label     string
	Completed bool
	Note      string
}

// Tracking is the derived, display-only view of an order's progress.
type Tracking struct {
	Order             *models.Order
	Steps             []TrackingStep
	EstimatedDelivery time.Time
}

// TrackingFor derives the four-step timeline from the order's status. The
// status field is the single source of truth: steps carry no state of their
// own. A cancelled order shows only the Confirmed step as completed.
func TrackingFor(order *models.Order, deliveryDays int) Tracking {
	processing := order.Status != models.StatusConfirmed && order.Status != models.StatusCancelled
	shipped := order.Status == models.StatusShipped || order.Status == models.StatusDelivered
	delivered := order.Status == models.StatusDelivered

	steps := []TrackingStep{
		{Label: "Order Confirmed", Completed: true, Note: "Your order has been placed"},
		{Label: "Processing", Completed: processing, Note: "Processing your order"},
		{Label: "Shipped", Completed: shipped, Note: "Shipped and on its way"},
		{Label: "Delivered", Completed: delivered, Note: "Delivered!"},
	}

	return Tracking{
		Order:             order,
		Steps:             steps,
		EstimatedDelivery: order.Date.AddDate(0, 0, deliveryDays),
	}
}
