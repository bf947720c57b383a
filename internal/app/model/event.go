package model

import "time"

// OrderStatusMessage is the body of an order status change published to the
// notifications exchange.
type OrderStatusMessage struct {
	OrderID     int64     `json:"order_id"`
	UserID      string    `json:"user_id"`
	OrderNumber string    `json:"order_number"`
	OldStatus   string    `json:"old_status,omitempty"`
	NewStatus   string    `json:"new_status"`
	ChangedAt   time.Time `json:"timestamp"`
}
