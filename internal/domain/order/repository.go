package order

import "context"

// Repository defines the read-side persistence operations for orders
type Repository interface {
	// Get retrieves an order by ID
	Get(ctx context.Context, id int64) (*Order, error)

	// ListLineItems retrieves the line items of an order in insertion order
	ListLineItems(ctx context.Context, orderID int64) ([]*LineItem, error)
}
