package customer

import "context"

// Repository defines the read-side persistence operations for customers
type Repository interface {
	// Get retrieves a customer by ID
	Get(ctx context.Context, id int64) (*Customer, error)
}
