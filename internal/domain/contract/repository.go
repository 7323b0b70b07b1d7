package contract

import "context"

// Repository defines the read-side persistence operations for contracts
type Repository interface {
	// Get retrieves a contract by ID, including its attached service ID lists
	Get(ctx context.Context, id int64) (*Contract, error)
}
