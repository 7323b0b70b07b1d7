package invoice

import "context"

// Repository defines the read-side persistence operations the document
// generator needs. Writes are owned by the back-office CRUD layer.
type Repository interface {
	// Get retrieves an invoice by ID
	Get(ctx context.Context, id int64) (*Invoice, error)

	// ListLineItems retrieves the line items of an invoice in insertion order
	ListLineItems(ctx context.Context, invoiceID int64) ([]*LineItem, error)
}
