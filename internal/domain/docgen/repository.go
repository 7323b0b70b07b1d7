package docgen

import "context"

// Repository is the data assembler: it denormalizes a document row plus its
// related party and line-item rows into a render-ready view model.
// Implementations are read-only and must validate the ID (positive integer)
// before touching storage.
type Repository interface {
	// GetInvoiceData assembles the invoice view model for the given ID
	GetInvoiceData(ctx context.Context, invoiceID int64) (*InvoiceData, error)

	// GetContractData assembles the contract view model for the given ID
	GetContractData(ctx context.Context, contractID int64) (*ContractData, error)

	// GetOrderData assembles the order view model for the given ID
	GetOrderData(ctx context.Context, orderID int64) (*OrderData, error)
}
