package postgres

import (
	"context"
	"database/sql"

	"github.com/hostora/hostora/internal/domain/invoice"
	ierr "github.com/hostora/hostora/internal/errors"
	"github.com/hostora/hostora/internal/logger"
	"github.com/hostora/hostora/internal/postgres"
)

type invoiceRepository struct {
	db  *postgres.DB
	log *logger.Logger
}

func NewInvoiceRepository(db *postgres.DB, log *logger.Logger) invoice.Repository {
	return &invoiceRepository{db: db, log: log}
}

func (r *invoiceRepository) Get(ctx context.Context, id int64) (*invoice.Invoice, error) {
	const query = `
		SELECT id, invoice_number, customer_id, status, payment_method, currency,
		       issue_date, due_date, subtotal, tax, total, amount_paid, notes,
		       created_at, updated_at
		FROM invoices
		WHERE id = $1`

	var inv invoice.Invoice
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &inv, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("invoice not found").
				WithHintf("Invoice %d does not exist", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHintf("failed to retrieve invoice %d", id).
			Mark(ierr.ErrDatabase)
	}
	return &inv, nil
}

func (r *invoiceRepository) ListLineItems(ctx context.Context, invoiceID int64) ([]*invoice.LineItem, error) {
	const query = `
		SELECT id, invoice_id, description, service_name, quantity, unit_price, tax_rate
		FROM invoice_line_items
		WHERE invoice_id = $1
		ORDER BY id`

	items := []*invoice.LineItem{}
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &items, query, invoiceID); err != nil {
		return nil, ierr.WithError(err).
			WithHintf("failed to retrieve line items for invoice %d", invoiceID).
			Mark(ierr.ErrDatabase)
	}
	return items, nil
}
