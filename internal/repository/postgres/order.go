package postgres

import (
	"context"
	"database/sql"

	"github.com/hostora/hostora/internal/domain/order"
	ierr "github.com/hostora/hostora/internal/errors"
	"github.com/hostora/hostora/internal/logger"
	"github.com/hostora/hostora/internal/postgres"
)

type orderRepository struct {
	db  *postgres.DB
	log *logger.Logger
}

func NewOrderRepository(db *postgres.DB, log *logger.Logger) order.Repository {
	return &orderRepository{db: db, log: log}
}

func (r *orderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	const query = `
		SELECT id, order_number, customer_id, status, currency, order_date,
		       subtotal, tax, total, notes, created_at, updated_at
		FROM orders
		WHERE id = $1`

	var o order.Order
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &o, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("order not found").
				WithHintf("Order %d does not exist", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHintf("failed to retrieve order %d", id).
			Mark(ierr.ErrDatabase)
	}
	return &o, nil
}

func (r *orderRepository) ListLineItems(ctx context.Context, orderID int64) ([]*order.LineItem, error) {
	const query = `
		SELECT id, order_id, description, service_name, quantity, unit_price, tax_rate
		FROM order_line_items
		WHERE order_id = $1
		ORDER BY id`

	items := []*order.LineItem{}
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &items, query, orderID); err != nil {
		return nil, ierr.WithError(err).
			WithHintf("failed to retrieve line items for order %d", orderID).
			Mark(ierr.ErrDatabase)
	}
	return items, nil
}
