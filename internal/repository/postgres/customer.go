package postgres

import (
	"context"
	"database/sql"

	"github.com/hostora/hostora/internal/domain/customer"
	ierr "github.com/hostora/hostora/internal/errors"
	"github.com/hostora/hostora/internal/logger"
	"github.com/hostora/hostora/internal/postgres"
)

type customerRepository struct {
	db  *postgres.DB
	log *logger.Logger
}

func NewCustomerRepository(db *postgres.DB, log *logger.Logger) customer.Repository {
	return &customerRepository{db: db, log: log}
}

func (r *customerRepository) Get(ctx context.Context, id int64) (*customer.Customer, error) {
	const query = `
		SELECT id, name, company_name, email, phone, address, tax_code,
		       created_at, updated_at
		FROM customers
		WHERE id = $1`

	var c customer.Customer
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &c, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("customer not found").
				WithHintf("Customer %d does not exist", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHintf("failed to retrieve customer %d", id).
			Mark(ierr.ErrDatabase)
	}
	return &c, nil
}
