package postgres

import (
	"context"
	"database/sql"

	"github.com/hostora/hostora/internal/domain/contract"
	ierr "github.com/hostora/hostora/internal/errors"
	"github.com/hostora/hostora/internal/logger"
	"github.com/hostora/hostora/internal/postgres"
	"github.com/hostora/hostora/internal/types"
)

type contractRepository struct {
	db  *postgres.DB
	log *logger.Logger
}

func NewContractRepository(db *postgres.DB, log *logger.Logger) contract.Repository {
	return &contractRepository{db: db, log: log}
}

func (r *contractRepository) Get(ctx context.Context, id int64) (*contract.Contract, error) {
	const query = `
		SELECT id, contract_number, customer_id, status, currency, start_date,
		       end_date, value, notes, created_at, updated_at
		FROM contracts
		WHERE id = $1`

	var c contract.Contract
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &c, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("contract not found").
				WithHintf("Contract %d does not exist", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHintf("failed to retrieve contract %d", id).
			Mark(ierr.ErrDatabase)
	}

	if err := r.loadServiceIDs(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// loadServiceIDs fills the per-kind attached service ID lists from the
// contract_services junction table
func (r *contractRepository) loadServiceIDs(ctx context.Context, c *contract.Contract) error {
	const query = `
		SELECT service_kind, service_id
		FROM contract_services
		WHERE contract_id = $1
		ORDER BY service_id`

	rows := []struct {
		ServiceKind string `db:"service_kind"`
		ServiceID   int64  `db:"service_id"`
	}{}
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &rows, query, c.ID); err != nil {
		return ierr.WithError(err).
			WithHintf("failed to retrieve services for contract %d", c.ID).
			Mark(ierr.ErrDatabase)
	}

	c.DomainIDs = []int64{}
	c.HostingIDs = []int64{}
	c.VPSIDs = []int64{}
	for _, row := range rows {
		switch types.ServiceKind(row.ServiceKind) {
		case types.ServiceKindDomain:
			c.DomainIDs = append(c.DomainIDs, row.ServiceID)
		case types.ServiceKindHosting:
			c.HostingIDs = append(c.HostingIDs, row.ServiceID)
		case types.ServiceKindVPS:
			c.VPSIDs = append(c.VPSIDs, row.ServiceID)
		default:
			r.log.Warnw("skipping unknown service kind on contract",
				"contract_id", c.ID, "service_kind", row.ServiceKind)
		}
	}
	return nil
}
