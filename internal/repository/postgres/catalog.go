package postgres

import (
	"context"

	"github.com/hostora/hostora/internal/domain/catalog"
	ierr "github.com/hostora/hostora/internal/errors"
	"github.com/hostora/hostora/internal/logger"
	"github.com/hostora/hostora/internal/postgres"
	"github.com/lib/pq"
)

type catalogRepository struct {
	db  *postgres.DB
	log *logger.Logger
}

func NewCatalogRepository(db *postgres.DB, log *logger.Logger) catalog.Repository {
	return &catalogRepository{db: db, log: log}
}

func (r *catalogRepository) ListDomainsByIDs(ctx context.Context, ids []int64) ([]*catalog.Domain, error) {
	if len(ids) == 0 {
		return []*catalog.Domain{}, nil
	}

	const query = `
		SELECT id, name, registrar, expiry_date
		FROM domains
		WHERE id = ANY($1)
		ORDER BY id`

	domains := []*catalog.Domain{}
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &domains, query, pq.Array(ids)); err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to retrieve domains").
			Mark(ierr.ErrDatabase)
	}
	return domains, nil
}

func (r *catalogRepository) ListHostingByIDs(ctx context.Context, ids []int64) ([]*catalog.Hosting, error) {
	if len(ids) == 0 {
		return []*catalog.Hosting{}, nil
	}

	const query = `
		SELECT id, plan_name, domain_name, storage_gb, bandwidth_gb
		FROM hosting_plans
		WHERE id = ANY($1)
		ORDER BY id`

	plans := []*catalog.Hosting{}
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &plans, query, pq.Array(ids)); err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to retrieve hosting plans").
			Mark(ierr.ErrDatabase)
	}
	return plans, nil
}

func (r *catalogRepository) ListVPSByIDs(ctx context.Context, ids []int64) ([]*catalog.VPS, error) {
	if len(ids) == 0 {
		return []*catalog.VPS{}, nil
	}

	const query = `
		SELECT id, hostname, cpu_cores, ram_gb, storage_gb, ip_address, os
		FROM vps_instances
		WHERE id = ANY($1)
		ORDER BY id`

	instances := []*catalog.VPS{}
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &instances, query, pq.Array(ids)); err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to retrieve VPS instances").
			Mark(ierr.ErrDatabase)
	}
	return instances, nil
}
