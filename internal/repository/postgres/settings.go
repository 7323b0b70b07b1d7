package postgres

import (
	"context"
	"database/sql"

	"github.com/hostora/hostora/internal/domain/settings"
	ierr "github.com/hostora/hostora/internal/errors"
	"github.com/hostora/hostora/internal/logger"
	"github.com/hostora/hostora/internal/postgres"
)

type settingsRepository struct {
	db  *postgres.DB
	log *logger.Logger
}

func NewSettingsRepository(db *postgres.DB, log *logger.Logger) settings.Repository {
	return &settingsRepository{db: db, log: log}
}

func (r *settingsRepository) GetCompanyProfile(ctx context.Context) (*settings.CompanyProfile, error) {
	const query = `
		SELECT id, name, tax_code, email, phone, address,
		       bank_name, bank_account, bank_holder, updated_at
		FROM company_settings
		ORDER BY id
		LIMIT 1`

	var profile settings.CompanyProfile
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &profile, query); err != nil {
		if err == sql.ErrNoRows {
			// No settings row yet; callers fall back to configured defaults
			return nil, nil
		}
		return nil, ierr.WithError(err).
			WithHint("failed to retrieve company settings").
			Mark(ierr.ErrDatabase)
	}
	return &profile, nil
}
