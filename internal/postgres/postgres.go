package postgres

import (
	"context"
	"database/sql"

	"github.com/hostora/hostora/internal/config"
	"github.com/hostora/hostora/internal/logger"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// DB wraps sqlx.DB
type DB struct {
	*sqlx.DB
	logger *logger.Logger
}

// Querier interface defines the read operations the repositories use.
// Both *sqlx.DB and *sqlx.Tx implement these methods.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// NewDB creates a new DB instance
func NewDB(config *config.Configuration, logger *logger.Logger) (*DB, error) {
	dsn := config.Postgres.GetDSN()
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, err
	}

	return &DB{DB: db, logger: logger}, nil
}

// Close closes the database connection
func (db *DB) Close() {
	if err := db.DB.Close(); err != nil {
		db.logger.Errorw("failed to close database", "error", err)
	}
}

// GetQuerier returns the base DB as a Querier
func (db *DB) GetQuerier(ctx context.Context) Querier {
	return db.DB
}
