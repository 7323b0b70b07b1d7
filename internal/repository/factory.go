package repository

import (
	"github.com/hostora/hostora/internal/domain/catalog"
	"github.com/hostora/hostora/internal/domain/contract"
	"github.com/hostora/hostora/internal/domain/customer"
	"github.com/hostora/hostora/internal/domain/invoice"
	"github.com/hostora/hostora/internal/domain/order"
	"github.com/hostora/hostora/internal/domain/settings"
	"github.com/hostora/hostora/internal/logger"
	"github.com/hostora/hostora/internal/postgres"
	postgresRepo "github.com/hostora/hostora/internal/repository/postgres"
)

func NewInvoiceRepository(db *postgres.DB, logger *logger.Logger) invoice.Repository {
	return postgresRepo.NewInvoiceRepository(db, logger)
}

func NewContractRepository(db *postgres.DB, logger *logger.Logger) contract.Repository {
	return postgresRepo.NewContractRepository(db, logger)
}

func NewOrderRepository(db *postgres.DB, logger *logger.Logger) order.Repository {
	return postgresRepo.NewOrderRepository(db, logger)
}

func NewCustomerRepository(db *postgres.DB, logger *logger.Logger) customer.Repository {
	return postgresRepo.NewCustomerRepository(db, logger)
}

func NewCatalogRepository(db *postgres.DB, logger *logger.Logger) catalog.Repository {
	return postgresRepo.NewCatalogRepository(db, logger)
}

func NewSettingsRepository(db *postgres.DB, logger *logger.Logger) settings.Repository {
	return postgresRepo.NewSettingsRepository(db, logger)
}
