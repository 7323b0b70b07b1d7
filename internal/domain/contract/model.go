package contract

import (
	"time"

	"github.com/hostora/hostora/internal/types"
	"github.com/shopspring/decimal"
)

// Contract represents a hosting/domain service contract
type Contract struct {
	ID             int64                `json:"id" db:"id"`
	ContractNumber string               `json:"contract_number" db:"contract_number"`
	CustomerID     int64                `json:"customer_id" db:"customer_id"`
	Status         types.ContractStatus `json:"status" db:"status"`
	Currency       string               `json:"currency" db:"currency"`
	StartDate      time.Time            `json:"start_date" db:"start_date"`
	EndDate        *time.Time           `json:"end_date,omitempty" db:"end_date"`
	Value          decimal.Decimal      `json:"value" db:"value"`
	Notes          *string              `json:"notes,omitempty" db:"notes"`
	DomainIDs      []int64              `json:"domain_ids"`
	HostingIDs     []int64              `json:"hosting_ids"`
	VPSIDs         []int64              `json:"vps_ids"`
	CreatedAt      time.Time            `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at" db:"updated_at"`
}
