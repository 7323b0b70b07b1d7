package settings

import "time"

// CompanyProfile is the issuing-company settings row. Every field is
// optional; blank fields fall back per-field to the configured defaults.
type CompanyProfile struct {
	ID          int64     `json:"id" db:"id"`
	Name        *string   `json:"name,omitempty" db:"name"`
	TaxCode     *string   `json:"tax_code,omitempty" db:"tax_code"`
	Email       *string   `json:"email,omitempty" db:"email"`
	Phone       *string   `json:"phone,omitempty" db:"phone"`
	Address     *string   `json:"address,omitempty" db:"address"`
	BankName    *string   `json:"bank_name,omitempty" db:"bank_name"`
	BankAccount *string   `json:"bank_account,omitempty" db:"bank_account"`
	BankHolder  *string   `json:"bank_holder,omitempty" db:"bank_holder"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
