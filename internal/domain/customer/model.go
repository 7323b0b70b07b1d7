package customer

import "time"

// Customer represents the counterparty on a document. All contact fields are
// optional; the renderer substitutes the defined placeholder when absent.
type Customer struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	CompanyName *string   `json:"company_name,omitempty" db:"company_name"`
	Email       *string   `json:"email,omitempty" db:"email"`
	Phone       *string   `json:"phone,omitempty" db:"phone"`
	Address     *string   `json:"address,omitempty" db:"address"`
	TaxCode     *string   `json:"tax_code,omitempty" db:"tax_code"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// DisplayName prefers the company name over the personal name when present
func (c *Customer) DisplayName() string {
	if c.CompanyName != nil && *c.CompanyName != "" {
		return *c.CompanyName
	}
	return c.Name
}
