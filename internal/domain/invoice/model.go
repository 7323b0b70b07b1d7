package invoice

import (
	"time"

	"github.com/hostora/hostora/internal/types"
	"github.com/shopspring/decimal"
)

// Invoice represents the invoice domain model
type Invoice struct {
	ID            int64               `json:"id" db:"id"`
	InvoiceNumber string              `json:"invoice_number" db:"invoice_number"`
	CustomerID    int64               `json:"customer_id" db:"customer_id"`
	Status        types.InvoiceStatus `json:"status" db:"status"`
	PaymentMethod types.PaymentMethod `json:"payment_method" db:"payment_method"`
	Currency      string              `json:"currency" db:"currency"`
	IssueDate     time.Time           `json:"issue_date" db:"issue_date"`
	DueDate       *time.Time          `json:"due_date,omitempty" db:"due_date"`
	Subtotal      decimal.Decimal     `json:"subtotal" db:"subtotal"`
	Tax           decimal.Decimal     `json:"tax" db:"tax"`
	Total         decimal.Decimal     `json:"total" db:"total"`
	AmountPaid    decimal.Decimal     `json:"amount_paid" db:"amount_paid"`
	Notes         *string             `json:"notes,omitempty" db:"notes"`
	CreatedAt     time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at" db:"updated_at"`
}

// AmountRemaining is the unpaid part of the invoice total, never negative
func (i *Invoice) AmountRemaining() decimal.Decimal {
	remaining := i.Total.Sub(i.AmountPaid)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// LineItem is one billable row on an invoice
type LineItem struct {
	ID          int64            `json:"id" db:"id"`
	InvoiceID   int64            `json:"invoice_id" db:"invoice_id"`
	Description string           `json:"description" db:"description"`
	ServiceName *string          `json:"service_name,omitempty" db:"service_name"`
	Quantity    int64            `json:"quantity" db:"quantity"`
	UnitPrice   decimal.Decimal  `json:"unit_price" db:"unit_price"`
	TaxRate     *decimal.Decimal `json:"tax_rate,omitempty" db:"tax_rate"` // nil means tax exempt
}

// Amount is quantity x unit price x (1 + tax rate); exempt items carry no tax
func (li *LineItem) Amount() decimal.Decimal {
	base := li.UnitPrice.Mul(decimal.NewFromInt(li.Quantity))
	if li.TaxRate == nil {
		return base
	}
	return base.Mul(decimal.NewFromInt(1).Add(*li.TaxRate))
}
