package docgen

import (
	"time"

	"github.com/hostora/hostora/internal/types"
	"github.com/shopspring/decimal"
)

// InvoiceData is the flat, null-safe view model for invoice PDF generation.
// Party fields are already placeholder-resolved; monetary fields are
// non-negative decimals satisfying Total = Subtotal + Tax and
// AmountRemaining = Total - AmountPaid (clamped at zero).
type InvoiceData struct {
	ID              int64               `json:"id"`
	InvoiceNumber   string              `json:"invoice_number"`
	Status          types.InvoiceStatus `json:"status"`
	PaymentMethod   types.PaymentMethod `json:"payment_method"`
	Currency        string              `json:"currency"`
	IssueDate       time.Time           `json:"issue_date"`
	DueDate         *time.Time          `json:"due_date,omitempty"`
	Subtotal        decimal.Decimal     `json:"subtotal"`
	Tax             decimal.Decimal     `json:"tax"`
	Total           decimal.Decimal     `json:"total"`
	AmountPaid      decimal.Decimal     `json:"amount_paid"`
	AmountRemaining decimal.Decimal     `json:"amount_remaining"`
	Notes           string              `json:"notes,omitempty"`

	Company  PartyInfo `json:"company"`
	Customer PartyInfo `json:"customer"`

	LineItems []LineItemData `json:"line_items"`
}

// ContractData is the view model for contract PDF generation
type ContractData struct {
	ID             int64                `json:"id"`
	ContractNumber string               `json:"contract_number"`
	Status         types.ContractStatus `json:"status"`
	Currency       string               `json:"currency"`
	StartDate      time.Time            `json:"start_date"`
	EndDate        *time.Time           `json:"end_date,omitempty"`
	Value          decimal.Decimal      `json:"value"`
	Notes          string               `json:"notes,omitempty"`

	Company  PartyInfo `json:"company"`
	Customer PartyInfo `json:"customer"`

	Domains []ServiceAttachment `json:"domains"`
	Hosting []ServiceAttachment `json:"hosting"`
	VPS     []ServiceAttachment `json:"vps"`
}

// OrderData is the view model for order PDF generation
type OrderData struct {
	ID          int64             `json:"id"`
	OrderNumber string            `json:"order_number"`
	Status      types.OrderStatus `json:"status"`
	Currency    string            `json:"currency"`
	OrderDate   time.Time         `json:"order_date"`
	Subtotal    decimal.Decimal   `json:"subtotal"`
	Tax         decimal.Decimal   `json:"tax"`
	Total       decimal.Decimal   `json:"total"`
	Notes       string            `json:"notes,omitempty"`

	Company  PartyInfo `json:"company"`
	Customer PartyInfo `json:"customer"`

	LineItems []LineItemData `json:"line_items"`
}

// PartyInfo carries the contact/billing attributes of either side of a
// document. Values are final display strings; absent source fields have
// already been substituted with the defined placeholder.
type PartyInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	TaxCode string `json:"tax_code"`

	// Bank details are only populated for the issuing company
	BankName    string `json:"bank_name,omitempty"`
	BankAccount string `json:"bank_account,omitempty"`
	BankHolder  string `json:"bank_holder,omitempty"`
}

// LineItemData is one billing row ready for rendering
type LineItemData struct {
	Description string           `json:"description"`
	Quantity    int64            `json:"quantity"`
	UnitPrice   decimal.Decimal  `json:"unit_price"`
	TaxRate     *decimal.Decimal `json:"tax_rate,omitempty"` // nil means tax exempt
	Amount      decimal.Decimal  `json:"amount"`
}

// SpecRow is one label/value row inside a service attachment card
type SpecRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ServiceAttachment is a domain/hosting/VPS record attached to a contract or
// order, rendered as a structured card rather than a billing row. Unresolved
// IDs degrade to a raw "#<id>" label with no spec rows.
type ServiceAttachment struct {
	Kind  types.ServiceKind `json:"kind"`
	Label string            `json:"label"`
	Specs []SpecRow         `json:"specs,omitempty"`
}
