package order

import (
	"time"

	"github.com/hostora/hostora/internal/types"
	"github.com/shopspring/decimal"
)

// Order represents a service order placed through the storefront
type Order struct {
	ID          int64             `json:"id" db:"id"`
	OrderNumber string            `json:"order_number" db:"order_number"`
	CustomerID  int64             `json:"customer_id" db:"customer_id"`
	Status      types.OrderStatus `json:"status" db:"status"`
	Currency    string            `json:"currency" db:"currency"`
	OrderDate   time.Time         `json:"order_date" db:"order_date"`
	Subtotal    decimal.Decimal   `json:"subtotal" db:"subtotal"`
	Tax         decimal.Decimal   `json:"tax" db:"tax"`
	Total       decimal.Decimal   `json:"total" db:"total"`
	Notes       *string           `json:"notes,omitempty" db:"notes"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at" db:"updated_at"`
}

// LineItem is one row of ordered content
type LineItem struct {
	ID          int64            `json:"id" db:"id"`
	OrderID     int64            `json:"order_id" db:"order_id"`
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
