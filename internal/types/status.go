package types

import (
	ierr "github.com/hostora/hostora/internal/errors"
	"github.com/samber/lo"
)

// InvoiceStatus represents the current state of an invoice in its lifecycle
type InvoiceStatus string

const (
	// InvoiceStatusDraft indicates the invoice is still editable and has not been sent
	InvoiceStatusDraft InvoiceStatus = "DRAFT"
	// InvoiceStatusSent indicates the invoice has been delivered to the customer
	InvoiceStatusSent InvoiceStatus = "SENT"
	// InvoiceStatusPaid indicates the invoice has been settled in full
	InvoiceStatusPaid InvoiceStatus = "PAID"
	// InvoiceStatusPartial indicates a payment smaller than the total has been received
	InvoiceStatusPartial InvoiceStatus = "PARTIAL"
	// InvoiceStatusOverdue indicates the due date has passed without full payment
	InvoiceStatusOverdue InvoiceStatus = "OVERDUE"
	// InvoiceStatusCancelled indicates the invoice is void and not payable
	InvoiceStatusCancelled InvoiceStatus = "CANCELLED"
)

func (s InvoiceStatus) String() string {
	return string(s)
}

func (s InvoiceStatus) Validate() error {
	allowed := []InvoiceStatus{
		InvoiceStatusDraft,
		InvoiceStatusSent,
		InvoiceStatusPaid,
		InvoiceStatusPartial,
		InvoiceStatusOverdue,
		InvoiceStatusCancelled,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid invoice status").
			WithHint("Please provide a valid invoice status").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ContractStatus represents the current state of a service contract
type ContractStatus string

const (
	ContractStatusDraft     ContractStatus = "DRAFT"
	ContractStatusActive    ContractStatus = "ACTIVE"
	ContractStatusExpired   ContractStatus = "EXPIRED"
	ContractStatusCancelled ContractStatus = "CANCELLED"
)

func (s ContractStatus) String() string {
	return string(s)
}

func (s ContractStatus) Validate() error {
	allowed := []ContractStatus{
		ContractStatusDraft,
		ContractStatusActive,
		ContractStatusExpired,
		ContractStatusCancelled,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid contract status").
			WithHint("Please provide a valid contract status").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// OrderStatus represents the current state of a service order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusCompleted  OrderStatus = "COMPLETED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) Validate() error {
	allowed := []OrderStatus{
		OrderStatusPending,
		OrderStatusProcessing,
		OrderStatusCompleted,
		OrderStatusCancelled,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid order status").
			WithHint("Please provide a valid order status").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// BadgeTone is the semantic color family used for a status badge
type BadgeTone string

const (
	BadgeToneGreen  BadgeTone = "green"
	BadgeToneRed    BadgeTone = "red"
	BadgeToneGray   BadgeTone = "gray"
	BadgeToneBlue   BadgeTone = "blue"
	BadgeToneOrange BadgeTone = "orange"
)

// statusToneMap maps every renderable status string to its badge tone
var statusToneMap = map[string]BadgeTone{
	InvoiceStatusDraft.String():      BadgeToneGray,
	InvoiceStatusSent.String():       BadgeToneBlue,
	InvoiceStatusPaid.String():       BadgeToneGreen,
	InvoiceStatusPartial.String():    BadgeToneOrange,
	InvoiceStatusOverdue.String():    BadgeToneRed,
	InvoiceStatusCancelled.String():  BadgeToneRed,
	ContractStatusActive.String():    BadgeToneGreen,
	ContractStatusExpired.String():   BadgeToneRed,
	OrderStatusPending.String():      BadgeToneBlue,
	OrderStatusProcessing.String():   BadgeToneBlue,
	OrderStatusCompleted.String():    BadgeToneGreen,
}

// ToneForStatus returns the badge tone for a status string, gray when unknown
func ToneForStatus(status string) BadgeTone {
	if tone, ok := statusToneMap[status]; ok {
		return tone
	}
	return BadgeToneGray
}

// PaymentMethod identifies how an invoice is expected to be settled
type PaymentMethod string

const (
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCash         PaymentMethod = "cash"
)

func (m PaymentMethod) String() string {
	return string(m)
}
