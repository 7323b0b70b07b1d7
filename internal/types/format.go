package types

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// PlaceholderMissing is rendered for absent Vietnamese party fields
	PlaceholderMissing = "Chưa cập nhật"
	// PlaceholderNA is rendered for absent dates and identifiers
	PlaceholderNA = "N/A"
	// LabelTaxExempt is rendered for tax-exempt line items
	LabelTaxExempt = "Miễn thuế"

	// DateLayout is the fixed localized short date format
	DateLayout = "02/01/2006"

	currencySuffix = " VNĐ"
)

// FormatVND renders an amount as a dot-grouped integer with the VND suffix.
// Amounts are rounded to whole đồng; VND has no minor unit in practice.
func FormatVND(amount decimal.Decimal) string {
	rounded := amount.Round(0)

	negative := rounded.IsNegative()
	digits := rounded.Abs().String()

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	b.WriteString(currencySuffix)
	return b.String()
}

// FormatDate renders a date in the fixed localized short format
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatDatePtr renders an optional date, falling back to the N/A placeholder
func FormatDatePtr(t *time.Time) string {
	if t == nil || t.IsZero() {
		return PlaceholderNA
	}
	return FormatDate(*t)
}

// OrDefault returns the trimmed value or the given placeholder when blank
func OrDefault(value string, placeholder string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return placeholder
}

// OrDefaultPtr returns the trimmed pointee or the given placeholder when nil/blank
func OrDefaultPtr(value *string, placeholder string) string {
	if value == nil {
		return placeholder
	}
	return OrDefault(*value, placeholder)
}
