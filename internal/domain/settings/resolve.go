package settings

import (
	"strings"

	"github.com/hostora/hostora/internal/config"
)

// FieldSource tells whether a resolved profile field came from the settings
// row or from the configured default profile.
type FieldSource string

const (
	FieldSourceConfigured FieldSource = "configured"
	FieldSourceDefault    FieldSource = "default"
)

// ResolvedField is one company profile field after default substitution
type ResolvedField struct {
	Value  string
	Source FieldSource
}

// ResolvedProfile is the issuing-company profile after per-field default
// substitution. Substitution is per-field, never all-or-nothing: a settings
// row with only a name still inherits the remaining defaults.
type ResolvedProfile struct {
	Name        ResolvedField
	TaxCode     ResolvedField
	Email       ResolvedField
	Phone       ResolvedField
	Address     ResolvedField
	BankName    ResolvedField
	BankAccount ResolvedField
	BankHolder  ResolvedField
}

// Resolve merges a settings row (possibly nil) with the configured defaults
func Resolve(profile *CompanyProfile, defaults config.CompanyConfig) ResolvedProfile {
	if profile == nil {
		profile = &CompanyProfile{}
	}
	return ResolvedProfile{
		Name:        resolveField(profile.Name, defaults.Name),
		TaxCode:     resolveField(profile.TaxCode, defaults.TaxCode),
		Email:       resolveField(profile.Email, defaults.Email),
		Phone:       resolveField(profile.Phone, defaults.Phone),
		Address:     resolveField(profile.Address, defaults.Address),
		BankName:    resolveField(profile.BankName, defaults.BankName),
		BankAccount: resolveField(profile.BankAccount, defaults.BankAccount),
		BankHolder:  resolveField(profile.BankHolder, defaults.BankHolder),
	}
}

func resolveField(configured *string, fallback string) ResolvedField {
	if configured != nil {
		if trimmed := strings.TrimSpace(*configured); trimmed != "" {
			return ResolvedField{Value: trimmed, Source: FieldSourceConfigured}
		}
	}
	return ResolvedField{Value: fallback, Source: FieldSourceDefault}
}
