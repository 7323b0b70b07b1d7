package settings

import (
	"testing"

	"github.com/hostora/hostora/internal/config"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

var defaults = config.CompanyConfig{
	Name:     "Công ty TNHH Hostora",
	TaxCode:  "0312345678",
	Email:    "lienhe@hostora.vn",
	BankName: "Vietcombank",
}

func TestResolveNilProfileUsesAllDefaults(t *testing.T) {
	resolved := Resolve(nil, defaults)

	assert.Equal(t, ResolvedField{Value: "Công ty TNHH Hostora", Source: FieldSourceDefault}, resolved.Name)
	assert.Equal(t, ResolvedField{Value: "0312345678", Source: FieldSourceDefault}, resolved.TaxCode)
	assert.Equal(t, ResolvedField{Value: "Vietcombank", Source: FieldSourceDefault}, resolved.BankName)
}

func TestResolvePerFieldSubstitution(t *testing.T) {
	profile := &CompanyProfile{
		Name:  lo.ToPtr("Hostora Việt Nam"),
		Email: lo.ToPtr(""),
		Phone: lo.ToPtr("   "),
	}

	resolved := Resolve(profile, defaults)

	assert.Equal(t, ResolvedField{Value: "Hostora Việt Nam", Source: FieldSourceConfigured}, resolved.Name)

	// Blank configured fields fall back individually
	assert.Equal(t, FieldSourceDefault, resolved.Email.Source)
	assert.Equal(t, "lienhe@hostora.vn", resolved.Email.Value)
	assert.Equal(t, FieldSourceDefault, resolved.Phone.Source)
	assert.Equal(t, FieldSourceDefault, resolved.TaxCode.Source)
}

func TestResolveTrimsConfiguredValues(t *testing.T) {
	profile := &CompanyProfile{Phone: lo.ToPtr("  1900 6868  ")}

	resolved := Resolve(profile, defaults)

	assert.Equal(t, ResolvedField{Value: "1900 6868", Source: FieldSourceConfigured}, resolved.Phone)
}
