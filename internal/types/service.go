package types

import (
	ierr "github.com/hostora/hostora/internal/errors"
	"github.com/samber/lo"
)

// ServiceKind identifies the type of a service attachment on a contract or order
type ServiceKind string

const (
	ServiceKindDomain  ServiceKind = "domain"
	ServiceKindHosting ServiceKind = "hosting"
	ServiceKindVPS     ServiceKind = "vps"
)

func (k ServiceKind) String() string {
	return string(k)
}

func (k ServiceKind) Validate() error {
	allowed := []ServiceKind{
		ServiceKindDomain,
		ServiceKindHosting,
		ServiceKindVPS,
	}
	if !lo.Contains(allowed, k) {
		return ierr.NewError("invalid service kind").
			WithHint("Please provide a valid service kind").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// DisplayName returns the Vietnamese section title for the service kind
func (k ServiceKind) DisplayName() string {
	switch k {
	case ServiceKindDomain:
		return "Tên miền"
	case ServiceKindHosting:
		return "Hosting"
	case ServiceKindVPS:
		return "VPS"
	default:
		return string(k)
	}
}
