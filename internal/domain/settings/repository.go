package settings

import "context"

// Repository defines read access to the business settings
type Repository interface {
	// GetCompanyProfile retrieves the company settings row.
	// Returns (nil, nil) when no settings row exists yet; callers fall back
	// to configured defaults.
	GetCompanyProfile(ctx context.Context) (*CompanyProfile, error)
}
