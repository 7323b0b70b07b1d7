package catalog

import "context"

// Repository defines batched read operations over the service catalog.
// Lookups are by collected ID lists; callers tolerate partial results and
// degrade unresolved IDs to raw identifier labels.
type Repository interface {
	// ListDomainsByIDs retrieves the domains matching the given IDs
	ListDomainsByIDs(ctx context.Context, ids []int64) ([]*Domain, error)

	// ListHostingByIDs retrieves the hosting plans matching the given IDs
	ListHostingByIDs(ctx context.Context, ids []int64) ([]*Hosting, error)

	// ListVPSByIDs retrieves the VPS instances matching the given IDs
	ListVPSByIDs(ctx context.Context, ids []int64) ([]*VPS, error)
}
