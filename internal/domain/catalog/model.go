package catalog

import "time"

// Domain is a registered domain name attached to a contract or order
type Domain struct {
	ID         int64      `json:"id" db:"id"`
	Name       string     `json:"name" db:"name"`
	Registrar  *string    `json:"registrar,omitempty" db:"registrar"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty" db:"expiry_date"`
}

// Hosting is a shared-hosting plan instance
type Hosting struct {
	ID          int64   `json:"id" db:"id"`
	PlanName    string  `json:"plan_name" db:"plan_name"`
	DomainName  *string `json:"domain_name,omitempty" db:"domain_name"`
	StorageGB   *int64  `json:"storage_gb,omitempty" db:"storage_gb"`
	BandwidthGB *int64  `json:"bandwidth_gb,omitempty" db:"bandwidth_gb"`
}

// VPS is a virtual private server instance
type VPS struct {
	ID        int64   `json:"id" db:"id"`
	Hostname  string  `json:"hostname" db:"hostname"`
	CPUCores  *int64  `json:"cpu_cores,omitempty" db:"cpu_cores"`
	RAMGB     *int64  `json:"ram_gb,omitempty" db:"ram_gb"`
	StorageGB *int64  `json:"storage_gb,omitempty" db:"storage_gb"`
	IPAddress *string `json:"ip_address,omitempty" db:"ip_address"`
	OS        *string `json:"os,omitempty" db:"os"`
}
