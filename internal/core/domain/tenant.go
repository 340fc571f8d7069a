package domain

import (
	"math"
	"time"
)

// LicenseStatus is the derived state of a tenant license.
type LicenseStatus string

const (
	LicenseActive       LicenseStatus = "Active"
	LicenseExpiringSoon LicenseStatus = "ExpiringSoon"
	LicenseExpired      LicenseStatus = "Expired"
)

// IsValid reports whether s is one of the known license statuses.
func (s LicenseStatus) IsValid() bool {
	switch s {
	case LicenseActive, LicenseExpiringSoon, LicenseExpired:
		return true
	}
	return false
}

// DefaultLicenseWarningDays is the number of days before expiry at which a license
// starts being reported as expiring soon.
const DefaultLicenseWarningDays = 5

// Tenant is a company account and the unit of data isolation.
type Tenant struct {
	TenantID         string        `json:"id"`
	CompanyName      string        `json:"companyName"`
	LicenseStatus    LicenseStatus `json:"licenseStatus"`
	LicenseExpiresAt time.Time     `json:"licenseExpiresAt"`
	ContactPhone     string        `json:"contactPhone"`
	FullAddress      string        `json:"fullAddress"`
	ReferredByID     *string       `json:"referredBy,omitempty"`
	AuditFields
}

// TenantSummary is the admin listing view of a tenant.
type TenantSummary struct {
	Tenant
	UserEmail      *string `json:"email,omitempty"`
	ReferredByName *string `json:"referredByName,omitempty"`
}

// TenantProfile is the tenant-facing view of its own company data.
type TenantProfile struct {
	Tenant
	LogoKey *string `json:"-"`
}

// DaysUntil returns the number of whole days from today to expiry, both taken as calendar dates.
func DaysUntil(expiry, now time.Time) int {
	diff := DateOnly(expiry).Sub(DateOnly(now))
	return int(math.Ceil(diff.Hours() / 24))
}

// ComputeLicenseStatus derives the license status from the expiry date.
// More than warningDays left is active, 0..warningDays is expiring soon, negative is expired.
func ComputeLicenseStatus(expiry, now time.Time, warningDays int) LicenseStatus {
	days := DaysUntil(expiry, now)
	switch {
	case days < 0:
		return LicenseExpired
	case days <= warningDays:
		return LicenseExpiringSoon
	default:
		return LicenseActive
	}
}
