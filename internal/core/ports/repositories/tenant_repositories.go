package repositories

import (
	"context"

	"github.com/SscSPs/ark_management_app/internal/core/domain"
)

// TenantReader defines read operations for tenant (client) data
type TenantReader interface {
	// FindTenantByID retrieves a tenant by its ID.
	FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)

	// ListTenantSummaries lists every tenant ordered by company name, with its registered user
	// email and referring vendor name when present.
	ListTenantSummaries(ctx context.Context) ([]domain.TenantSummary, error)

	// FindTenantProfile retrieves a tenant along with the storage key of its logo.
	FindTenantProfile(ctx context.Context, tenantID string) (*domain.TenantProfile, error)
}

// TenantWriter defines write operations for tenant data
type TenantWriter interface {
	// CreateTenantWithToken inserts the tenant and its first registration token atomically.
	CreateTenantWithToken(ctx context.Context, tenant domain.Tenant, token domain.RegistrationToken) error

	// UpdateTenant overwrites the admin-managed fields: company name, license and referrer.
	UpdateTenant(ctx context.Context, tenant domain.Tenant) error

	// UpdateLicenseStatus stores a recomputed license status.
	UpdateLicenseStatus(ctx context.Context, tenantID string, status domain.LicenseStatus) error

	// UpdateTenantProfile overwrites the tenant-managed profile fields.
	UpdateTenantProfile(ctx context.Context, tenant domain.Tenant) error
}

// TenantLifecycleManager defines operations whose effects span several tables
type TenantLifecycleManager interface {
	// ReissueRegistrationToken invalidates the unused tokens of a tenant without a user and stores a new one.
	// Fails with ErrTenantAlreadyRegistered when the tenant already has a user.
	ReissueRegistrationToken(ctx context.Context, token domain.RegistrationToken) error

	// DeleteTenant removes the tenant and, by cascade, all of its rows.
	// It returns the storage keys of the attachments that were removed.
	DeleteTenant(ctx context.Context, tenantID string) ([]string, error)
}

// TenantRepositoryFacade combines all tenant-related repository interfaces
type TenantRepositoryFacade interface {
	TenantReader
	TenantWriter
	TenantLifecycleManager
}
