package services

import (
	"context"

	"github.com/SscSPs/ark_management_app/internal/dto"
)

// ProfileSvcFacade manages the company data a tenant maintains itself
type ProfileSvcFacade interface {
	GetProfile(ctx context.Context, tenantID string) (*dto.ProfileResponse, error)
	// UpdateProfile overwrites the profile fields and, when logo is non-nil, replaces the logo.
	UpdateProfile(ctx context.Context, tenantID string, req dto.UpdateProfileRequest, logo *FileUpload) (*dto.ProfileResponse, error)
}

// TenantAdminSvc defines the admin operations on tenants
type TenantAdminSvc interface {
	ListTenants(ctx context.Context) ([]dto.TenantListItem, error)
	// CreateTenant returns the plaintext registration token; only its hash is stored.
	CreateTenant(ctx context.Context, req dto.CreateTenantRequest) (*dto.CreateTenantResponse, error)
	UpdateTenant(ctx context.Context, tenantID string, update dto.TenantUpdate) error
	// DeleteTenant requires confirm and removes every row and file of the tenant.
	DeleteTenant(ctx context.Context, tenantID string, confirm bool) error
}

// RegistrationTokenSvc reissues registration tokens
type RegistrationTokenSvc interface {
	IssueRegistrationToken(ctx context.Context, tenantID string) (*dto.RegistrationTokenResponse, error)
}

// AdminSvcFacade combines all tenant administration interfaces
type AdminSvcFacade interface {
	TenantAdminSvc
	RegistrationTokenSvc
}
