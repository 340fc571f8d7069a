package dto

import (
	"time"

	"github.com/SscSPs/ark_management_app/internal/core/domain"
)

// CreateTenantRequest is the body of POST /admin/clients.
type CreateTenantRequest struct {
	CompanyName      string  `json:"companyName" binding:"required,max=200"`
	LicenseExpiresAt string  `json:"licenseExpiresAt" binding:"required"`
	ReferredBy       *string `json:"referredBy" binding:"omitempty,uuid"`
}

// UpdateTenantRequest is the body of PUT /admin/clients/:id. An empty referredBy clears the referrer.
type UpdateTenantRequest struct {
	CompanyName      string  `json:"companyName" binding:"required,max=200"`
	LicenseStatus    string  `json:"licenseStatus" binding:"required,licensestatus"`
	LicenseExpiresAt string  `json:"licenseExpiresAt" binding:"required"`
	ReferredBy       *string `json:"referredBy" binding:"omitempty,uuid"`
}

// TenantUpdate is a validated UpdateTenantRequest.
type TenantUpdate struct {
	CompanyName      string
	LicenseStatus    domain.LicenseStatus
	LicenseExpiresAt time.Time
	ReferredBy       *string
}

// ToUpdate parses the request.
func (r UpdateTenantRequest) ToUpdate() (TenantUpdate, error) {
	expires, err := ParseDate("licenseExpiresAt", r.LicenseExpiresAt)
	if err != nil {
		return TenantUpdate{}, err
	}
	return TenantUpdate{
		CompanyName:      r.CompanyName,
		LicenseStatus:    domain.LicenseStatus(r.LicenseStatus),
		LicenseExpiresAt: expires,
		ReferredBy:       r.ReferredBy,
	}, nil
}

// CreateTenantResponse carries the plaintext registration token. It is never shown again.
type CreateTenantResponse struct {
	Client            domain.Tenant `json:"client"`
	RegistrationToken string        `json:"registrationToken"`
	TokenExpiresAt    time.Time     `json:"tokenExpiresAt"`
}

// RegistrationTokenResponse carries a reissued plaintext registration token.
type RegistrationTokenResponse struct {
	RegistrationToken string    `json:"registrationToken"`
	ExpiresAt         time.Time `json:"expiresAt"`
}

// TenantListItem is a row of the admin client listing.
type TenantListItem struct {
	domain.TenantSummary
	HasUser bool `json:"hasUser"`
}

// ToTenantList converts summaries into listing rows.
func ToTenantList(summaries []domain.TenantSummary) []TenantListItem {
	out := make([]TenantListItem, len(summaries))
	for i, s := range summaries {
		out[i] = TenantListItem{TenantSummary: s, HasUser: s.UserEmail != nil}
	}
	return out
}
