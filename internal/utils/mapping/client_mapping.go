package mapping

import (
	"github.com/SscSPs/ark_management_app/internal/core/domain"
	"github.com/SscSPs/ark_management_app/internal/models"
)

// ToModelClient converts a domain Tenant to a model Client
func ToModelClient(d domain.Tenant) models.Client {
	return models.Client{
		ClientID:         d.TenantID,
		CompanyName:      d.CompanyName,
		LicenseStatus:    string(d.LicenseStatus),
		LicenseExpiresAt: d.LicenseExpiresAt,
		ContactPhone:     d.ContactPhone,
		FullAddress:      d.FullAddress,
		ReferredByID:     d.ReferredByID,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTenant converts a model Client to a domain Tenant
func ToDomainTenant(m models.Client) domain.Tenant {
	return domain.Tenant{
		TenantID:         m.ClientID,
		CompanyName:      m.CompanyName,
		LicenseStatus:    domain.LicenseStatus(m.LicenseStatus),
		LicenseExpiresAt: m.LicenseExpiresAt,
		ContactPhone:     m.ContactPhone,
		FullAddress:      m.FullAddress,
		ReferredByID:     m.ReferredByID,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTenantSummary converts a model ClientSummary to a domain TenantSummary
func ToDomainTenantSummary(m models.ClientSummary) domain.TenantSummary {
	return domain.TenantSummary{
		Tenant:         ToDomainTenant(m.Client),
		UserEmail:      m.UserEmail,
		ReferredByName: m.ReferredByName,
	}
}

// ToDomainTenantSummarySlice converts a slice of model ClientSummary to domain TenantSummary
func ToDomainTenantSummarySlice(ms []models.ClientSummary) []domain.TenantSummary {
	return mapSlice(ms, ToDomainTenantSummary)
}

// ToDomainTenantProfile converts a model ClientProfile to a domain TenantProfile
func ToDomainTenantProfile(m models.ClientProfile) domain.TenantProfile {
	return domain.TenantProfile{
		Tenant:  ToDomainTenant(m.Client),
		LogoKey: m.LogoKey,
	}
}

// ToDomainRegistrationToken converts a model RegistrationToken to a domain RegistrationToken
func ToDomainRegistrationToken(m models.RegistrationToken) domain.RegistrationToken {
	return domain.RegistrationToken{
		TokenID:   m.TokenID,
		TenantID:  m.ClientID,
		TokenHash: m.TokenHash,
		ExpiresAt: m.ExpiresAt,
		IsUsed:    m.IsUsed,
		CreatedAt: m.CreatedAt,
	}
}
