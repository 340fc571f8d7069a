package mapping

import (
	"github.com/SscSPs/ark_management_app/internal/core/domain"
	"github.com/SscSPs/ark_management_app/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:               d.UserID,
		ClientID:             d.TenantID,
		Email:                d.Email,
		PasswordHash:         d.PasswordHash,
		Role:                 string(d.Role),
		PasswordResetHash:    d.PasswordResetHash,
		PasswordResetExpires: d.PasswordResetExpires,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:               m.UserID,
		TenantID:             m.ClientID,
		Email:                m.Email,
		PasswordHash:         m.PasswordHash,
		Role:                 domain.Role(m.Role),
		PasswordResetHash:    m.PasswordResetHash,
		PasswordResetExpires: m.PasswordResetExpires,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainUserWithTenant converts a model UserWithClient to a domain UserWithTenant
func ToDomainUserWithTenant(m models.UserWithClient) domain.UserWithTenant {
	out := domain.UserWithTenant{
		User:             ToDomainUser(m.User),
		CompanyName:      m.CompanyName,
		LicenseExpiresAt: m.LicenseExpiresAt,
	}
	if m.LicenseStatus != nil {
		status := domain.LicenseStatus(*m.LicenseStatus)
		out.LicenseStatus = &status
	}
	return out
}
