package domain

import "time"

// Role is the authorization role of a user.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// User is a login identity. Employees belong to exactly one tenant, admins to none.
type User struct {
	UserID               string     `json:"id"`
	TenantID             *string    `json:"tenantId,omitempty"`
	Email                string     `json:"email"`
	PasswordHash         string     `json:"-"`
	Role                 Role       `json:"role"`
	PasswordResetHash    *string    `json:"-"`
	PasswordResetExpires *time.Time `json:"-"`
	AuditFields
}

// UserWithTenant is a user joined with the license fields of its tenant, as needed at login.
type UserWithTenant struct {
	User
	CompanyName      *string
	LicenseExpiresAt *time.Time
	LicenseStatus    *LicenseStatus
}

// Principal is the authenticated caller of an operation.
type Principal struct {
	UserID           string         `json:"id"`
	TenantID         string         `json:"clientId,omitempty"`
	Role             Role           `json:"role"`
	CompanyName      string         `json:"companyName,omitempty"`
	LicenseExpiresAt *time.Time     `json:"licenseExpiresAt,omitempty"`
	LicenseStatus    *LicenseStatus `json:"licenseStatus,omitempty"`
}

// IsAdmin reports whether the principal holds the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// HasTenant reports whether the principal is scoped to a tenant.
func (p Principal) HasTenant() bool {
	return p.TenantID != ""
}

// RegistrationToken is a single-use credential that lets a tenant's first user register.
// Only the hash of the secret is ever stored.
type RegistrationToken struct {
	TokenID   string    `json:"id"`
	TenantID  string    `json:"tenantId"`
	TokenHash string    `json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
	IsUsed    bool      `json:"isUsed"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsRedeemable reports whether the token can still be used at now.
func (t RegistrationToken) IsRedeemable(now time.Time) bool {
	return !t.IsUsed && now.Before(t.ExpiresAt)
}
