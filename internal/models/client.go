package models

import "time"

// Client is a row of the clients table.
type Client struct {
	ClientID         string    `db:"client_id"`
	CompanyName      string    `db:"company_name"`
	LicenseStatus    string    `db:"license_status"`
	LicenseExpiresAt time.Time `db:"license_expires_at"`
	ContactPhone     string    `db:"contact_phone"`
	FullAddress      string    `db:"full_address"`
	ReferredByID     *string   `db:"referred_by_id"`
	AuditFields
}

// ClientSummary is a client joined with its registered user and referring vendor.
type ClientSummary struct {
	Client
	UserEmail      *string `db:"user_email"`
	ReferredByName *string `db:"referred_by_name"`
}

// ClientProfile is a client joined with the storage key of its logo.
type ClientProfile struct {
	Client
	LogoKey *string `db:"logo_key"`
}

// RegistrationToken is a row of the registration_tokens table.
type RegistrationToken struct {
	TokenID   string    `db:"token_id"`
	ClientID  string    `db:"client_id"`
	TokenHash string    `db:"token_hash"`
	ExpiresAt time.Time `db:"expires_at"`
	IsUsed    bool      `db:"is_used"`
	CreatedAt time.Time `db:"created_at"`
}
