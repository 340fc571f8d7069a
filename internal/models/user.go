package models

import "time"

// User is a row of the users table.
type User struct {
	UserID               string     `db:"user_id"`
	ClientID             *string    `db:"client_id"`
	Email                string     `db:"email"`
	PasswordHash         string     `db:"password_hash"`
	Role                 string     `db:"role"`
	PasswordResetHash    *string    `db:"password_reset_hash"`
	PasswordResetExpires *time.Time `db:"password_reset_expires"`
	AuditFields
}

// UserWithClient is a user joined with the license columns of its client.
// The client columns are NULL for admins.
type UserWithClient struct {
	User
	CompanyName      *string    `db:"company_name"`
	LicenseExpiresAt *time.Time `db:"license_expires_at"`
	LicenseStatus    *string    `db:"license_status"`
}
