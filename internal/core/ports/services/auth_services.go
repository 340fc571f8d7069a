package services

import (
	"context"

	"github.com/SscSPs/ark_management_app/internal/core/domain"
	"github.com/SscSPs/ark_management_app/internal/dto"
)

// SessionSvc defines login and session inspection
type SessionSvc interface {
	// Login verifies the credentials and issues a session token. Unknown emails and wrong
	// passwords fail alike with ErrInvalidCredentials.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)

	// Me returns the current state of the caller, reloaded from storage.
	Me(ctx context.Context, principal domain.Principal) (*domain.Principal, error)
}

// CredentialSvc defines account creation and password recovery
type CredentialSvc interface {
	// Register redeems a registration token and creates the first user of its tenant.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// ForgotPassword mails a reset link when the email belongs to a user. It never reveals
	// whether the email exists.
	ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) error

	// ResetPassword sets a new password using a reset token.
	ResetPassword(ctx context.Context, token string, req dto.ResetPasswordRequest) error

	// EnsureAdmin creates the admin user when no user with the email exists.
	EnsureAdmin(ctx context.Context, email, password string) error
}

// AuthSvcFacade combines all auth-related service interfaces
type AuthSvcFacade interface {
	SessionSvc
	CredentialSvc
}
