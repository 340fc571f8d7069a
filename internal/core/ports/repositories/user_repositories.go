package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ark_management_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByEmail retrieves a user by exact email, joined with the license fields of its tenant.
	FindUserByEmail(ctx context.Context, email string) (*domain.UserWithTenant, error)

	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByResetHash retrieves the user holding the given password reset token hash.
	FindUserByResetHash(ctx context.Context, resetHash string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// SetPasswordResetToken stores or, with nil values, clears the reset token of a user.
	SetPasswordResetToken(ctx context.Context, userID string, resetHash *string, expires *time.Time) error

	// UpdatePassword overwrites the password hash and clears the reset token.
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}

// UserRegistrar redeems registration tokens
type UserRegistrar interface {
	// RegisterWithToken redeems the token with the given hash and creates the tenant's user in one
	// database transaction. The user's tenant is taken from the token.
	RegisterWithToken(ctx context.Context, tokenHash string, user domain.User, now time.Time) (*domain.User, error)
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserRegistrar
}
