package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/ark_management_app/internal/apperrors"
	"github.com/SscSPs/ark_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ark_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/ark_management_app/internal/models"
	"github.com/SscSPs/ark_management_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = `
	u.user_id, u.client_id, u.email, u.password_hash, u.role,
	u.password_reset_hash, u.password_reset_expires, u.created_at, u.last_updated_at`

var FULL_USER_SELECT_QUERY = `SELECT` + userColumns + ` FROM users u `

var FULL_USER_WITH_CLIENT_SELECT_QUERY = `
SELECT` + userColumns + `,
	c.company_name, c.license_expires_at, c.license_status
FROM users u
LEFT JOIN clients c ON c.client_id = u.client_id
`

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.UserWithTenant, error) {
	m, err := collectOne[models.UserWithClient](ctx, r.Pool, "user not found", "failed to find user",
		FULL_USER_WITH_CLIENT_SELECT_QUERY+`WHERE u.email = $1`, email)
	if err != nil {
		return nil, err
	}
	user := mapping.ToDomainUserWithTenant(*m)
	return &user, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	m, err := collectOne[models.User](ctx, r.Pool, "user not found", "failed to find user",
		FULL_USER_SELECT_QUERY+`WHERE u.user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	user := mapping.ToDomainUser(*m)
	return &user, nil
}

func (r *PgxUserRepository) FindUserByResetHash(ctx context.Context, resetHash string) (*domain.User, error) {
	m, err := collectOne[models.User](ctx, r.Pool, "reset token not found", "failed to find user",
		FULL_USER_SELECT_QUERY+`WHERE u.password_reset_hash = $1`, resetHash)
	if err != nil {
		return nil, err
	}
	user := mapping.ToDomainUser(*m)
	return &user, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	return insertUser(ctx, r.Pool, mapping.ToModelUser(user))
}

func insertUser(ctx context.Context, q querier, m models.User) error {
	_, err := q.Exec(ctx, `
		INSERT INTO users (user_id, client_id, email, password_hash, role, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.UserID, m.ClientID, m.Email, m.PasswordHash, m.Role, m.CreatedAt, m.LastUpdatedAt,
	)
	if err == nil {
		return nil
	}
	if code, constraint := pgErrorCode(err); code == pgUniqueViolation && constraint == "users_client_id_key" {
		return apperrors.ErrTenantAlreadyRegistered
	}
	return translateWriteError(err, "email already registered", "client does not exist", "failed to save user")
}

func (r *PgxUserRepository) SetPasswordResetToken(ctx context.Context, userID string, resetHash *string, expires *time.Time) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE users
		SET password_reset_hash = $1, password_reset_expires = $2, last_updated_at = NOW()
		WHERE user_id = $3`,
		resetHash, expires, userID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to store password reset token", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user not found")
	}
	return nil
}

func (r *PgxUserRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE users
		SET password_hash = $1, password_reset_hash = NULL, password_reset_expires = NULL, last_updated_at = NOW()
		WHERE user_id = $2`,
		passwordHash, userID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update password", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user not found")
	}
	return nil
}

// RegisterWithToken locks the token row so two concurrent redemptions of the same token serialize;
// the loser sees it used.
func (r *PgxUserRepository) RegisterWithToken(ctx context.Context, tokenHash string, user domain.User, now time.Time) (*domain.User, error) {
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		token, err := collectOne[models.RegistrationToken](ctx, tx, "registration token not found", "failed to load registration token", `
			SELECT token_id, client_id, token_hash, expires_at, is_used, created_at
			FROM registration_tokens
			WHERE token_hash = $1
			FOR UPDATE`, tokenHash)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.ErrInvalidToken
			}
			return err
		}
		if !mapping.ToDomainRegistrationToken(*token).IsRedeemable(now) {
			return apperrors.ErrInvalidToken
		}

		var hasUser bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE client_id = $1)`, token.ClientID).Scan(&hasUser); err != nil {
			return apperrors.NewAppError(500, "failed to check client user", err)
		}
		if hasUser {
			return apperrors.ErrTenantAlreadyRegistered
		}

		tenantID := token.ClientID
		user.TenantID = &tenantID
		if err := insertUser(ctx, tx, mapping.ToModelUser(user)); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `UPDATE registration_tokens SET is_used = TRUE WHERE token_id = $1`, token.TokenID); err != nil {
			return apperrors.NewAppError(500, "failed to mark registration token used", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}
