package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/ark_management_app/internal/apperrors"
	"github.com/SscSPs/ark_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ark_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/ark_management_app/internal/models"
	"github.com/SscSPs/ark_management_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTenantRepository struct {
	BaseRepository
}

// newPgxTenantRepository creates a new repository for tenant data.
func newPgxTenantRepository(pool *pgxpool.Pool) portsrepo.TenantRepositoryFacade {
	return &PgxTenantRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TenantRepositoryFacade = (*PgxTenantRepository)(nil)

const clientColumns = `
	c.client_id, c.company_name, c.license_status, c.license_expires_at,
	c.contact_phone, c.full_address, c.referred_by_id, c.created_at, c.last_updated_at`

var FULL_CLIENT_SELECT_QUERY = `SELECT` + clientColumns + ` FROM clients c `

var FULL_CLIENT_SUMMARY_SELECT_QUERY = `
SELECT` + clientColumns + `,
	(SELECT u.email FROM users u WHERE u.client_id = c.client_id LIMIT 1) AS user_email,
	v.name AS referred_by_name
FROM clients c
LEFT JOIN vendors v ON v.vendor_id = c.referred_by_id
`

var FULL_CLIENT_PROFILE_SELECT_QUERY = `
SELECT` + clientColumns + `,
	a.storage_key AS logo_key
FROM clients c
LEFT JOIN attachments a ON a.client_id = c.client_id AND a.kind = 'logo'
`

const insertRegistrationTokenQuery = `
	INSERT INTO registration_tokens (token_id, client_id, token_hash, expires_at, is_used, created_at)
	VALUES ($1, $2, $3, $4, FALSE, $5)`

func (r *PgxTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	m, err := collectOne[models.Client](ctx, r.Pool, "client not found", "failed to find client",
		FULL_CLIENT_SELECT_QUERY+`WHERE c.client_id = $1`, tenantID)
	if err != nil {
		return nil, err
	}
	tenant := mapping.ToDomainTenant(*m)
	return &tenant, nil
}

func (r *PgxTenantRepository) ListTenantSummaries(ctx context.Context) ([]domain.TenantSummary, error) {
	rows, err := collect[models.ClientSummary](ctx, r.Pool, "failed to list clients",
		FULL_CLIENT_SUMMARY_SELECT_QUERY+`ORDER BY c.company_name, c.client_id`)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainTenantSummarySlice(rows), nil
}

func (r *PgxTenantRepository) FindTenantProfile(ctx context.Context, tenantID string) (*domain.TenantProfile, error) {
	m, err := collectOne[models.ClientProfile](ctx, r.Pool, "client not found", "failed to load client profile",
		FULL_CLIENT_PROFILE_SELECT_QUERY+`WHERE c.client_id = $1`, tenantID)
	if err != nil {
		return nil, err
	}
	profile := mapping.ToDomainTenantProfile(*m)
	return &profile, nil
}

func (r *PgxTenantRepository) CreateTenantWithToken(ctx context.Context, tenant domain.Tenant, token domain.RegistrationToken) error {
	m := mapping.ToModelClient(tenant)
	return r.inTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO clients (
				client_id, company_name, license_status, license_expires_at,
				contact_phone, full_address, referred_by_id, created_at, last_updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			m.ClientID, m.CompanyName, m.LicenseStatus, m.LicenseExpiresAt,
			m.ContactPhone, m.FullAddress, m.ReferredByID, m.CreatedAt, m.LastUpdatedAt,
		)
		if err != nil {
			return translateWriteError(err, "client already exists", "referring partner does not exist", "failed to create client")
		}

		_, err = tx.Exec(ctx, insertRegistrationTokenQuery,
			token.TokenID, m.ClientID, token.TokenHash, token.ExpiresAt, token.CreatedAt)
		if err != nil {
			return apperrors.NewAppError(500, "failed to create registration token", err)
		}
		return nil
	})
}

func (r *PgxTenantRepository) UpdateTenant(ctx context.Context, tenant domain.Tenant) error {
	m := mapping.ToModelClient(tenant)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE clients
		SET company_name = $1, license_status = $2, license_expires_at = $3,
			referred_by_id = $4, last_updated_at = $5
		WHERE client_id = $6`,
		m.CompanyName, m.LicenseStatus, m.LicenseExpiresAt, m.ReferredByID, m.LastUpdatedAt, m.ClientID,
	)
	if err != nil {
		return translateWriteError(err, "client already exists", "referring partner does not exist", "failed to update client")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("client not found")
	}
	return nil
}

func (r *PgxTenantRepository) UpdateLicenseStatus(ctx context.Context, tenantID string, status domain.LicenseStatus) error {
	_, err := r.Pool.Exec(ctx,
		`UPDATE clients SET license_status = $1, last_updated_at = NOW() WHERE client_id = $2`,
		string(status), tenantID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update license status", err)
	}
	return nil
}

func (r *PgxTenantRepository) UpdateTenantProfile(ctx context.Context, tenant domain.Tenant) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE clients
		SET company_name = $1, contact_phone = $2, full_address = $3, last_updated_at = $4
		WHERE client_id = $5`,
		tenant.CompanyName, tenant.ContactPhone, tenant.FullAddress, tenant.LastUpdatedAt, tenant.TenantID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update profile", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("client not found")
	}
	return nil
}

func (r *PgxTenantRepository) ReissueRegistrationToken(ctx context.Context, token domain.RegistrationToken) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		var hasUser bool
		err := tx.QueryRow(ctx, `
			SELECT EXISTS (SELECT 1 FROM users WHERE client_id = c.client_id)
			FROM clients c WHERE c.client_id = $1 FOR UPDATE`, token.TenantID).Scan(&hasUser)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewNotFoundError("client not found")
			}
			return apperrors.NewAppError(500, "failed to lock client", err)
		}
		if hasUser {
			return apperrors.ErrTenantAlreadyRegistered
		}

		if _, err := tx.Exec(ctx,
			`UPDATE registration_tokens SET is_used = TRUE WHERE client_id = $1 AND is_used = FALSE`,
			token.TenantID); err != nil {
			return apperrors.NewAppError(500, "failed to invalidate registration tokens", err)
		}

		if _, err := tx.Exec(ctx, insertRegistrationTokenQuery,
			token.TokenID, token.TenantID, token.TokenHash, token.ExpiresAt, token.CreatedAt); err != nil {
			return apperrors.NewAppError(500, "failed to create registration token", err)
		}
		return nil
	})
}

func (r *PgxTenantRepository) DeleteTenant(ctx context.Context, tenantID string) ([]string, error) {
	var keys []string
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `SELECT storage_key FROM attachments WHERE client_id = $1`, tenantID)
		if err != nil {
			return apperrors.NewAppError(500, "failed to list client files", err)
		}
		keys, err = pgx.CollectRows(rows, pgx.RowTo[string])
		if err != nil {
			return apperrors.NewAppError(500, "failed to list client files", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM clients WHERE client_id = $1`, tenantID)
		if err != nil {
			return apperrors.NewAppError(500, "failed to delete client", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewNotFoundError("client not found")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}
