package pgsql

import (
	"context"

	"github.com/SscSPs/ark_management_app/internal/apperrors"
	"github.com/SscSPs/ark_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ark_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/ark_management_app/internal/models"
	"github.com/SscSPs/ark_management_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxVendorRepository struct {
	BaseRepository
}

func newPgxVendorRepository(pool *pgxpool.Pool) portsrepo.VendorRepositoryFacade {
	return &PgxVendorRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.VendorRepositoryFacade = (*PgxVendorRepository)(nil)

var FULL_VENDOR_SELECT_QUERY = `
SELECT vendor_id, name, percentage, pix_key, phone, address, created_at, last_updated_at
FROM vendors
`

func (r *PgxVendorRepository) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	rows, err := collect[models.Vendor](ctx, r.Pool, "failed to list partners", FULL_VENDOR_SELECT_QUERY+`ORDER BY name`)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainVendorSlice(rows), nil
}

func (r *PgxVendorRepository) FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	m, err := collectOne[models.Vendor](ctx, r.Pool, "partner not found", "failed to find partner",
		FULL_VENDOR_SELECT_QUERY+`WHERE vendor_id = $1`, vendorID)
	if err != nil {
		return nil, err
	}
	vendor := mapping.ToDomainVendor(*m)
	return &vendor, nil
}

func (r *PgxVendorRepository) SaveVendor(ctx context.Context, vendor domain.Vendor) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO vendors (vendor_id, name, percentage, pix_key, phone, address, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		vendor.VendorID, vendor.Name, vendor.Percentage, vendor.PixKey, vendor.Phone, vendor.Address,
		vendor.CreatedAt, vendor.LastUpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, "partner already exists", "partner reference is invalid", "failed to save partner")
	}
	return nil
}

func (r *PgxVendorRepository) UpdateVendor(ctx context.Context, vendor domain.Vendor) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE vendors
		SET name = $1, percentage = $2, pix_key = $3, phone = $4, address = $5, last_updated_at = $6
		WHERE vendor_id = $7`,
		vendor.Name, vendor.Percentage, vendor.PixKey, vendor.Phone, vendor.Address, vendor.LastUpdatedAt,
		vendor.VendorID,
	)
	if err != nil {
		return translateWriteError(err, "partner already exists", "partner reference is invalid", "failed to update partner")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("partner not found")
	}
	return nil
}

func (r *PgxVendorRepository) DeleteVendor(ctx context.Context, vendorID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM vendors WHERE vendor_id = $1`, vendorID)
	if err != nil {
		if code, _ := pgErrorCode(err); code == pgForeignKeyViolation {
			return apperrors.NewValidationFailedError("partner has commission history and cannot be deleted")
		}
		return apperrors.NewAppError(500, "failed to delete partner", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("partner not found")
	}
	return nil
}
