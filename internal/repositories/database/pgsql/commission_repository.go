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
	"github.com/shopspring/decimal"
)

type PgxCommissionRepository struct {
	BaseRepository
}

func newPgxCommissionRepository(pool *pgxpool.Pool) portsrepo.CommissionRepositoryFacade {
	return &PgxCommissionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CommissionRepositoryFacade = (*PgxCommissionRepository)(nil)

// Commission is derived from the vendor's current percentage and the attributed payments of the month.
var FULL_VENDOR_SALES_SELECT_QUERY = `
SELECT v.vendor_id, v.name AS vendor_name, v.percentage, SUM(p.amount) AS total_sales
FROM commission_attributions ca
JOIN payments p ON p.payment_id = ca.payment_id
JOIN vendors v ON v.vendor_id = ca.vendor_id
WHERE p.payment_date >= $1 AND p.payment_date < $2
`

const commissionRecordColumns = `vendor_id, month, status, paid_amount, paid_at, withdrawal_id`

const revertCommissionQuery = `
	UPDATE commission_records
	SET status = 'pending', paid_amount = NULL, paid_at = NULL, withdrawal_id = NULL, last_updated_at = NOW()
	`

func (r *PgxCommissionRepository) ListVendorSales(ctx context.Context, month domain.Month) ([]domain.VendorSales, error) {
	start, end := month.Bounds()
	rows, err := collect[models.VendorSales](ctx, r.Pool, "failed to aggregate partner sales",
		FULL_VENDOR_SALES_SELECT_QUERY+`GROUP BY v.vendor_id, v.name, v.percentage ORDER BY v.name`, start, end)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainVendorSalesSlice(rows), nil
}

func (r *PgxCommissionRepository) ListCommissionRecords(ctx context.Context, month domain.Month) ([]domain.CommissionRecord, error) {
	rows, err := collect[models.CommissionRecord](ctx, r.Pool, "failed to list commission records",
		`SELECT `+commissionRecordColumns+` FROM commission_records WHERE month = $1`, month.String())
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainCommissionRecordSlice(rows), nil
}

// PayCommission locks the vendor row so concurrent settlements of the same vendor serialize.
func (r *PgxCommissionRepository) PayCommission(ctx context.Context, vendorID string, month domain.Month, withdrawalID string, paidAt time.Time) (*domain.CommissionRecord, error) {
	var record *domain.CommissionRecord

	err := r.inTx(ctx, func(tx pgx.Tx) error {
		var percentage decimal.Decimal
		err := tx.QueryRow(ctx, `SELECT percentage FROM vendors WHERE vendor_id = $1 FOR UPDATE`, vendorID).Scan(&percentage)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewNotFoundError("partner not found")
			}
			return apperrors.NewAppError(500, "failed to lock partner", err)
		}

		var status string
		err = tx.QueryRow(ctx,
			`SELECT status FROM commission_records WHERE vendor_id = $1 AND month = $2`,
			vendorID, month.String()).Scan(&status)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewAppError(500, "failed to load commission record", err)
		}
		if status == string(domain.CommissionPaid) {
			return apperrors.NewValidationFailedError("commission already paid for this month")
		}

		start, end := month.Bounds()
		var total decimal.Decimal
		err = tx.QueryRow(ctx, `
			SELECT COALESCE(SUM(p.amount), 0)
			FROM commission_attributions ca
			JOIN payments p ON p.payment_id = ca.payment_id
			WHERE ca.vendor_id = $1 AND p.payment_date >= $2 AND p.payment_date < $3`,
			vendorID, start, end).Scan(&total)
		if err != nil {
			return apperrors.NewAppError(500, "failed to aggregate partner sales", err)
		}

		amount := domain.ComputeCommission(total, percentage)
		if !amount.IsPositive() {
			return apperrors.NewValidationFailedError("no commission to pay for this month")
		}

		paidDate := domain.DateOnly(paidAt)
		if _, err := tx.Exec(ctx, insertWithdrawalQuery, withdrawalID, vendorID, amount, paidDate, paidAt, paidAt); err != nil {
			return apperrors.NewAppError(500, "failed to save withdrawal", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO commission_records (vendor_id, month, status, paid_amount, paid_at, withdrawal_id, last_updated_at)
			VALUES ($1, $2, 'paid', $3, $4, $5, NOW())
			ON CONFLICT (vendor_id, month) DO UPDATE
			SET status = 'paid', paid_amount = EXCLUDED.paid_amount, paid_at = EXCLUDED.paid_at,
				withdrawal_id = EXCLUDED.withdrawal_id, last_updated_at = NOW()`,
			vendorID, month.String(), amount, paidDate, withdrawalID)
		if err != nil {
			return apperrors.NewAppError(500, "failed to mark commission paid", err)
		}

		wid := withdrawalID
		record = &domain.CommissionRecord{
			VendorID:     vendorID,
			Month:        month,
			Status:       domain.CommissionPaid,
			PaidAmount:   &amount,
			PaidAt:       &paidDate,
			WithdrawalID: &wid,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *PgxCommissionRepository) MarkCommissionPending(ctx context.Context, vendorID string, month domain.Month) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		var withdrawalID *string
		err := tx.QueryRow(ctx,
			`SELECT withdrawal_id FROM commission_records WHERE vendor_id = $1 AND month = $2 FOR UPDATE`,
			vendorID, month.String()).Scan(&withdrawalID)
		if errors.Is(err, pgx.ErrNoRows) {
			_, err = tx.Exec(ctx, `
				INSERT INTO commission_records (vendor_id, month, status, last_updated_at)
				VALUES ($1, $2, 'pending', NOW())`, vendorID, month.String())
			if err != nil {
				return translateWriteError(err, "commission record already exists", "partner not found", "failed to save commission record")
			}
			return nil
		}
		if err != nil {
			return apperrors.NewAppError(500, "failed to load commission record", err)
		}

		if _, err := tx.Exec(ctx, revertCommissionQuery+`WHERE vendor_id = $1 AND month = $2`, vendorID, month.String()); err != nil {
			return apperrors.NewAppError(500, "failed to revert commission", err)
		}
		if withdrawalID != nil {
			if _, err := tx.Exec(ctx, `DELETE FROM withdrawals WHERE withdrawal_id = $1`, *withdrawalID); err != nil {
				return apperrors.NewAppError(500, "failed to delete withdrawal", err)
			}
		}
		return nil
	})
}
