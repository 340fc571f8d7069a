package pgsql

import (
	"context"

	"github.com/SscSPs/ark_management_app/internal/apperrors"
	"github.com/SscSPs/ark_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ark_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/ark_management_app/internal/models"
	"github.com/SscSPs/ark_management_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxWithdrawalRepository struct {
	BaseRepository
}

func newPgxWithdrawalRepository(pool *pgxpool.Pool) portsrepo.WithdrawalRepositoryFacade {
	return &PgxWithdrawalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.WithdrawalRepositoryFacade = (*PgxWithdrawalRepository)(nil)

var FULL_WITHDRAWAL_SELECT_QUERY = `
SELECT
	w.withdrawal_id, w.vendor_id, v.name AS vendor_name, w.amount, w.withdrawal_date,
	w.created_at, w.last_updated_at
FROM withdrawals w
JOIN vendors v ON v.vendor_id = w.vendor_id
`

const insertWithdrawalQuery = `
	INSERT INTO withdrawals (withdrawal_id, vendor_id, amount, withdrawal_date, created_at, last_updated_at)
	VALUES ($1, $2, $3, $4, $5, $6)`

func (r *PgxWithdrawalRepository) ListWithdrawals(ctx context.Context) ([]domain.Withdrawal, error) {
	rows, err := collect[models.Withdrawal](ctx, r.Pool, "failed to list withdrawals",
		FULL_WITHDRAWAL_SELECT_QUERY+`ORDER BY w.withdrawal_date DESC, w.created_at DESC`)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainWithdrawalSlice(rows), nil
}

func (r *PgxWithdrawalRepository) FindWithdrawalByID(ctx context.Context, withdrawalID string) (*domain.Withdrawal, error) {
	m, err := collectOne[models.Withdrawal](ctx, r.Pool, "withdrawal not found", "failed to find withdrawal",
		FULL_WITHDRAWAL_SELECT_QUERY+`WHERE w.withdrawal_id = $1`, withdrawalID)
	if err != nil {
		return nil, err
	}
	w := mapping.ToDomainWithdrawal(*m)
	return &w, nil
}

func (r *PgxWithdrawalRepository) SaveWithdrawal(ctx context.Context, w domain.Withdrawal) error {
	_, err := r.Pool.Exec(ctx, insertWithdrawalQuery,
		w.WithdrawalID, w.VendorID, w.Amount, domain.DateOnly(w.WithdrawalDate), w.CreatedAt, w.LastUpdatedAt)
	if err != nil {
		return translateWriteError(err, "withdrawal already exists", "partner does not exist", "failed to save withdrawal")
	}
	return nil
}

func (r *PgxWithdrawalRepository) UpdateWithdrawal(ctx context.Context, w domain.Withdrawal) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE withdrawals SET vendor_id = $1, amount = $2, withdrawal_date = $3, last_updated_at = $4
		WHERE withdrawal_id = $5`,
		w.VendorID, w.Amount, domain.DateOnly(w.WithdrawalDate), w.LastUpdatedAt, w.WithdrawalID,
	)
	if err != nil {
		return translateWriteError(err, "withdrawal already exists", "partner does not exist", "failed to update withdrawal")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("withdrawal not found")
	}
	return nil
}

func (r *PgxWithdrawalRepository) DeleteWithdrawal(ctx context.Context, withdrawalID string) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, revertCommissionQuery+`WHERE withdrawal_id = $1`, withdrawalID); err != nil {
			return apperrors.NewAppError(500, "failed to revert commission", err)
		}
		tag, err := tx.Exec(ctx, `DELETE FROM withdrawals WHERE withdrawal_id = $1`, withdrawalID)
		if err != nil {
			return apperrors.NewAppError(500, "failed to delete withdrawal", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewNotFoundError("withdrawal not found")
		}
		return nil
	})
}
