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

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

var FULL_PAYMENT_SELECT_QUERY = `
SELECT
	p.payment_id, p.client_id, c.company_name, p.amount, p.payment_date, p.notes,
	p.created_at, p.last_updated_at
FROM payments p
JOIN clients c ON c.client_id = p.client_id
`

func (r *PgxPaymentRepository) ListPayments(ctx context.Context, startDate, endDate *time.Time) ([]domain.Payment, error) {
	q := &ledgerQuery{}
	if startDate != nil {
		q.add("p.payment_date >= ?", domain.DateOnly(*startDate))
	}
	if endDate != nil {
		q.add("p.payment_date <= ?", domain.DateOnly(*endDate))
	}

	rows, err := collect[models.Payment](ctx, r.Pool, "failed to list payments",
		FULL_PAYMENT_SELECT_QUERY+q.where()+` ORDER BY p.payment_date DESC, p.created_at DESC`, q.args...)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainPaymentSlice(rows), nil
}

func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	m, err := collectOne[models.Payment](ctx, r.Pool, "payment not found", "failed to find payment",
		FULL_PAYMENT_SELECT_QUERY+`WHERE p.payment_id = $1`, paymentID)
	if err != nil {
		return nil, err
	}
	payment := mapping.ToDomainPayment(*m)
	return &payment, nil
}

func (r *PgxPaymentRepository) FinancialTotals(ctx context.Context) (*domain.FinancialSummary, error) {
	var received, withdrawn decimal.Decimal
	err := r.Pool.QueryRow(ctx, `
		SELECT
			(SELECT COALESCE(SUM(amount), 0) FROM payments),
			(SELECT COALESCE(SUM(amount), 0) FROM withdrawals)`).Scan(&received, &withdrawn)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to compute financial totals", err)
	}
	return &domain.FinancialSummary{
		TotalReceived:  received,
		TotalWithdrawn: withdrawn,
		CashBalance:    received.Sub(withdrawn),
	}, nil
}

// RecordPayment snapshots the referrer's current percentage into the attribution so later
// percentage changes do not rewrite history.
func (r *PgxPaymentRepository) RecordPayment(ctx context.Context, payment domain.Payment) (*domain.CommissionAttribution, error) {
	var attribution *domain.CommissionAttribution

	err := r.inTx(ctx, func(tx pgx.Tx) error {
		var (
			vendorID   *string
			percentage decimal.NullDecimal
		)
		err := tx.QueryRow(ctx, `
			SELECT v.vendor_id, v.percentage
			FROM clients c
			LEFT JOIN vendors v ON v.vendor_id = c.referred_by_id
			WHERE c.client_id = $1`, payment.TenantID).Scan(&vendorID, &percentage)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewValidationFailedError("client does not exist")
			}
			return apperrors.NewAppError(500, "failed to look up client referrer", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO payments (payment_id, client_id, amount, payment_date, notes, created_at, last_updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			payment.PaymentID, payment.TenantID, payment.Amount, domain.DateOnly(payment.PaymentDate),
			payment.Notes, payment.CreatedAt, payment.LastUpdatedAt,
		)
		if err != nil {
			return translateWriteError(err, "payment already exists", "client does not exist", "failed to save payment")
		}

		if vendorID == nil || !percentage.Valid {
			return nil
		}
		attribution = &domain.CommissionAttribution{
			PaymentID:          payment.PaymentID,
			VendorID:           *vendorID,
			PercentageSnapshot: percentage.Decimal,
			CommissionSnapshot: domain.ComputeCommission(payment.Amount, percentage.Decimal),
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO commission_attributions (payment_id, vendor_id, percentage_snapshot, commission_snapshot)
			VALUES ($1, $2, $3, $4)`,
			attribution.PaymentID, attribution.VendorID, attribution.PercentageSnapshot, attribution.CommissionSnapshot,
		)
		if err != nil {
			return apperrors.NewAppError(500, "failed to save commission attribution", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return attribution, nil
}

func (r *PgxPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE payments SET amount = $1, payment_date = $2, notes = $3, last_updated_at = $4
			WHERE payment_id = $5`,
			payment.Amount, domain.DateOnly(payment.PaymentDate), payment.Notes, payment.LastUpdatedAt, payment.PaymentID,
		)
		if err != nil {
			return apperrors.NewAppError(500, "failed to update payment", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewNotFoundError("payment not found")
		}

		var percentage decimal.Decimal
		err = tx.QueryRow(ctx,
			`SELECT percentage_snapshot FROM commission_attributions WHERE payment_id = $1 FOR UPDATE`,
			payment.PaymentID).Scan(&percentage)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return apperrors.NewAppError(500, "failed to load commission attribution", err)
		}

		if _, err := tx.Exec(ctx,
			`UPDATE commission_attributions SET commission_snapshot = $1 WHERE payment_id = $2`,
			domain.ComputeCommission(payment.Amount, percentage), payment.PaymentID); err != nil {
			return apperrors.NewAppError(500, "failed to update commission attribution", err)
		}
		return nil
	})
}

func (r *PgxPaymentRepository) DeletePayment(ctx context.Context, paymentID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM payments WHERE payment_id = $1`, paymentID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete payment", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("payment not found")
	}
	return nil
}
