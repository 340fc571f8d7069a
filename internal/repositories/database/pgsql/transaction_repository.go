package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/SscSPs/ark_management_app/internal/apperrors"
	"github.com/SscSPs/ark_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ark_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/ark_management_app/internal/models"
	"github.com/SscSPs/ark_management_app/internal/utils/mapping"
	"github.com/SscSPs/ark_management_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

var FULL_TRANSACTION_SELECT_QUERY = `
SELECT
	t.transaction_id, t.client_id, t.employee_id, e.name AS employee_name, t.type,
	t.transaction_date, t.description, t.category, t.quantity, t.unit_price, t.total_price,
	t.status, t.created_at, t.last_updated_at,
	a.attachment_id, a.file_name AS attachment_file_name, a.storage_key AS attachment_storage_key,
	a.mime_type AS attachment_mime_type, a.size_bytes AS attachment_size_bytes
FROM transactions t
JOIN employees e ON e.employee_id = t.employee_id AND e.client_id = t.client_id
LEFT JOIN attachments a ON a.transaction_id = t.transaction_id
`

const ledgerOrder = ` ORDER BY t.transaction_date DESC, t.created_at DESC, t.transaction_id DESC`

func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, tenantID string, filter domain.TransactionFilter) ([]domain.Transaction, *string, error) {
	q, err := buildLedgerFilter(tenantID, filter)
	if err != nil {
		return nil, nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	query := FULL_TRANSACTION_SELECT_QUERY + q.where() + ledgerOrder
	args := q.args
	if limit > 0 {
		// Fetch one extra row to know whether another page exists.
		args = append(args, limit+1)
		query += " LIMIT $" + strconv.Itoa(len(args))
	}

	rows, err := collect[models.Transaction](ctx, r.Pool, "failed to list transactions", query, args...)
	if err != nil {
		return nil, nil, err
	}

	var nextToken *string
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
		last := rows[limit-1]
		token := pagination.EncodeCursor(pagination.Cursor{
			Date:      last.TransactionDate,
			CreatedAt: last.CreatedAt,
			ID:        last.TransactionID,
		})
		nextToken = &token
	}
	return mapping.ToDomainTransactionSlice(rows), nextToken, nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, tenantID, transactionID string) (*domain.Transaction, error) {
	m, err := collectOne[models.Transaction](ctx, r.Pool, "transaction not found", "failed to find transaction",
		FULL_TRANSACTION_SELECT_QUERY+`WHERE t.transaction_id = $1 AND t.client_id = $2`, transactionID, tenantID)
	if err != nil {
		return nil, err
	}
	tx := mapping.ToDomainTransaction(*m)
	return &tx, nil
}

func (r *PgxTransactionRepository) FindTransactionOwner(ctx context.Context, transactionID string) (string, error) {
	var owner string
	err := r.Pool.QueryRow(ctx, `SELECT client_id FROM transactions WHERE transaction_id = $1`, transactionID).Scan(&owner)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.NewNotFoundError("transaction not found")
		}
		return "", apperrors.NewAppError(500, "failed to find transaction", err)
	}
	return owner, nil
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, tx domain.Transaction) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO transactions (
			transaction_id, client_id, employee_id, type, transaction_date, description, category,
			quantity, unit_price, total_price, status, created_at, last_updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		tx.TransactionID, tx.TenantID, tx.EmployeeID, string(tx.Kind), tx.TransactionDate,
		tx.Description, tx.Counterpart, tx.Quantity, tx.UnitPrice, tx.TotalPrice, string(tx.Status),
		tx.CreatedAt, tx.LastUpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, "transaction already exists", "employee does not belong to this client", "failed to save transaction")
	}
	return nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, tx domain.Transaction) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE transactions
		SET employee_id = $1, type = $2, transaction_date = $3, description = $4, category = $5,
			quantity = $6, unit_price = $7, total_price = $8, status = $9, last_updated_at = $10
		WHERE transaction_id = $11 AND client_id = $12`,
		tx.EmployeeID, string(tx.Kind), tx.TransactionDate, tx.Description, tx.Counterpart,
		tx.Quantity, tx.UnitPrice, tx.TotalPrice, string(tx.Status), tx.LastUpdatedAt,
		tx.TransactionID, tx.TenantID,
	)
	if err != nil {
		return translateWriteError(err, "transaction already exists", "employee does not belong to this client", "failed to update transaction")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("transaction not found")
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, tenantID, transactionID string) ([]string, error) {
	n, keys, err := r.deleteTransactions(ctx, tenantID, []string{transactionID})
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, apperrors.NewNotFoundError("transaction not found")
	}
	return keys, nil
}

func (r *PgxTransactionRepository) DeleteTransactions(ctx context.Context, tenantID string, transactionIDs []string) (int64, []string, error) {
	if len(transactionIDs) == 0 {
		return 0, nil, nil
	}
	return r.deleteTransactions(ctx, tenantID, transactionIDs)
}

// deleteTransactions collects the attachment keys and deletes the rows in one database transaction.
// Attachment rows go with their transaction through the foreign key cascade.
func (r *PgxTransactionRepository) deleteTransactions(ctx context.Context, tenantID string, ids []string) (int64, []string, error) {
	var (
		deleted int64
		keys    []string
	)
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `
			SELECT a.storage_key
			FROM attachments a
			JOIN transactions t ON t.transaction_id = a.transaction_id
			WHERE t.client_id = $1 AND t.transaction_id = ANY($2)`,
			tenantID, ids)
		if err != nil {
			return apperrors.NewAppError(500, "failed to list transaction files", err)
		}
		keys, err = pgx.CollectRows(rows, pgx.RowTo[string])
		if err != nil {
			return apperrors.NewAppError(500, "failed to list transaction files", err)
		}

		tag, err := tx.Exec(ctx,
			`DELETE FROM transactions WHERE client_id = $1 AND transaction_id = ANY($2)`,
			tenantID, ids)
		if err != nil {
			return apperrors.NewAppError(500, "failed to delete transactions", err)
		}
		deleted = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, nil, err
	}
	return deleted, keys, nil
}
