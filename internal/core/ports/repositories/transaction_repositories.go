package repositories

import (
	"context"

	"github.com/SscSPs/ark_management_app/internal/core/domain"
)

// TransactionReader defines read operations for the ledger
type TransactionReader interface {
	// ListTransactions retrieves the tenant's ledger narrowed by filter, newest first.
	// When filter.Limit is positive the result is paginated and the returned token, if any,
	// points to the next page.
	ListTransactions(ctx context.Context, tenantID string, filter domain.TransactionFilter) ([]domain.Transaction, *string, error)

	// FindTransactionByID retrieves a transaction of the tenant.
	FindTransactionByID(ctx context.Context, tenantID, transactionID string) (*domain.Transaction, error)

	// FindTransactionOwner returns the tenant owning a transaction regardless of the caller.
	FindTransactionOwner(ctx context.Context, transactionID string) (string, error)
}

// TransactionWriter defines write operations for the ledger
type TransactionWriter interface {
	SaveTransaction(ctx context.Context, tx domain.Transaction) error

	// UpdateTransaction overwrites the editable fields of a transaction of the tenant.
	UpdateTransaction(ctx context.Context, tx domain.Transaction) error

	// DeleteTransaction removes a transaction of the tenant and returns the storage key of its attachment, if any.
	DeleteTransaction(ctx context.Context, tenantID, transactionID string) ([]string, error)

	// DeleteTransactions removes, in one database transaction, the listed transactions that belong to
	// the tenant. Ids of other tenants are ignored. It returns the number of deleted rows and the storage
	// keys of the removed attachments.
	DeleteTransactions(ctx context.Context, tenantID string, transactionIDs []string) (int64, []string, error)
}

// TransactionRepositoryFacade combines all ledger repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
