package services

import (
	"context"

	"github.com/SscSPs/ark_management_app/internal/core/domain"
	"github.com/SscSPs/ark_management_app/internal/storage"
)

// TransactionReaderSvc defines read operations for the ledger
type TransactionReaderSvc interface {
	// ListTransactions returns the filtered ledger and, when paginated, the token of the next page.
	ListTransactions(ctx context.Context, tenantID string, filter domain.TransactionFilter) ([]domain.Transaction, *string, error)
}

// TransactionWriterSvc defines write operations for the ledger
type TransactionWriterSvc interface {
	CreateTransaction(ctx context.Context, tenantID string, fields domain.TransactionFields) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, tenantID, transactionID string, fields domain.TransactionFields) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, tenantID, transactionID string) error
	// BatchDeleteTransactions deletes the listed transactions of the tenant and returns how many were deleted.
	BatchDeleteTransactions(ctx context.Context, tenantID string, transactionIDs []string) (int64, error)
}

// TransactionSvcFacade combines all ledger service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}

// AttachmentSvcFacade manages transaction receipts and authenticated file downloads
type AttachmentSvcFacade interface {
	// AttachToTransaction stores the upload and makes it the only attachment of the transaction.
	AttachToTransaction(ctx context.Context, principal domain.Principal, transactionID string, upload FileUpload) (*domain.Attachment, error)
	DeleteAttachment(ctx context.Context, principal domain.Principal, attachmentID string) error
	// OpenFile opens a stored file the principal may read. Callers close the body.
	OpenFile(ctx context.Context, principal domain.Principal, key string) (*storage.Object, error)
}
