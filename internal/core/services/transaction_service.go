package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/ark_management_app/internal/apperrors"
	"github.com/SscSPs/ark_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ark_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ark_management_app/internal/core/ports/services"
	"github.com/SscSPs/ark_management_app/internal/metrics"
	"github.com/SscSPs/ark_management_app/internal/storage"
	"github.com/google/uuid"
)

type transactionService struct {
	BaseService
	txRepo        portsrepo.TransactionRepositoryFacade
	catalogRepo   portsrepo.CatalogReader
	store         storage.FileStore
	publicBaseURL string
}

func NewTransactionService(txRepo portsrepo.TransactionRepositoryFacade, catalogRepo portsrepo.CatalogReader, store storage.FileStore, publicBaseURL string) portssvc.TransactionSvcFacade {
	return &transactionService{
		BaseService:   newBaseService("transaction"),
		txRepo:        txRepo,
		catalogRepo:   catalogRepo,
		store:         store,
		publicBaseURL: publicBaseURL,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) ListTransactions(ctx context.Context, tenantID string, filter domain.TransactionFilter) ([]domain.Transaction, *string, error) {
	txs, next, err := s.txRepo.ListTransactions(ctx, tenantID, filter)
	if err != nil {
		if !isExpected(err) {
			s.LogError(ctx, err, "Failed to list transactions", slog.String("tenant_id", tenantID))
		}
		return nil, nil, err
	}
	if txs == nil {
		txs = []domain.Transaction{}
	}
	for i := range txs {
		s.decorate(&txs[i])
	}
	return txs, next, nil
}

func (s *transactionService) decorate(tx *domain.Transaction) {
	if tx.Attachment != nil && tx.Attachment.StorageKey != "" {
		tx.Attachment.URL = fileURL(s.publicBaseURL, tx.Attachment.StorageKey)
	}
}

// validate checks the fields and resolves the description and counterpart against the catalog.
func (s *transactionService) validate(ctx context.Context, tenantID string, fields domain.TransactionFields) (domain.TransactionFields, error) {
	fields = fields.Normalize()

	switch {
	case fields.EmployeeID == "":
		return fields, apperrors.NewValidationFailedError("employeeId is required")
	case !fields.Kind.IsValid():
		return fields, apperrors.NewValidationFailedError("type must be sale or expense")
	case !fields.Status.IsValid():
		return fields, apperrors.NewValidationFailedError("status must be paid or pending")
	case fields.Description == "":
		return fields, apperrors.NewValidationFailedError("description is required")
	case !fields.Quantity.IsPositive():
		return fields, apperrors.NewValidationFailedError("quantity must be greater than zero")
	case fields.UnitPrice.IsNegative():
		return fields, apperrors.NewValidationFailedError("unitPrice must not be negative")
	case fields.TransactionDate.IsZero():
		return fields, apperrors.NewValidationFailedError("transactionDate is required")
	}

	if err := s.requireCatalogItem(ctx, tenantID, fields.Kind.DescriptionType(), fields.Description); err != nil {
		return fields, err
	}
	if fields.Counterpart != "" {
		if err := s.requireCatalogItem(ctx, tenantID, fields.Kind.CounterpartType(), fields.Counterpart); err != nil {
			return fields, err
		}
	}
	return fields, nil
}

func (s *transactionService) requireCatalogItem(ctx context.Context, tenantID string, itemType domain.CatalogType, name string) error {
	ok, err := s.catalogRepo.ItemExists(ctx, tenantID, itemType, name)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve catalog reference", slog.String("type", string(itemType)))
		return err
	}
	if !ok {
		return apperrors.NewUnknownCatalogReferenceError(name, string(itemType))
	}
	return nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, tenantID string, fields domain.TransactionFields) (*domain.Transaction, error) {
	fields, err := s.validate(ctx, tenantID, fields)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	tx := buildTransaction(uuid.NewString(), tenantID, fields)
	tx.AuditFields = domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}

	if err := s.txRepo.SaveTransaction(ctx, tx); err != nil {
		if !isExpected(err) {
			s.LogError(ctx, err, "Failed to save transaction", slog.String("tenant_id", tenantID))
		}
		return nil, err
	}
	metrics.RecordLedgerWrite(metrics.LedgerCreate, 1)
	s.LogInfo(ctx, "Transaction created", slog.String("transaction_id", tx.TransactionID))
	return s.reload(ctx, tx), nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, tenantID, transactionID string, fields domain.TransactionFields) (*domain.Transaction, error) {
	fields, err := s.validate(ctx, tenantID, fields)
	if err != nil {
		return nil, err
	}

	tx := buildTransaction(transactionID, tenantID, fields)
	tx.LastUpdatedAt = time.Now()

	if err := s.txRepo.UpdateTransaction(ctx, tx); err != nil {
		if !isExpected(err) {
			s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	metrics.RecordLedgerWrite(metrics.LedgerUpdate, 1)
	return s.reload(ctx, tx), nil
}

// reload fetches the stored row with its joined fields, falling back to the written value.
func (s *transactionService) reload(ctx context.Context, written domain.Transaction) *domain.Transaction {
	stored, err := s.txRepo.FindTransactionByID(ctx, written.TenantID, written.TransactionID)
	if err != nil {
		s.LogWarn(ctx, "Failed to reload transaction after write", slog.String("transaction_id", written.TransactionID), slog.String("error", err.Error()))
		return &written
	}
	s.decorate(stored)
	return stored
}

func buildTransaction(id, tenantID string, fields domain.TransactionFields) domain.Transaction {
	return domain.Transaction{
		TransactionID:   id,
		TenantID:        tenantID,
		EmployeeID:      fields.EmployeeID,
		Kind:            fields.Kind,
		TransactionDate: domain.DateOnly(fields.TransactionDate),
		Description:     fields.Description,
		Counterpart:     fields.Counterpart,
		Quantity:        fields.Quantity,
		UnitPrice:       fields.UnitPrice,
		TotalPrice:      domain.ComputeTotal(fields.Quantity, fields.UnitPrice),
		Status:          fields.Status,
	}
}

func (s *transactionService) DeleteTransaction(ctx context.Context, tenantID, transactionID string) error {
	keys, err := s.txRepo.DeleteTransaction(ctx, tenantID, transactionID)
	if err != nil {
		if !isExpected(err) {
			s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		}
		return err
	}
	s.removeStoredFiles(ctx, s.store, keys...)
	metrics.RecordLedgerWrite(metrics.LedgerDelete, 1)
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

func (s *transactionService) BatchDeleteTransactions(ctx context.Context, tenantID string, transactionIDs []string) (int64, error) {
	if len(transactionIDs) == 0 {
		return 0, apperrors.NewValidationFailedError("ids must not be empty")
	}
	for _, id := range transactionIDs {
		if err := uuid.Validate(id); err != nil {
			return 0, apperrors.NewValidationFailedError("ids must be valid identifiers")
		}
	}

	deleted, keys, err := s.txRepo.DeleteTransactions(ctx, tenantID, transactionIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to batch delete transactions", slog.String("tenant_id", tenantID), slog.Int("requested", len(transactionIDs)))
		return 0, err
	}
	s.removeStoredFiles(ctx, s.store, keys...)
	metrics.RecordLedgerWrite(metrics.LedgerBatchDelete, int(deleted))
	s.LogInfo(ctx, "Transactions deleted", slog.Int64("deleted", deleted), slog.Int("requested", len(transactionIDs)))
	return deleted, nil
}
