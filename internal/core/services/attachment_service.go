package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/ark_management_app/internal/apperrors"
	"github.com/SscSPs/ark_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ark_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ark_management_app/internal/core/ports/services"
	"github.com/SscSPs/ark_management_app/internal/storage"
	"github.com/google/uuid"
)

// FileConfig holds the upload limits and the public base of download links.
type FileConfig struct {
	MaxUploadBytes int64
	PublicBaseURL  string
}

type attachmentService struct {
	BaseService
	txRepo         portsrepo.TransactionReader
	attachmentRepo portsrepo.AttachmentRepositoryFacade
	store          storage.FileStore
	cfg            FileConfig
}

func NewAttachmentService(txRepo portsrepo.TransactionReader, attachmentRepo portsrepo.AttachmentRepositoryFacade, store storage.FileStore, cfg FileConfig) portssvc.AttachmentSvcFacade {
	return &attachmentService{
		BaseService:    newBaseService("attachment"),
		txRepo:         txRepo,
		attachmentRepo: attachmentRepo,
		store:          store,
		cfg:            cfg,
	}
}

var _ portssvc.AttachmentSvcFacade = (*attachmentService)(nil)

// AttachToTransaction checks ownership before anything is stored. Once the file is stored,
// any failure removes it again, and the replaced file is removed only after the swap committed.
func (s *attachmentService) AttachToTransaction(ctx context.Context, principal domain.Principal, transactionID string, upload portssvc.FileUpload) (*domain.Attachment, error) {
	if !principal.HasTenant() {
		return nil, apperrors.NewForbiddenError("only client users can attach files")
	}

	owner, err := s.txRepo.FindTransactionOwner(ctx, transactionID)
	if err != nil {
		if !isExpected(err) {
			s.LogError(ctx, err, "Failed to look up transaction owner", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	if owner != principal.TenantID {
		s.LogWarn(ctx, "Attachment to another client's transaction rejected", slog.String("transaction_id", transactionID))
		return nil, apperrors.NewForbiddenError("transaction belongs to another client")
	}

	prepared, err := prepareUpload(upload, uploadPolicy{maxBytes: s.cfg.MaxUploadBytes, allowPDF: true, fieldName: "file"})
	if err != nil {
		return nil, err
	}

	attachmentID := uuid.NewString()
	key := storage.TransactionKey(principal.TenantID, transactionID, attachmentID, prepared.fileName)
	if err := s.store.Save(ctx, key, prepared.content, prepared.contentType); err != nil {
		s.LogError(ctx, err, "Failed to store attachment", slog.String("transaction_id", transactionID))
		return nil, storageError(err)
	}

	now := time.Now()
	txID := transactionID
	attachment := domain.Attachment{
		AttachmentID:  attachmentID,
		TenantID:      principal.TenantID,
		TransactionID: &txID,
		Kind:          domain.AttachmentTransaction,
		FileName:      displayFileName(prepared.fileName),
		StorageKey:    key,
		MimeType:      prepared.contentType,
		SizeBytes:     upload.Size,
		AuditFields:   domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	previous, err := s.attachmentRepo.ReplaceTransactionAttachment(ctx, attachment)
	if err != nil {
		s.removeStoredFiles(ctx, s.store, key)
		if !isExpected(err) {
			s.LogError(ctx, err, "Failed to save attachment", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	if previous != nil {
		s.removeStoredFiles(ctx, s.store, previous.StorageKey)
	}

	attachment.URL = fileURL(s.cfg.PublicBaseURL, key)
	s.LogInfo(ctx, "Attachment stored", slog.String("attachment_id", attachmentID), slog.String("transaction_id", transactionID))
	return &attachment, nil
}

func (s *attachmentService) DeleteAttachment(ctx context.Context, principal domain.Principal, attachmentID string) error {
	attachment, err := s.attachmentRepo.FindAttachmentByID(ctx, attachmentID)
	if err != nil {
		if !isExpected(err) {
			s.LogError(ctx, err, "Failed to find attachment", slog.String("attachment_id", attachmentID))
		}
		return err
	}
	if attachment.TenantID != principal.TenantID {
		return apperrors.NewForbiddenError("attachment belongs to another client")
	}

	if err := s.attachmentRepo.DeleteAttachment(ctx, principal.TenantID, attachmentID); err != nil {
		if !isExpected(err) {
			s.LogError(ctx, err, "Failed to delete attachment", slog.String("attachment_id", attachmentID))
		}
		return err
	}
	s.removeStoredFiles(ctx, s.store, attachment.StorageKey)
	s.LogInfo(ctx, "Attachment deleted", slog.String("attachment_id", attachmentID))
	return nil
}

// OpenFile lets admins read any file and client users only the files of their own tenant.
func (s *attachmentService) OpenFile(ctx context.Context, principal domain.Principal, key string) (*storage.Object, error) {
	cleaned, err := storage.CleanKey(key)
	if err != nil {
		return nil, apperrors.NewValidationFailedError("invalid file path")
	}
	if !principal.IsAdmin() {
		if !principal.HasTenant() || !strings.HasPrefix(cleaned, storage.TenantPrefix(principal.TenantID)) {
			return nil, apperrors.NewForbiddenError("file belongs to another client")
		}
	}

	obj, err := s.store.Open(ctx, cleaned)
	if err != nil {
		if errors.Is(err, storage.ErrNotExist) {
			return nil, apperrors.NewNotFoundError("file not found")
		}
		s.LogError(ctx, err, "Failed to open stored file", slog.String("key", cleaned))
		return nil, storageError(err)
	}
	return obj, nil
}

func displayFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "file"
	}
	if len(name) > 255 {
		return name[len(name)-255:]
	}
	return name
}
