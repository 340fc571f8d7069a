package repositories

import (
	"context"

	"github.com/SscSPs/ark_management_app/internal/core/domain"
)

// AttachmentRepositoryFacade defines persistence operations for attachments
type AttachmentRepositoryFacade interface {
	// FindAttachmentByID retrieves an attachment regardless of tenant; callers check ownership.
	FindAttachmentByID(ctx context.Context, attachmentID string) (*domain.Attachment, error)

	// ReplaceTransactionAttachment deletes the attachment row of the transaction, if any, and inserts
	// the new one in one database transaction. The replaced attachment is returned so its file can be removed.
	ReplaceTransactionAttachment(ctx context.Context, attachment domain.Attachment) (*domain.Attachment, error)

	// ReplaceLogo does the same for the single logo of a tenant.
	ReplaceLogo(ctx context.Context, attachment domain.Attachment) (*domain.Attachment, error)

	// DeleteAttachment removes an attachment of the tenant.
	DeleteAttachment(ctx context.Context, tenantID, attachmentID string) error
}
