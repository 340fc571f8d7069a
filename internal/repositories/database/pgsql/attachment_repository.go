package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/ark_management_app/internal/apperrors"
	"github.com/SscSPs/ark_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ark_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/ark_management_app/internal/models"
	"github.com/SscSPs/ark_management_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAttachmentRepository struct {
	BaseRepository
}

func newPgxAttachmentRepository(pool *pgxpool.Pool) portsrepo.AttachmentRepositoryFacade {
	return &PgxAttachmentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AttachmentRepositoryFacade = (*PgxAttachmentRepository)(nil)

const attachmentColumns = `
	attachment_id, client_id, transaction_id, kind, file_name, storage_key,
	mime_type, size_bytes, created_at, last_updated_at`

var FULL_ATTACHMENT_SELECT_QUERY = `SELECT` + attachmentColumns + ` FROM attachments `

func (r *PgxAttachmentRepository) FindAttachmentByID(ctx context.Context, attachmentID string) (*domain.Attachment, error) {
	m, err := collectOne[models.Attachment](ctx, r.Pool, "attachment not found", "failed to find attachment",
		FULL_ATTACHMENT_SELECT_QUERY+`WHERE attachment_id = $1`, attachmentID)
	if err != nil {
		return nil, err
	}
	att := mapping.ToDomainAttachment(*m)
	return &att, nil
}

func (r *PgxAttachmentRepository) ReplaceTransactionAttachment(ctx context.Context, attachment domain.Attachment) (*domain.Attachment, error) {
	if attachment.TransactionID == nil {
		return nil, apperrors.NewValidationFailedError("attachment has no transaction")
	}
	return r.replace(ctx, attachment,
		FULL_ATTACHMENT_SELECT_QUERY+`WHERE transaction_id = $1 AND client_id = $2 FOR UPDATE`,
		*attachment.TransactionID, attachment.TenantID)
}

func (r *PgxAttachmentRepository) ReplaceLogo(ctx context.Context, attachment domain.Attachment) (*domain.Attachment, error) {
	return r.replace(ctx, attachment,
		FULL_ATTACHMENT_SELECT_QUERY+`WHERE client_id = $1 AND kind = 'logo' FOR UPDATE`,
		attachment.TenantID)
}

// replace removes the row matched by previousQuery, if any, and inserts attachment.
func (r *PgxAttachmentRepository) replace(ctx context.Context, attachment domain.Attachment, previousQuery string, args ...any) (*domain.Attachment, error) {
	var previous *domain.Attachment
	m := mapping.ToModelAttachment(attachment)

	err := r.inTx(ctx, func(tx pgx.Tx) error {
		old, err := collectOne[models.Attachment](ctx, tx, "attachment not found", "failed to load attachment", previousQuery, args...)
		switch {
		case err == nil:
			if _, err := tx.Exec(ctx, `DELETE FROM attachments WHERE attachment_id = $1`, old.AttachmentID); err != nil {
				return apperrors.NewAppError(500, "failed to remove previous attachment", err)
			}
			prev := mapping.ToDomainAttachment(*old)
			previous = &prev
		case errors.Is(err, apperrors.ErrNotFound):
		default:
			return err
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO attachments (
				attachment_id, client_id, transaction_id, kind, file_name, storage_key,
				mime_type, size_bytes, created_at, last_updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			m.AttachmentID, m.ClientID, m.TransactionID, m.Kind, m.FileName, m.StorageKey,
			m.MimeType, m.SizeBytes, m.CreatedAt, m.LastUpdatedAt,
		)
		if err != nil {
			return translateWriteError(err, "attachment already exists", "transaction does not exist", "failed to save attachment")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return previous, nil
}

func (r *PgxAttachmentRepository) DeleteAttachment(ctx context.Context, tenantID, attachmentID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM attachments WHERE attachment_id = $1 AND client_id = $2`, attachmentID, tenantID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete attachment", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("attachment not found")
	}
	return nil
}
