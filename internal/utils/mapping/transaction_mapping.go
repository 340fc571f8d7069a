package mapping

import (
	"github.com/SscSPs/ark_management_app/internal/core/domain"
	"github.com/SscSPs/ark_management_app/internal/models"
)

// ToDomainTransaction converts a model Transaction to a domain Transaction.
// The attachment is set only when the joined attachment columns are present.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	tx := domain.Transaction{
		TransactionID:   m.TransactionID,
		TenantID:        m.ClientID,
		EmployeeID:      m.EmployeeID,
		EmployeeName:    m.EmployeeName,
		Kind:            domain.TransactionKind(m.Type),
		TransactionDate: m.TransactionDate,
		Description:     m.Description,
		Counterpart:     m.Category,
		Quantity:        m.Quantity,
		UnitPrice:       m.UnitPrice,
		TotalPrice:      m.TotalPrice,
		Status:          domain.PaymentStatus(m.Status),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
	if m.AttachmentID != nil {
		txID := m.TransactionID
		att := &domain.Attachment{
			AttachmentID:  *m.AttachmentID,
			TenantID:      m.ClientID,
			TransactionID: &txID,
			Kind:          domain.AttachmentTransaction,
		}
		if m.AttachmentFileName != nil {
			att.FileName = *m.AttachmentFileName
		}
		if m.AttachmentStorageKey != nil {
			att.StorageKey = *m.AttachmentStorageKey
		}
		if m.AttachmentMimeType != nil {
			att.MimeType = *m.AttachmentMimeType
		}
		if m.AttachmentSizeBytes != nil {
			att.SizeBytes = *m.AttachmentSizeBytes
		}
		tx.Attachment = att
	}
	return tx
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	return mapSlice(ms, ToDomainTransaction)
}

// ToModelAttachment converts a domain Attachment to a model Attachment
func ToModelAttachment(d domain.Attachment) models.Attachment {
	return models.Attachment{
		AttachmentID:  d.AttachmentID,
		ClientID:      d.TenantID,
		TransactionID: d.TransactionID,
		Kind:          string(d.Kind),
		FileName:      d.FileName,
		StorageKey:    d.StorageKey,
		MimeType:      d.MimeType,
		SizeBytes:     d.SizeBytes,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAttachment converts a model Attachment to a domain Attachment
func ToDomainAttachment(m models.Attachment) domain.Attachment {
	return domain.Attachment{
		AttachmentID:  m.AttachmentID,
		TenantID:      m.ClientID,
		TransactionID: m.TransactionID,
		Kind:          domain.AttachmentKind(m.Kind),
		FileName:      m.FileName,
		StorageKey:    m.StorageKey,
		MimeType:      m.MimeType,
		SizeBytes:     m.SizeBytes,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
