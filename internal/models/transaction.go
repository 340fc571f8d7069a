package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table joined with the employee name
// and the attachment columns, which are NULL when nothing is attached.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	ClientID        string          `db:"client_id"`
	EmployeeID      string          `db:"employee_id"`
	EmployeeName    string          `db:"employee_name"`
	Type            string          `db:"type"`
	TransactionDate time.Time       `db:"transaction_date"`
	Description     string          `db:"description"`
	Category        string          `db:"category"`
	Quantity        decimal.Decimal `db:"quantity"`
	UnitPrice       decimal.Decimal `db:"unit_price"`
	TotalPrice      decimal.Decimal `db:"total_price"`
	Status          string          `db:"status"`
	AuditFields

	AttachmentID         *string `db:"attachment_id"`
	AttachmentFileName   *string `db:"attachment_file_name"`
	AttachmentStorageKey *string `db:"attachment_storage_key"`
	AttachmentMimeType   *string `db:"attachment_mime_type"`
	AttachmentSizeBytes  *int64  `db:"attachment_size_bytes"`
}

// Attachment is a row of the attachments table.
type Attachment struct {
	AttachmentID  string  `db:"attachment_id"`
	ClientID      string  `db:"client_id"`
	TransactionID *string `db:"transaction_id"`
	Kind          string  `db:"kind"`
	FileName      string  `db:"file_name"`
	StorageKey    string  `db:"storage_key"`
	MimeType      string  `db:"mime_type"`
	SizeBytes     int64   `db:"size_bytes"`
	AuditFields
}
