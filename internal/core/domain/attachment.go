package domain

// AttachmentKind tells transaction receipts from tenant logos.
type AttachmentKind string

const (
	AttachmentTransaction AttachmentKind = "transaction"
	AttachmentLogo        AttachmentKind = "logo"
)

// Attachment binds one stored file to one transaction or to a tenant profile.
type Attachment struct {
	AttachmentID  string         `json:"id"`
	TenantID      string         `json:"clientId"`
	TransactionID *string        `json:"transactionId,omitempty"`
	Kind          AttachmentKind `json:"kind"`
	FileName      string         `json:"fileName"`
	StorageKey    string         `json:"-"`
	MimeType      string         `json:"mimeType"`
	SizeBytes     int64          `json:"sizeBytes"`
	URL           string         `json:"url,omitempty"`
	AuditFields
}
