// Package storage keeps uploaded files behind a small key/value interface so the
// local filesystem and Google Cloud Storage are interchangeable.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
)

// ErrNotExist is returned by Open when no object is stored under the key.
var ErrNotExist = errors.New("stored object does not exist")

// ErrInvalidKey is returned for keys that are empty, absolute or escape the store root.
var ErrInvalidKey = errors.New("invalid storage key")

// Object is an opened stored file. Callers must close Body.
type Object struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// FileStore persists files under slash-separated keys.
type FileStore interface {
	Save(ctx context.Context, key string, r io.Reader, contentType string) error
	Open(ctx context.Context, key string) (*Object, error)
	// Delete removes the object. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error
	// DeletePrefix removes every object whose key starts with prefix.
	DeletePrefix(ctx context.Context, prefix string) error
	// Check verifies the store is reachable.
	Check(ctx context.Context) error
}

// CleanKey normalizes key and rejects keys that would leave the store root.
func CleanKey(key string) (string, error) {
	key = strings.TrimPrefix(strings.TrimSpace(key), "/")
	if key == "" {
		return "", ErrInvalidKey
	}
	cleaned := path.Clean(key)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") || strings.Contains(key, "\\") {
		return "", ErrInvalidKey
	}
	return cleaned, nil
}

// TenantPrefix is the key prefix of every file of a tenant.
func TenantPrefix(tenantID string) string {
	return fmt.Sprintf("clients/%s/", tenantID)
}

// TransactionKey builds the key of a transaction attachment.
func TransactionKey(tenantID, transactionID, objectID, fileName string) string {
	return fmt.Sprintf("%stransactions/%s/%s-%s", TenantPrefix(tenantID), transactionID, objectID, SanitizeFileName(fileName))
}

// LogoKey builds the key of a tenant logo.
func LogoKey(tenantID, objectID, fileName string) string {
	return fmt.Sprintf("%slogo/%s-%s", TenantPrefix(tenantID), objectID, SanitizeFileName(fileName))
}

// SanitizeFileName keeps the base name of an uploaded file with unsafe characters replaced.
func SanitizeFileName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := strings.Trim(b.String(), ".")
	if out == "" || out == "_" {
		return "file"
	}
	if len(out) > 100 {
		out = out[len(out)-100:]
	}
	return out
}
