package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/SscSPs/ark_management_app/internal/apperrors"
	portssvc "github.com/SscSPs/ark_management_app/internal/core/ports/services"
	"github.com/SscSPs/ark_management_app/internal/storage"
)

// sniffLen is the number of leading bytes content type detection looks at.
const sniffLen = 512

type uploadPolicy struct {
	maxBytes  int64
	allowPDF  bool
	fieldName string
}

// preparedUpload is an upload whose content type has been detected from its first bytes.
type preparedUpload struct {
	content     io.Reader
	contentType string
	fileName    string
}

// prepareUpload checks the size and detects the content type of an upload. Only images,
// and PDF when allowed, are accepted.
func prepareUpload(upload portssvc.FileUpload, policy uploadPolicy) (*preparedUpload, error) {
	if upload.Content == nil {
		return nil, apperrors.NewValidationFailedError(policy.fieldName + " is required")
	}
	if policy.maxBytes > 0 && upload.Size > policy.maxBytes {
		return nil, apperrors.NewValidationFailedError(
			fmt.Sprintf("%s exceeds the maximum size of %d bytes", policy.fieldName, policy.maxBytes))
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(upload.Content, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if n == 0 {
		return nil, apperrors.NewValidationFailedError(policy.fieldName + " is empty")
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	mediaType, _, _ := strings.Cut(contentType, ";")
	switch {
	case strings.HasPrefix(mediaType, "image/"):
	case policy.allowPDF && mediaType == "application/pdf":
	default:
		msg := policy.fieldName + " must be an image"
		if policy.allowPDF {
			msg = policy.fieldName + " must be an image or a PDF"
		}
		return nil, apperrors.NewValidationFailedError(msg)
	}

	var rest io.Reader = upload.Content
	if policy.maxBytes > 0 {
		rest = io.LimitReader(upload.Content, policy.maxBytes-int64(n))
	}
	return &preparedUpload{
		content:     io.MultiReader(bytes.NewReader(head), rest),
		contentType: mediaType,
		fileName:    upload.FileName,
	}, nil
}

func storageError(err error) error {
	return apperrors.NewAppError(http.StatusInternalServerError, "failed to store file", errors.Join(apperrors.ErrStorage, err))
}

// removeStoredFiles deletes files whose rows are already gone. Failures only leave orphans, so they are logged.
func (s *BaseService) removeStoredFiles(ctx context.Context, store storage.FileStore, keys ...string) {
	for _, key := range keys {
		if key == "" {
			continue
		}
		if err := store.Delete(ctx, key); err != nil {
			s.LogError(ctx, err, "Failed to delete stored file", slog.String("key", key))
		}
	}
}

// fileURL is the absolute download link of a stored file.
func fileURL(publicBaseURL, key string) string {
	segments := strings.Split(key, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.TrimRight(publicBaseURL, "/") + "/api/files/" + strings.Join(segments, "/")
}
