package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/ark_management_app/internal/apperrors"
	"github.com/SscSPs/ark_management_app/internal/core/domain"
)

// MessageResponse is the body of operations that return no resource.
type MessageResponse struct {
	Message string `json:"msg"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ParseDate parses a YYYY-MM-DD date. Full RFC 3339 timestamps are accepted and truncated.
func ParseDate(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(domain.DateLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return domain.DateOnly(t), nil
	}
	return time.Time{}, apperrors.NewValidationFailedError(fmt.Sprintf("%s must be a date in YYYY-MM-DD format", field))
}

// parseOptionalDate is ParseDate for filters, where empty or FilterAll means unset.
func parseOptionalDate(field, value string) (*time.Time, error) {
	if !domain.IsFilterSet(strings.TrimSpace(value)) {
		return nil, nil
	}
	t, err := ParseDate(field, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
