package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/ark_management_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"not found constructor", apperrors.NewNotFoundError("item not found"), http.StatusNotFound, "item not found"},
		{"wrapped not found sentinel", fmt.Errorf("lookup: %w", apperrors.ErrNotFound), http.StatusNotFound, "resource not found"},
		{"conflict", apperrors.NewConflictError("item already exists"), http.StatusBadRequest, "item already exists"},
		{"catalog reference", apperrors.NewUnknownCatalogReferenceError("Gadget", "product"), http.StatusBadRequest, "item 'Gadget' is not registered as a product"},
		{"forbidden", apperrors.NewForbiddenError("not yours"), http.StatusForbidden, "not yours"},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, "invalid email or password"},
		{"invalid token", apperrors.ErrInvalidToken, http.StatusBadRequest, apperrors.ErrInvalidToken.Error()},
		{"internal app error hides message", apperrors.NewAppError(500, "failed to query", errors.New("conn reset")), http.StatusInternalServerError, "Internal server error"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := apperrors.HTTPStatus(tt.err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestConstructorsWrapSentinels(t *testing.T) {
	assert.ErrorIs(t, apperrors.NewNotFoundError("x"), apperrors.ErrNotFound)
	assert.ErrorIs(t, apperrors.NewValidationFailedError("x"), apperrors.ErrValidation)
	assert.ErrorIs(t, apperrors.NewConflictError("x"), apperrors.ErrDuplicate)
	assert.ErrorIs(t, apperrors.NewForbiddenError("x"), apperrors.ErrForbidden)
	assert.ErrorIs(t, apperrors.NewUnknownCatalogReferenceError("a", "b"), apperrors.ErrUnknownCatalogReference)
}
