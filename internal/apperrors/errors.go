package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller is authenticated but may not touch the resource.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates a missing or invalid session.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInvalidCredentials is returned for an unknown email or a wrong password alike.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrInvalidToken covers unknown, used and expired registration or reset tokens.
var ErrInvalidToken = errors.New("invalid, expired or already used token")

// ErrTenantAlreadyRegistered indicates that the tenant of a registration token already has a user.
var ErrTenantAlreadyRegistered = errors.New("a user is already registered for this client")

// ErrUnknownCatalogReference indicates that a transaction names a catalog entry that does not exist.
var ErrUnknownCatalogReference = errors.New("unknown catalog reference")

// ErrStorage indicates a failure of the file store.
var ErrStorage = errors.New("storage failure")

// AppError carries an HTTP status code and a client-safe message along with the cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError builds an AppError. The cause is kept for logging and errors.Is.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError reports a missing resource.
func NewNotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

// NewValidationFailedError reports invalid input.
func NewValidationFailedError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrValidation)
}

// NewConflictError reports a unique constraint violation.
func NewConflictError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrDuplicate)
}

// NewForbiddenError reports access to a resource of another tenant or role.
func NewForbiddenError(message string) *AppError {
	return NewAppError(http.StatusForbidden, message, ErrForbidden)
}

// NewUnknownCatalogReferenceError names the offending value and the catalog type it was expected in.
func NewUnknownCatalogReferenceError(value, expectedType string) *AppError {
	return NewAppError(http.StatusBadRequest,
		fmt.Sprintf("item '%s' is not registered as a %s", value, expectedType),
		ErrUnknownCatalogReference)
}

// HTTPStatus maps an error to the status code and message a handler should respond with.
// Unknown errors become a generic 500 so no internal detail leaks.
func HTTPStatus(err error) (int, string) {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != 0 && appErr.Code < http.StatusInternalServerError {
		return appErr.Code, appErr.Message
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, ErrNotFound.Error()
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden, ErrForbidden.Error()
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized, ErrInvalidCredentials.Error()
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, ErrUnauthorized.Error()
	case errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrTenantAlreadyRegistered),
		errors.Is(err, ErrUnknownCatalogReference),
		errors.Is(err, ErrDuplicate),
		errors.Is(err, ErrValidation):
		return http.StatusBadRequest, err.Error()
	}
	return http.StatusInternalServerError, "Internal server error"
}
