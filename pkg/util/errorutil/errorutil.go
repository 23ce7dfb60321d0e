package errorutil

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
)

// Error codes returned by command and query handlers.
const (
	CodeDuplicateKey       = "DUPLICATE_KEY"
	CodeNotFound           = "NOT_FOUND"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodePersistenceFailure = "PERSISTENCE_FAILURE"
	CodeValidationFailed   = "VALIDATION_FAILED"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

// NewDuplicateKey signals a natural-key uniqueness violation. The aggregate
// kind and the conflicting value travel in the details map.
func NewDuplicateKey(aggregate, value string) error {
	return &DomainError{
		Code:       CodeDuplicateKey,
		Message:    fmt.Sprintf("%s with value %q already exists", aggregate, value),
		HTTPStatus: http.StatusConflict,
		Details:    map[string]any{"aggregate": aggregate, "value": value},
	}
}

// NewNotFound signals that a command targeted an identity absent from the store.
func NewNotFound(aggregate string, id int64) error {
	return &DomainError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s %d does not exist", aggregate, id),
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"aggregate": aggregate, "id": id},
	}
}

// NewInvalidCredentials signals failed credential verification.
func NewInvalidCredentials() error {
	return &DomainError{
		Code:       CodeInvalidCredentials,
		Message:    "invalid credentials",
		HTTPStatus: http.StatusUnauthorized,
	}
}

// NewPersistenceFailure wraps an unexpected store fault. Only the cause
// message is exposed, never the raw infrastructure error type.
func NewPersistenceFailure(aggregate string, cause error) error {
	msg := fmt.Sprintf("error while persisting %s", aggregate)
	if cause != nil {
		msg = fmt.Sprintf("error while persisting %s: %v", aggregate, cause)
	}
	return &DomainError{
		Code:       CodePersistenceFailure,
		Message:    msg,
		HTTPStatus: http.StatusInternalServerError,
		Err:        cause,
	}
}

// NewValidationError reports a malformed request.
func NewValidationError(message string, details map[string]any) error {
	return NewDomainError(CodeValidationFailed, message, http.StatusBadRequest, details)
}

// IsCode reports whether err carries the given domain error code.
func IsCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return &DomainError{
			Code:       CodeNotFound,
			Message:    "resource not found",
			HTTPStatus: http.StatusNotFound,
		}
	}
	return &DomainError{
		Code:       CodePersistenceFailure,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}
