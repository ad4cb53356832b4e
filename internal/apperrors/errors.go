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

// ErrExternalFetch indicates that an upstream API could not be read.
var ErrExternalFetch = errors.New("external fetch failure")

// ErrRateUnprocessable is returned when the rate provider answers HTTP 422.
var ErrRateUnprocessable = errors.New("Unprocessable Entity")

// AppError carries an HTTP-ish status code, a human readable message and an optional cause.
type AppError struct {
	Code    int
	Message string
	Err     error

	// kind is the sentinel matched by errors.Is (ErrValidation, ErrNotFound...).
	kind error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes both the sentinel kind and the underlying cause to errors.Is/As.
func (e *AppError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.kind != nil {
		errs = append(errs, e.kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// NewAppError wraps err with a status code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError creates an error matching ErrValidation.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, kind: ErrValidation}
}

// NewValidationErrorWithCause creates an error matching ErrValidation whose text is "message: cause".
func NewValidationErrorWithCause(message string, cause error) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: cause, kind: ErrValidation}
}

// NewNotFoundError creates an error matching ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, kind: ErrNotFound}
}

// ExternalFetchError reports a non-success HTTP status from an upstream API.
type ExternalFetchError struct {
	StatusCode int
}

func (e *ExternalFetchError) Error() string {
	return fmt.Sprintf("upstream API returned status code %d", e.StatusCode)
}

// Is makes ExternalFetchError match ErrExternalFetch.
func (e *ExternalFetchError) Is(target error) bool {
	return target == ErrExternalFetch
}
