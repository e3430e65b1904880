package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// AppError carries an HTTP-ish status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError wraps err with a status code and a message safe to show callers.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Validationf builds an ErrValidation-wrapped error whose message is the formatted text only.
func Validationf(format string, args ...any) error {
	return &messageError{msg: fmt.Sprintf(format, args...), kind: ErrValidation}
}

// NotFoundf builds an ErrNotFound-wrapped error whose message is the formatted text only.
func NotFoundf(format string, args ...any) error {
	return &messageError{msg: fmt.Sprintf(format, args...), kind: ErrNotFound}
}

// Unauthorizedf builds an ErrUnauthorized-wrapped error whose message is the formatted text only.
func Unauthorizedf(format string, args ...any) error {
	return &messageError{msg: fmt.Sprintf(format, args...), kind: ErrUnauthorized}
}

// messageError keeps the sentinel reachable through errors.Is while exposing
// a message that can be returned to API clients verbatim.
type messageError struct {
	msg  string
	kind error
}

func (e *messageError) Error() string { return e.msg }

func (e *messageError) Unwrap() error { return e.kind }
