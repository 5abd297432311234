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

// ErrForbidden indicates that the caller is not allowed to perform the operation.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrFetchFailure indicates that an underlying store read failed. A snapshot
// built on top of a failed fetch is never partially rendered; callers abort
// the whole computation when they see this error.
var ErrFetchFailure = errors.New("store fetch failed")

// ErrInsufficientStock indicates that a sale or return would drive a book's
// stock below zero. Rejected at the mutation boundary.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrAlreadySettled indicates an attempt to settle a ledger entry that is not
// pending anymore. Pending -> Paid happens exactly once.
var ErrAlreadySettled = errors.New("ledger entry already settled")

// AppError wraps an underlying error with an HTTP-ish status code and a
// message safe to log.
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

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
