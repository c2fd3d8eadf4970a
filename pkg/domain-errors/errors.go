// Package domainerrors provides coded errors shared across the ingestion
// pipeline. Codes classify failures for callers (CLI exit status, HTTP
// mapping, batch abort decisions) without leaking database details.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code identifies the class of a domain error.
type Code string

const (
	// CodeValidation marks rejected input, e.g. a document whose
	// organization payload has no DUNS. Validation failures abort and roll
	// back the whole batch.
	CodeValidation Code = "validation"
	// CodeNotFound marks a lookup miss for a business entity.
	CodeNotFound Code = "not_found"
	// CodeUnauthorized marks failed authentication against the upstream API.
	CodeUnauthorized Code = "unauthorized"
	// CodeBadRequest marks malformed caller input outside document payloads.
	CodeBadRequest Code = "bad_request"
	// CodeTimeout marks a cancelled or expired context.
	CodeTimeout Code = "timeout"
	// CodeInternal marks unexpected failures (driver errors, constraint
	// violations); these also abort and roll back the batch.
	CodeInternal Code = "internal"
)

// Error is a coded error with an optional wrapped cause.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// New creates a coded error with no cause.
func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Newf creates a coded error from a format string.
func Newf(code Code, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an existing error. A nil err returns
// nil so call sites can wrap unconditionally.
func Wrap(err error, code Code, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: msg, cause: err}
}

// HasCode reports whether any error in the chain carries the given code.
func HasCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}
