package errors

import (
	stderrors "errors"
	"fmt"
)

// Error codes for the failure taxonomy. The two file codes are the only
// terminal outcomes a run reports through the quality report itself; the
// rest abort the invocation.
const (
	CodeFileNotFound      = "FILE_NOT_FOUND"
	CodeFileUnreadable    = "FILE_UNREADABLE"
	CodeConfigInvalid     = "CONFIG_INVALID"
	CodeReportWriteFailed = "REPORT_WRITE_FAILED"
	CodeNarrativeFailed   = "NARRATIVE_FAILED"
)

// DomainError is a coded error carrying a stable machine code, a
// human-readable message, and an optional wrapped cause.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped cause, if any.
func (e *DomainError) Unwrap() error {
	return e.Err
}

// New creates a coded error with no cause.
func New(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// Newf creates a coded error with a formatted message.
func Newf(code, format string, args ...any) *DomainError {
	return &DomainError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying cause.
func Wrap(err error, code, message string) *DomainError {
	return &DomainError{Code: code, Message: message, Err: err}
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code string) bool {
	var domainErr *DomainError
	if stderrors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// CodeOf returns the code carried by err, or empty when err is not coded.
func CodeOf(err error) string {
	var domainErr *DomainError
	if stderrors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ""
}
