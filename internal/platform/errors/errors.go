// Package errors provides a structured error type with wrapping and metadata
package errors

// Always import the project errors package as perr (platform/errors)

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode defines supported error codes used across services
// Values are stable for wire compatibility; add sparingly
type ErrorCode uint16

const (
	// ErrorCodeUnexpected is for unclassified errors; raw cause is kept wrapped
	ErrorCodeUnexpected ErrorCode = iota

	// ErrorCodePanic is for panics recovered by middleware
	ErrorCodePanic

	// ErrorCodeValidation is for input that failed a grammar, range, or enum check
	ErrorCodeValidation

	// ErrorCodeAuthentication is for rejected credentials or tokens
	ErrorCodeAuthentication

	// ErrorCodeRateLimit is for request-rate thresholds; retry may succeed
	ErrorCodeRateLimit

	// ErrorCodeQuotaExhausted is for depleted account-level quota; retry will not help this period
	ErrorCodeQuotaExhausted

	// ErrorCodeTransientService is for network or service faults likely to succeed on retry
	ErrorCodeTransientService

	// ErrorCodePermission is for callers lacking rights to the target resource
	ErrorCodePermission

	// ErrorCodeNotFound is for missing resources
	ErrorCodeNotFound

	// ErrorCodeBatchTooLarge is for batches exceeding the declared ceiling
	ErrorCodeBatchTooLarge

	// ErrorCodeJSON is for JSON parsing/validation errors on inbound payloads
	ErrorCodeJSON
)

// HTTPStatusCode turns an ErrorCode into an http status code
func HTTPStatusCode(c ErrorCode) int {
	switch c {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeValidation, ErrorCodeJSON, ErrorCodeBatchTooLarge:
		return http.StatusBadRequest
	case ErrorCodeAuthentication:
		return http.StatusUnauthorized
	case ErrorCodePermission:
		return http.StatusForbidden
	case ErrorCodeRateLimit, ErrorCodeQuotaExhausted:
		return http.StatusTooManyRequests
	case ErrorCodeTransientService:
		return http.StatusServiceUnavailable
	case ErrorCodePanic, ErrorCodeUnexpected:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// RetryableCode reports whether a code represents a transient condition
// worth re-attempting. Only rate limiting and transient service faults
// qualify; quota exhaustion looks similar on the wire but holds for the
// whole period, so it is excluded
func RetryableCode(c ErrorCode) bool {
	return c == ErrorCodeRateLimit || c == ErrorCodeTransientService
}

// Advisory returns the caller-facing message for a code, distinct from the
// raw underlying cause (which stays wrapped for logs)
func Advisory(c ErrorCode) string {
	switch c {
	case ErrorCodeValidation:
		return "input failed validation; check the rejected field and retry with a corrected value"
	case ErrorCodeAuthentication:
		return "authentication with the Google Ads API failed; verify the configured credentials"
	case ErrorCodeRateLimit:
		return "request rate limit reached; the request may succeed if retried shortly"
	case ErrorCodeQuotaExhausted:
		return "the account's API quota is exhausted for the current period"
	case ErrorCodeTransientService:
		return "the Google Ads API is temporarily unavailable; the request may succeed on retry"
	case ErrorCodePermission:
		return "the authenticated account lacks permission for the target resource"
	case ErrorCodeNotFound:
		return "the referenced resource does not exist"
	case ErrorCodeBatchTooLarge:
		return "the batch exceeds the maximum item count for this operation"
	default:
		return "an unexpected error occurred; see logs for the underlying cause"
	}
}

// ErrNotFound is a sentinel not found error for convenience
var ErrNotFound = New(ErrorCodeNotFound, "not found")

// Error is the structured error type with wrapping and metadata
// msg is human/developer facing; code is machine facing
// field is optional (for validation); op is optional operation tag
// orig is the wrapped cause
type Error struct {
	orig  error
	msg   string
	code  ErrorCode
	field string
	op    string
}

// Wire is the JSON-serializable form returned by the API
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

// Unwrap returns the wrapped error, if any
func (e *Error) Unwrap() error { return e.orig }

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// Field returns the offending field, if any
func (e *Error) Field() string { return e.field }

// Op returns the operation label, if set
func (e *Error) Op() string { return e.op }

// ToWire converts an *Error to a Wire payload
// the message is the advisory-grade msg, never the wrapped raw cause
func (e *Error) ToWire() Wire { return Wire{Code: e.code, Message: e.msg, Field: e.field} }

// WireFrom converts any error into a Wire payload with best-effort mapping
// If err is nil, returns the zero-value Wire (no error)
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return e.ToWire()
	}
	return Wire{Code: ErrorCodeUnexpected, Message: Advisory(ErrorCodeUnexpected)}
}

// Root returns the deepest wrapped cause
func Root(err error) error {
	for err != nil {
		u := stderrs.Unwrap(err)
		if u == nil {
			return err
		}
		err = u
	}
	return nil
}

// CodeOf extracts an ErrorCode from any error, defaulting to Unexpected
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnexpected
}

// IsCode reports whether err has the given code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// HTTPStatus returns the mapped HTTP status for any error
func HTTPStatus(err error) int { return HTTPStatusCode(CodeOf(err)) }

// As unwraps and returns (*Error, true) if err is one of ours
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Mutators (copy-on-write)

// WithField attaches a field to an *Error (copy-on-write). If err isn't *Error, returns err unchanged
func WithField(err error, field string) error {
	if e, ok := As(err); ok {
		c := *e
		c.field = field
		return &c
	}
	return err
}

// WithOp attaches an operation label to an *Error (copy-on-write). If err isn't *Error, returns err unchanged
func WithOp(err error, op string) error {
	if e, ok := As(err); ok {
		c := *e
		c.op = op
		return &c
	}
	return err
}

// Constructors

// New returns a new *Error with the given code and message
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf returns a new *Error with code and formatted message
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap returns a new *Error that wraps orig with code and message
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

// Wrapf returns a new *Error that wraps orig with code and formatted message
func Wrapf(orig error, code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), orig: orig}
}

// WrapIf wraps only when err != nil (helper for 1-liners)
func WrapIf(err error, code ErrorCode, msg string) error {
	if err == nil {
		return nil
	}
	return Wrap(err, code, msg)
}

// Sugar

// Validationf returns a validation error
func Validationf(format string, a ...any) error { return Newf(ErrorCodeValidation, format, a...) }

// Authf returns an authentication error
func Authf(format string, a ...any) error { return Newf(ErrorCodeAuthentication, format, a...) }

// RateLimitf returns a rate limit error
func RateLimitf(format string, a ...any) error { return Newf(ErrorCodeRateLimit, format, a...) }

// Quotaf returns a quota exhausted error
func Quotaf(format string, a ...any) error { return Newf(ErrorCodeQuotaExhausted, format, a...) }

// Transientf returns a transient service error
func Transientf(format string, a ...any) error { return Newf(ErrorCodeTransientService, format, a...) }

// Permissionf returns a permission error
func Permissionf(format string, a ...any) error { return Newf(ErrorCodePermission, format, a...) }

// NotFoundf returns a not found error
func NotFoundf(format string, a ...any) error { return Newf(ErrorCodeNotFound, format, a...) }

// BatchTooLargef returns a batch too large error
func BatchTooLargef(format string, a ...any) error { return Newf(ErrorCodeBatchTooLarge, format, a...) }

// JSONErrf returns a JSON error
func JSONErrf(format string, a ...any) error { return Newf(ErrorCodeJSON, format, a...) }

// PanicErrf returns a panic error
func PanicErrf(format string, a ...any) error { return Newf(ErrorCodePanic, format, a...) }

// Unexpectedf returns a generic unexpected error
func Unexpectedf(format string, a ...any) error { return Newf(ErrorCodeUnexpected, format, a...) }

// HTTP bundles status + wire in one shot (nice for handlers)
func HTTP(err error) (int, Wire) {
	if err == nil {
		return http.StatusOK, Wire{}
	}
	return HTTPStatus(err), WireFrom(err)
}

// Retry semantics

// Retryable reports whether the error is retryable. Validation and batch
// sizing failures are raised before any remote call and never qualify;
// everything else follows the classified code (see googleads.go)
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	return RetryableCode(CodeOf(err))
}
