package errors

// Google Ads specific helpers for mapping REST failures to project ErrorCode, extracting fields, and retry semantics

import (
	"context"
	stdjson "encoding/json"
	stderrs "errors"
	"fmt"
	"net"
	"net/http"
	"strings"
)

// Canonical status strings carried by the REST error payload
const (
	gadsStatusInvalidArgument   = "INVALID_ARGUMENT"
	gadsStatusUnauthenticated   = "UNAUTHENTICATED"
	gadsStatusPermissionDenied  = "PERMISSION_DENIED"
	gadsStatusNotFound          = "NOT_FOUND"
	gadsStatusResourceExhausted = "RESOURCE_EXHAUSTED"
	gadsStatusUnavailable       = "UNAVAILABLE"
	gadsStatusDeadlineExceeded  = "DEADLINE_EXCEEDED"
	gadsStatusInternal          = "INTERNAL"
	gadsStatusAborted           = "ABORTED"
)

// APIError is the decoded REST error body returned by the Google Ads API.
// Details keeps the raw detail blocks for logging; DetailText flattens the
// per-operation messages for classification
type APIError struct {
	HTTPCode   int
	Status     string
	Message    string
	DetailText string
	Details    stdjson.RawMessage
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Status != "" {
		return fmt.Sprintf("google ads api: %s (%d): %s", e.Status, e.HTTPCode, e.Message)
	}
	return fmt.Sprintf("google ads api: http %d: %s", e.HTTPCode, e.Message)
}

// restErrorEnvelope mirrors the {"error": {...}} wrapper on the wire
type restErrorEnvelope struct {
	Error struct {
		Code    int                `json:"code"`
		Message string             `json:"message"`
		Status  string             `json:"status"`
		Details stdjson.RawMessage `json:"details"`
	} `json:"error"`
}

// DecodeAPIError parses a non-2xx REST response body into an *APIError.
// A body that does not parse still yields a usable error carrying the
// HTTP status and raw text
func DecodeAPIError(httpCode int, body []byte) *APIError {
	out := &APIError{HTTPCode: httpCode}

	var env restErrorEnvelope
	if err := stdjson.Unmarshal(body, &env); err != nil || env.Error.Message == "" && env.Error.Status == "" {
		out.Message = strings.TrimSpace(string(body))
		return out
	}
	out.Status = env.Error.Status
	out.Message = env.Error.Message
	out.Details = env.Error.Details
	out.DetailText = flattenDetails(env.Error.Details)
	return out
}

// flattenDetails pulls the per-error messages and error code keys out of the
// GoogleAdsFailure detail blocks into one lowercase string for matching
func flattenDetails(raw stdjson.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var blocks []struct {
		Errors []struct {
			ErrorCode map[string]string `json:"errorCode"`
			Message   string            `json:"message"`
		} `json:"errors"`
	}
	if err := stdjson.Unmarshal(raw, &blocks); err != nil {
		return ""
	}
	var b strings.Builder
	for _, blk := range blocks {
		for _, e := range blk.Errors {
			for k, v := range e.ErrorCode {
				b.WriteString(strings.ToLower(k))
				b.WriteByte(':')
				b.WriteString(strings.ToLower(v))
				b.WriteByte(' ')
			}
			b.WriteString(strings.ToLower(e.Message))
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// ExtractAPIError returns (*APIError, true) if the root cause is an APIError
func ExtractAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if stderrs.As(Root(err), &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsStatus reports whether the error is a Google Ads error with the given canonical status
func IsStatus(err error, status string) bool {
	apiErr, ok := ExtractAPIError(err)
	return ok && apiErr.Status == status
}

// APIErrorCode maps a decoded Google Ads failure to an ErrorCode with an ok flag.
// !ok means err wasn't an APIError; caller may fall back to generic handling
func APIErrorCode(err error) (ErrorCode, bool) {
	var apiErr *APIError
	if !stderrs.As(Root(err), &apiErr) {
		return ErrorCodeUnexpected, false
	}
	return classifyAPI(apiErr), true
}

func classifyAPI(e *APIError) ErrorCode {
	switch e.Status {
	case gadsStatusInvalidArgument:
		return ErrorCodeValidation
	case gadsStatusUnauthenticated:
		return ErrorCodeAuthentication
	case gadsStatusPermissionDenied:
		return ErrorCodePermission
	case gadsStatusNotFound:
		return ErrorCodeNotFound
	case gadsStatusResourceExhausted:
		// RESOURCE_EXHAUSTED covers both request throttling and period quota.
		// TEMPORARILY_EXHAUSTED quota errors are throttles; the rest hold
		// for the whole period
		switch {
		case strings.Contains(e.DetailText, "temporarily"):
			return ErrorCodeRateLimit
		case strings.Contains(e.DetailText, "quotaerror"),
			strings.Contains(e.DetailText, "daily"),
			strings.Contains(e.DetailText, "quota exhausted"):
			return ErrorCodeQuotaExhausted
		}
		return ErrorCodeRateLimit
	case gadsStatusUnavailable, gadsStatusDeadlineExceeded, gadsStatusInternal, gadsStatusAborted:
		return ErrorCodeTransientService
	}

	// No canonical status; fall back to the HTTP layer
	switch {
	case e.HTTPCode == http.StatusUnauthorized:
		return ErrorCodeAuthentication
	case e.HTTPCode == http.StatusForbidden:
		return ErrorCodePermission
	case e.HTTPCode == http.StatusNotFound:
		return ErrorCodeNotFound
	case e.HTTPCode == http.StatusTooManyRequests:
		return ErrorCodeRateLimit
	case e.HTTPCode == http.StatusBadRequest:
		return ErrorCodeValidation
	case e.HTTPCode >= 500:
		return ErrorCodeTransientService
	}
	return ErrorCodeUnexpected
}

// FromGoogleAds wraps a Google Ads failure with a mapped ErrorCode and message.
// Transport-level faults (timeouts, refused connections) classify too.
// If err is nil, returns nil
func FromGoogleAds(err error, msg string) error {
	if err == nil {
		return nil
	}
	if code, ok := APIErrorCode(err); ok {
		return Wrap(err, code, msg)
	}
	return Wrap(err, TransportErrorCode(err), msg)
}

// FromGoogleAdsf is the formatted variant of FromGoogleAds
func FromGoogleAdsf(err error, format string, a ...any) error {
	return FromGoogleAds(err, fmt.Sprintf(format, a...))
}

// TransportErrorCode classifies non-payload faults seen on the outbound call.
// A deadline expiring mid-call counts as a transient service fault; the
// request may well succeed given a fresh budget
func TransportErrorCode(err error) ErrorCode {
	if stderrs.Is(err, context.DeadlineExceeded) {
		return ErrorCodeTransientService
	}
	if stderrs.Is(err, context.Canceled) {
		return ErrorCodeUnexpected
	}

	var netErr net.Error
	if stderrs.As(err, &netErr) && netErr.Timeout() {
		return ErrorCodeTransientService
	}

	// Fallback: text patterns from net/http and the OS dialer
	s := strings.ToLower(Root(err).Error())
	switch {
	case strings.Contains(s, "connection refused"),
		strings.Contains(s, "connection reset"),
		strings.Contains(s, "no such host"),
		strings.Contains(s, "network is unreachable"),
		strings.Contains(s, "i/o timeout"),
		strings.Contains(s, "tls handshake timeout"),
		strings.Contains(s, "unexpected eof"),
		strings.Contains(s, "server closed idle connection"):
		return ErrorCodeTransientService
	case strings.Contains(s, "invalid_grant"),
		strings.Contains(s, "invalid_client"),
		strings.Contains(s, "unauthorized_client"):
		// oauth2 token endpoint rejections surface as flat text
		return ErrorCodeAuthentication
	default:
		return ErrorCodeUnexpected
	}
}
