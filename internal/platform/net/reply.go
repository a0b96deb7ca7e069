package net

import (
	"net/http"

	perr "adsbridge/internal/platform/errors"
)

// Envelope status values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Wire is the common envelope used by transports.
// Status is "success" or "error"; Error carries the advisory string and
// Details optional structured context (offending field, itemized results)
type Wire struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Message    string         `json:"message,omitempty"`
	Error      string         `json:"error,omitempty"`
	Details    any            `json:"details,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// OK builds a 200 envelope
func OK(data any, reqID string) (int, Wire) {
	return http.StatusOK, Wire{
		StatusCode: http.StatusOK,
		Status:     StatusSuccess,
		RequestID:  reqID,
		Data:       data,
	}
}

// Created builds a 201 envelope
func Created(data any, reqID string) (int, Wire) {
	return http.StatusCreated, Wire{
		StatusCode: http.StatusCreated,
		Status:     StatusSuccess,
		RequestID:  reqID,
		Data:       data,
	}
}

// NoContent builds a 204 envelope
func NoContent(reqID string) (int, Wire) {
	return http.StatusNoContent, Wire{
		StatusCode: http.StatusNoContent,
		Status:     StatusSuccess,
		RequestID:  reqID,
	}
}

// Error builds an error envelope.
// The advisory message goes out; the wrapped raw cause stays in the logs
func Error(err error, reqID string) (int, Wire) {
	if err == nil {
		return OK(nil, reqID)
	}
	status := perr.HTTPStatus(err)
	w := perr.WireFrom(err)
	out := Wire{
		StatusCode: status,
		Status:     StatusError,
		Code:       w.Code,
		Error:      w.Message,
		RequestID:  reqID,
	}
	if w.Field != "" {
		out.Details = map[string]string{"field": w.Field}
	}
	return status, out
}
