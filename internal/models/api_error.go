package models

import (
	"fmt"
	"net/http"
)

// ErrorCode is a string type for consistent error codes.
type ErrorCode string

const (
	ErrorCodeInternalServerError ErrorCode = "internal_server_error"
	ErrorCodeInvalidFormat       ErrorCode = "invalid_format"
	ErrorCodeMissingParameter    ErrorCode = "missing_parameter"
	ErrorCodeUpstreamQuery       ErrorCode = "upstream_query_failed"
)

// Client facing messages.
const (
	MessageQueryExecuted     = "Query executed successfully"
	MessageQueryFailed       = "Error querying Timestream"
	MessageInvalidTimeWindow = "Invalid time window format. Must be in the format: [number][m|h|d] (e.g., 1m, 2h, 3d)"
	MessageInvalidDeviceIDs  = "One or more invalid device IDs. All must be valid UUIDs."
	MessageInvalidDeviceID   = "Invalid device ID format. Must be a valid UUID."
	MessageMissingDevice     = "Must provide either deviceId in path or ids in query string"
	UnknownError             = "Unknown error"
)

// APIError is the body of every non-2xx response.
type APIError struct {
	Code       ErrorCode `json:"-"`
	Message    string    `json:"message"`
	Detail     string    `json:"error,omitempty"`
	StatusCode int       `json:"-"`
}

// Error makes APIError implement the error interface.
func (e APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Detail)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewAPIError is a constructor for APIError.
func NewAPIError(code ErrorCode, message string, detail string, statusCode int) APIError {
	return APIError{
		Code:       code,
		Message:    message,
		Detail:     detail,
		StatusCode: statusCode,
	}
}

// NewBadRequest builds a 400 with no detail.
func NewBadRequest(code ErrorCode, message string) APIError {
	return NewAPIError(code, message, "", http.StatusBadRequest)
}

// NewQueryError builds the 500 returned when the store could not be queried.
// A nil or empty error becomes "Unknown error".
func NewQueryError(err error) APIError {
	detail := UnknownError
	if err != nil && err.Error() != "" {
		detail = err.Error()
	}
	return NewAPIError(ErrorCodeUpstreamQuery, MessageQueryFailed, detail, http.StatusInternalServerError)
}
