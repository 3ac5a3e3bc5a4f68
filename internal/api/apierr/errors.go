package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/mcmonitor/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeServerNotFound   = "SERVER_NOT_FOUND"
	CodeGuildNotFound    = "GUILD_NOT_FOUND"
	CodeInvalidServer    = "INVALID_SERVER"
	CodeStoreUnavailable = "STORE_UNAVAILABLE"
	CodeUpstreamError    = "UPSTREAM_ERROR"
	CodeInternalError    = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrServerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeServerNotFound, "Server not found"}}
	case errors.Is(err, model.ErrGuildNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGuildNotFound, "Guild not found"}}
	case errors.Is(err, model.ErrInvalidServer):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidServer, "Invalid server"}}
	case errors.Is(err, model.ErrNoToken):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInvalidServerError reports a rejected publish with a user-facing message
func NewInvalidServerError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidServer, message}}
}

// NewStoreUnavailableError reports a failed directory write
func NewStoreUnavailableError(message string) error {
	return &httpError{http.StatusServiceUnavailable, APIError{CodeStoreUnavailable, message}}
}

// NewUpstreamError reports a failed call to the bot API
func NewUpstreamError() error {
	return &httpError{http.StatusBadGateway, APIError{CodeUpstreamError, "Could not reach the bot API"}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewPanicError reports a recovered panic, quoting the request id so the
// caller can match it against the server log
func NewPanicError(requestID string) error {
	msg := "Internal server error"
	if requestID != "" {
		msg += " (ref " + requestID + ")"
	}
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, msg}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
