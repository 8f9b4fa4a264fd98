package api

import (
	"errors"
	"fmt"

	middleware "github.com/tejusbharadwaj/bemcost/internal/api/middlewares"
	"github.com/tejusbharadwaj/bemcost/internal/config"
)

var (
	ErrRequest = errors.New("error making estimation request")
	ErrStatus  = errors.New("error status from estimation service")
)

const maxErrorBody = 512

// NetworkError is a transport failure: the service gave no usable response.
type NetworkError struct {
	Method    string
	Endpoint  string
	RequestID string
	Err       error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%v: %s %s (request %s): %v", ErrRequest, e.Method, e.Endpoint, e.RequestID, e.Err)
}

func (e *NetworkError) Unwrap() []error { return []error{ErrRequest, e.Err} }

// APIError is a response the service marked as failed, by status or by body.
type APIError struct {
	Method     string
	Endpoint   string
	RequestID  string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	body := e.Body
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody] + "..."
	}
	return fmt.Sprintf("%v: %s %s (request %s): status %d: %s", ErrStatus, e.Method, e.Endpoint, e.RequestID, e.StatusCode, body)
}

func (e *APIError) Unwrap() error { return ErrStatus }

// Temporary reports whether retrying the call may succeed.
func (e *APIError) Temporary() bool {
	return e.StatusCode == 429 || e.StatusCode >= 500
}

// Classify names the error kind for metrics labels.
func Classify(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, config.ErrMissingCredential):
		return "config_error"
	case errors.Is(err, ErrStatus):
		return "api_error"
	case errors.Is(err, ErrRequest), errors.Is(err, middleware.ErrRateLimited):
		return "network_error"
	default:
		return "error"
	}
}
