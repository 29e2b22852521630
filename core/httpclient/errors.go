package httpclient

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// TransportError is returned when a service could not be reached.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError is returned when a service answered with a non-success status.
type APIError struct {
	Method     string
	URL        string
	StatusCode int
	// Message is the service-provided error message, if the body carried one.
	Message string
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.URL, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s %s: status %d", e.Method, e.URL, e.StatusCode)
}

// NewAPIError builds an APIError from a response, probing the body for a message.
// Both the *arr services and the *seerr services use a top-level "message" field;
// some *arr validation failures return an array of {errorMessage}.
func NewAPIError(method, url string, resp *Response) *APIError {
	return &APIError{
		Method:     method,
		URL:        url,
		StatusCode: resp.StatusCode,
		Message:    errorMessage(resp.Body),
	}
}

func errorMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	if msg := gjson.GetBytes(body, "message"); msg.Type == gjson.String {
		return strings.TrimSpace(msg.Str)
	}
	if msg := gjson.GetBytes(body, "0.errorMessage"); msg.Type == gjson.String {
		return strings.TrimSpace(msg.Str)
	}
	return ""
}

// DecodeError is returned when a response body does not have the expected shape.
type DecodeError struct {
	URL string
	Err error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.URL, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *DecodeError) Unwrap() error {
	return e.Err
}
