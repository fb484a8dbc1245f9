// Package errors defines the error taxonomy used throughout the bulk
// fetcher. Transport and upstream failures abort a pagination run and
// surface partial results; shape violations are the only fatal class.
package errors

import "fmt"

// ConfigError indicates a problem with the client configuration or with
// caller-supplied parameters. It is a programming error, not a runtime
// failure.
type ConfigError struct {
	// Field contains the name of the configuration field that caused the error
	Field string
	// Message contains the detailed error message
	Message string
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error in field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

// TransportError indicates a connection-level failure (DNS, TCP, TLS, or
// a request that never produced a response). A pagination run recovers
// locally by returning what it has accumulated so far.
type TransportError struct {
	// URL is the request URL that failed
	URL string
	// Err contains the underlying network error
	Err error
}

func (e *TransportError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("transport error fetching %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// UpstreamError indicates a non-2xx response from Reddit with a decodable
// error body. Recovery is the same as for TransportError.
type UpstreamError struct {
	// StatusCode is the HTTP status code
	StatusCode int
	// Code is the error code from the response body, if present
	Code string
	// Message is the error message from the response body, if present
	Message string
	// URL is the request URL
	URL string
}

func (e *UpstreamError) Error() string {
	if e.Code != "" || e.Message != "" {
		return fmt.Sprintf("upstream error (status %d, code %q): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("upstream request failed with status %d", e.StatusCode)
}

// ShapeError indicates that a decoded body is neither the object nor the
// array shape the upstream contract promises. It invalidates the
// normalizer's assumptions and is therefore propagated as fatal rather
// than swallowed into a partial result.
type ShapeError struct {
	// Operation is the fetch operation whose response violated the contract
	Operation string
	// Message describes the violation
	Message string
	// Err contains the underlying decode error if available
	Err error
}

func (e *ShapeError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Operation != "" {
		return fmt.Sprintf("shape error during %s: %s", e.Operation, msg)
	}
	return fmt.Sprintf("shape error: %s", msg)
}

func (e *ShapeError) Unwrap() error {
	return e.Err
}

// RequestError indicates a problem constructing an API request before it
// was sent.
type RequestError struct {
	// Operation is the name of the API operation that failed
	Operation string
	// URL is the URL that was being accessed
	URL string
	// Err contains the underlying error if available
	Err error
}

func (e *RequestError) Error() string {
	if e.Operation != "" && e.URL != "" {
		return fmt.Sprintf("request error during %s to %s: %v", e.Operation, e.URL, e.Err)
	}
	if e.Operation != "" {
		return fmt.Sprintf("request error during %s: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("request error: %v", e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
