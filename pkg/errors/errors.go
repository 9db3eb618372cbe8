package errors

import "fmt"

// HTTPError is an error carrying the HTTP status code it should be
// answered with. Delivery-layer mapError functions translate domain
// errors into HTTPError values; pkg/response knows how to render them.
type HTTPError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status code for this error.
func (e *HTTPError) StatusCode() int {
	return e.Code
}

// NewHTTPError creates a new HTTPError with the given status code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// NewHTTPErrorf creates a new HTTPError with a formatted message.
func NewHTTPErrorf(code int, format string, args ...any) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
