package errors

import "fmt"

// HTTPError carries an HTTP status code alongside a caller-facing message.
// Delivery layers translate domain errors into HTTPError via mapError.
type HTTPError struct {
	Status  int
	Message string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.Status, e.Message)
}
