package providers

import (
	"errors"
	"fmt"
)

// ErrProviderUnavailable is returned when no upstream is configured.
var ErrProviderUnavailable = errors.New("stats provider unavailable")

// StatusError captures a non-200 response from the stats backend.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s: unexpected status %d", e.Endpoint, e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}
