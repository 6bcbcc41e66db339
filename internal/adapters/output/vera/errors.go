package vera

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedStatus = errors.New("vera: unexpected status")
	ErrMalformedCatalog = errors.New("vera: malformed user_data response")
)

// StatusError is returned when the controller answers with a non-2xx code.
type StatusError struct {
	Request    string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("vera: %s returned status %d", e.Request, e.StatusCode)
	}
	return fmt.Sprintf("vera: %s returned status %d: %s", e.Request, e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}
