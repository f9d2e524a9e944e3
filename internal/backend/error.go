package backend

import (
	"errors"
	"fmt"
)

var (
	// -- Transport --
	ErrUnavailable = errors.New("storefront backend unavailable")

	// -- Protocol --
	ErrDecodeResponse = errors.New("failed to decode backend response")
)

// StatusError carries a non-2xx backend response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend error: status %d: %s", e.StatusCode, e.Body)
}
