package genbridge

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates the bridge request is malformed JSON or does
	// not satisfy the request schema.
	ErrInvalidInput = errors.New("invalid bridge request")
	// ErrNetwork indicates a transport-level failure (DNS, connection, timeout).
	ErrNetwork = errors.New("network error")
	// ErrAPI indicates the upstream API answered with a non-2xx status.
	ErrAPI = errors.New("api error")
	// ErrDecode indicates the upstream response body is not valid JSON.
	ErrDecode = errors.New("invalid response body")
	// ErrInvalidOutput indicates the bridge result does not satisfy the
	// result schema.
	ErrInvalidOutput = errors.New("invalid bridge result")
)

// APIError carries the status code and body text of a non-2xx upstream
// response. It matches ErrAPI under errors.Is.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: %d - %s", e.Status, e.Body)
}

func (e *APIError) Unwrap() error { return ErrAPI }
