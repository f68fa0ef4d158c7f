package genbridge

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client at construction time.
type Option func(*Client)

// WithLogger sets the diagnostic logger. The default discards all output, so
// multiple clients in one process never share logging state.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTimeout overrides the wait bound for the upstream call. Values of zero
// or less keep DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHTTPClient supplies the HTTP client to use instead of the lazily
// created transport. The caller keeps ownership; Close will not touch it.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpc = hc
	}
}
