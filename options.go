package mindly

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// mindly.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"time"
)

// Option configures a Client during construction in New.
//
// Options are applied before the bearer-token transport wrapper is installed,
// so transport-related options (like debug logging) end up underneath it.
// Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout.
//
// On expiry the operation fails with a generic message and is never retried.
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithTokenSource installs the source consulted for the bearer token on every
// request. A session store is the usual implementation.
func WithTokenSource(src TokenSource) Option {
	return func(c *Client) error {
		if src == nil {
			return fmt.Errorf("token source must not be nil")
		}
		c.tokens = src
		return nil
	}
}

// WithToken is a convenience for a fixed token known at construction time.
func WithToken(token string) Option {
	return WithTokenSource(StaticToken(token))
}

// WithPageSize sets the fixed page size requested from list endpoints.
func WithPageSize(n int) Option {
	return func(c *Client) error {
		if n <= 0 {
			return fmt.Errorf("page size must be > 0")
		}
		c.pageSize = n
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// Do not enable this option in production environments: dumps include the
// Authorization header and full bodies.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			base := c.http.Transport
			if base == nil {
				base = defaultTransport()
			}
			c.http.Transport = &debugTransport{base: base}
		}
		return nil
	}
}
