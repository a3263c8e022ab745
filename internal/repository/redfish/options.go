package redfish

import (
	"net/http"
	"time"

	"github.com/device-management-toolkit/redfish-inventory/internal/cache"
)

// Option -.
type Option func(*Client)

// Credentials enables HTTP basic authentication.
func Credentials(username, password string) Option {
	return func(c *Client) {
		c.username = username
		c.password = password
	}
}

// InsecureSkipVerify disables server certificate verification.
func InsecureSkipVerify(skip bool) Option {
	return func(c *Client) {
		if skip {
			c.http.Transport = insecureTransport()
		}
	}
}

// Timeout bounds each request, including reading the body.
func Timeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// Cache answers repeated fetches from memory.
func Cache(store *cache.Cache) Option {
	return func(c *Client) {
		c.cache = store
	}
}

// HTTPClient replaces the underlying client.
func HTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}
