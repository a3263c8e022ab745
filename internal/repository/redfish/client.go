// Package redfish implements the Redfish transport: authenticated GETs that
// return decoded documents, with an optional document cache.
package redfish

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/device-management-toolkit/redfish-inventory/internal/cache"
	"github.com/device-management-toolkit/redfish-inventory/internal/entity/document"
	redfishv1 "github.com/device-management-toolkit/redfish-inventory/internal/entity/redfish/v1"
	"github.com/device-management-toolkit/redfish-inventory/pkg/logger"
)

const (
	headerAccept       = "Accept"
	headerODataVersion = "OData-Version"
	contentTypeJSON    = "application/json"
	odataVersion       = "4.0"

	_defaultTimeout = 60 * time.Second
	_maxBodySize    = 16 << 20
	_drainSize      = 64 << 10
)

// Client fetches Redfish resources from one endpoint.
type Client struct {
	http     *http.Client
	base     string
	username string
	password string
	cache    *cache.Cache
	log      logger.Interface
}

// New -.
func New(endpoint redfishv1.Endpoint, log logger.Interface, opts ...Option) *Client {
	c := &Client{
		http: &http.Client{
			Timeout:   _defaultTimeout,
			Transport: http.DefaultTransport,
		},
		base: endpoint.BaseURL(),
		log:  log,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Fetch performs one GET of path. Relative paths are resolved against the
// endpoint. A non-200 answer is returned as a document carrying that status.
func (c *Client) Fetch(ctx context.Context, service redfishv1.ServiceName, path redfishv1.ResourcePath) (*document.Document, error) {
	url := c.resolve(path.String())
	key := c.cacheKey(service, url)

	if c.cache != nil {
		if doc, ok := c.cache.Get(key); ok {
			cacheHits.WithLabelValues(string(service)).Inc()

			return doc, nil
		}
	}

	start := time.Now()

	fetchInFlight.Inc()
	defer fetchInFlight.Dec()

	doc, err := c.get(ctx, path.String(), url)

	fetchDuration.WithLabelValues(string(service)).Observe(time.Since(start).Seconds())

	if err != nil {
		fetchTotal.WithLabelValues(string(service), "error").Inc()
		c.log.Debug("fetch failed", "service", string(service), "url", url, "error", err)

		return nil, err
	}

	fetchTotal.WithLabelValues(string(service), strconv.Itoa(doc.StatusCode)).Inc()
	c.log.Debug("fetched", "service", string(service), "url", url, "status", doc.StatusCode)

	if c.cache != nil {
		ttl := time.Duration(0)
		if service == redfishv1.ServiceRedfishService {
			ttl = c.cache.GetRootTTL()
		}

		c.cache.Set(key, doc, ttl)
	}

	return doc, nil
}

func (c *Client) get(ctx context.Context, path, url string) (*document.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}

	req.Header.Set(headerAccept, contentTypeJSON)
	req.Header.Set(headerODataVersion, odataVersion)

	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, _drainSize))

		return document.Parse(path, resp.StatusCode, nil)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, _maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("GET %s: read body: %w", url, err)
	}

	doc, err := document.Parse(path, resp.StatusCode, body)
	if err != nil {
		return nil, &redfishv1.ParseError{Path: path, Element: "resource body", Err: err}
	}

	return doc, nil
}

func (c *Client) resolve(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return c.base + path
}

func (c *Client) cacheKey(service redfishv1.ServiceName, url string) string {
	if service == redfishv1.ServiceRedfishService {
		return cache.MakeRootKey(url)
	}

	return cache.MakeDocumentKey(url)
}

func insecureTransport() http.RoundTripper {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.TLSClientConfig = &tls.Config{
		InsecureSkipVerify: true, //nolint:gosec // BMCs commonly present self-signed certificates
		MinVersion:         tls.VersionTLS12,
	}

	return t
}
