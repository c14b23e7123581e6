// Package facades contains HTTP clients for the two external catalog
// providers. Each client maps provider-native JSON into the shared
// normalized search result shape; nothing outside this package depends on
// provider response formats.
package facades

import (
	"errors"
	"net/http"
	"time"
)

// ErrUpstreamUnavailable wraps any provider transport or decode failure.
// The catalog aggregator treats it as non-fatal and drops the provider's
// results for that search.
var ErrUpstreamUnavailable = errors.New("upstream provider unavailable")

const defaultTimeout = 5 * time.Second

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: defaultTimeout}
}
