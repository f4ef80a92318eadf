package driven

import (
	"context"
	"time"
)

// CachedResponse is a raw WHOIS response retained from an earlier lookup.
type CachedResponse struct {
	Domain    string
	Server    string
	Raw       string
	FetchedAt time.Time
}

// ResponseCache persists raw WHOIS responses between invocations so that
// repeated lookups of the same domain do not hammer registry servers.
// Keys are domain names; staleness policy belongs to the caller.
type ResponseCache interface {
	// Get returns the cached response for domain, or false when absent.
	Get(ctx context.Context, domain string) (*CachedResponse, bool, error)

	// Put stores or replaces the cached response for resp.Domain.
	Put(ctx context.Context, resp *CachedResponse) error

	// Delete removes the cached response for domain, if any.
	Delete(ctx context.Context, domain string) error

	// Close releases any underlying resources.
	Close() error
}
