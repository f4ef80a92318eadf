// Package memory provides in-memory implementations of the storage ports.
// Nothing survives process exit; intended for tests and for running with
// caching disabled.
package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/whois-cli/internal/core/ports/driven"
)

// Ensure ResponseCache implements the interface.
var _ driven.ResponseCache = (*ResponseCache)(nil)

// ResponseCache is a map-backed response cache guarded by a RWMutex.
type ResponseCache struct {
	mu        sync.RWMutex
	responses map[string]driven.CachedResponse
}

// NewResponseCache creates an empty in-memory cache.
func NewResponseCache() *ResponseCache {
	return &ResponseCache{
		responses: make(map[string]driven.CachedResponse),
	}
}

// Get returns the cached response for domain, if present.
func (c *ResponseCache) Get(_ context.Context, domain string) (*driven.CachedResponse, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	resp, ok := c.responses[domain]
	if !ok {
		return nil, false, nil
	}
	// Return a copy so callers cannot mutate the stored entry.
	out := resp
	return &out, true, nil
}

// Put stores or replaces the response for resp.Domain.
func (c *ResponseCache) Put(_ context.Context, resp *driven.CachedResponse) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.responses[resp.Domain] = *resp
	return nil
}

// Delete removes the cached response for domain, if any.
func (c *ResponseCache) Delete(_ context.Context, domain string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.responses, domain)
	return nil
}

// Close is a no-op for the in-memory cache.
func (c *ResponseCache) Close() error {
	return nil
}
