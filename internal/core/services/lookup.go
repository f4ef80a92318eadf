package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/custodia-labs/whois-cli/internal/core/domain"
	"github.com/custodia-labs/whois-cli/internal/core/ports/driven"
	"github.com/custodia-labs/whois-cli/internal/core/ports/driving"
	"github.com/custodia-labs/whois-cli/internal/logger"
	"github.com/custodia-labs/whois-cli/internal/registries"
)

// Ensure LookupService implements the interface.
var _ driving.LookupService = (*LookupService)(nil)

// DefaultCacheTTL is how long a cached raw response stays usable.
// Registration data changes slowly; a day keeps repeat queries off the
// registry servers without going noticeably stale.
const DefaultCacheTTL = 24 * time.Hour

// LookupService fetches and parses WHOIS responses. The cache is
// optional: with a nil cache every lookup goes to the network.
type LookupService struct {
	client   driven.WhoisClient
	cache    driven.ResponseCache
	cacheTTL time.Duration
}

// NewLookupService creates a lookup service. cache may be nil. A
// non-positive ttl falls back to DefaultCacheTTL.
func NewLookupService(client driven.WhoisClient, cache driven.ResponseCache, ttl time.Duration) *LookupService {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &LookupService{
		client:   client,
		cache:    cache,
		cacheTTL: ttl,
	}
}

// Lookup resolves the raw response for domain (cache first, then the
// wire) and parses it into a Record.
func (s *LookupService) Lookup(ctx context.Context, domainName string) (*domain.Record, error) {
	domainName = strings.ToLower(strings.TrimSpace(domainName))
	if domainName == "" {
		return nil, errors.New("domain cannot be empty")
	}

	raw, ok := s.cached(ctx, domainName)
	if !ok {
		if s.client == nil {
			return nil, errors.New("whois client not configured")
		}

		var server string
		var err error
		raw, server, err = s.client.Lookup(ctx, domainName)
		if err != nil {
			return nil, err
		}
		logger.Debug("fetched %s from %s (%d bytes)", domainName, server, len(raw))

		s.store(ctx, domainName, server, raw)
	}

	return s.Parse(domainName, raw)
}

// Parse parses already-fetched raw text without network or cache access.
func (s *LookupService) Parse(domainName, raw string) (*domain.Record, error) {
	logger.Debug("dispatching %s to the %s registry", domainName, registries.ForDomain(domainName).Name())
	return registries.Load(domainName, raw)
}

// cached returns a fresh cached response, if there is one.
func (s *LookupService) cached(ctx context.Context, domainName string) (string, bool) {
	if s.cache == nil {
		return "", false
	}

	resp, ok, err := s.cache.Get(ctx, domainName)
	if err != nil {
		logger.Warn("response cache read failed for %s: %v", domainName, err)
		return "", false
	}
	if !ok {
		return "", false
	}
	if age := time.Since(resp.FetchedAt); age > s.cacheTTL {
		logger.Debug("cached response for %s is stale (%s old)", domainName, age.Round(time.Second))
		return "", false
	}

	logger.Debug("cache hit for %s (fetched %s)", domainName, resp.FetchedAt.Format(time.RFC3339))
	return resp.Raw, true
}

// store writes a fetched response to the cache. Cache failures are
// logged, not surfaced: the lookup already succeeded.
func (s *LookupService) store(ctx context.Context, domainName, server, raw string) {
	if s.cache == nil {
		return
	}

	err := s.cache.Put(ctx, &driven.CachedResponse{
		Domain:    domainName,
		Server:    server,
		Raw:       raw,
		FetchedAt: time.Now(),
	})
	if err != nil {
		logger.Warn("response cache write failed for %s: %v", domainName, err)
	}
}
