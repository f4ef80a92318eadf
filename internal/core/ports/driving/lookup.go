package driving

import (
	"context"

	"github.com/custodia-labs/whois-cli/internal/core/domain"
)

// LookupService is the entry point the CLI drives: fetch (or reuse) the
// raw WHOIS text for a domain and parse it into a Record.
type LookupService interface {
	// Lookup fetches the raw response for domain, consulting the response
	// cache first, and parses it.
	Lookup(ctx context.Context, domain string) (*domain.Record, error)

	// Parse parses already-fetched raw text for domain without touching
	// the network or the cache.
	Parse(domain, raw string) (*domain.Record, error)
}
