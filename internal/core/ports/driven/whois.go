package driven

import "context"

// WhoisClient fetches the raw WHOIS response for a domain. Implementations
// own server selection, timeouts, rate limiting and retries; the core only
// sees the final text.
type WhoisClient interface {
	// Lookup returns the raw response text and the server that answered.
	Lookup(ctx context.Context, domain string) (raw string, server string, err error)
}
