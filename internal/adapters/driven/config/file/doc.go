// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the local filesystem.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage
//
// Keys the CLI reads (dot notation maps to TOML tables):
//
//	cache.ttl_hours             response cache freshness window
//	query.timeout_seconds       per-query network timeout
//	query.requests_per_second   sustained query rate
//	query.burst                 query burst size
//	servers.<tld>               WHOIS server override for one TLD
package file
