package registries

import (
	"strings"

	"github.com/custodia-labs/whois-cli/internal/core/domain"
)

// globalSentinels are registry-independent "no data" responses, matched
// by trimmed equality before any registry-specific rule runs.
var globalSentinels = []string{
	"No whois server is known for this kind of object.",
}

// suffixTable maps a domain suffix to its registry. Matching is by
// trailing characters, checked exhaustively before falling back to
// Default; no supported suffix is a trailing substring of another, so
// order among entries is not observable. Aliased entries (.co, .info,
// .su) reference the registry they share.
var suffixTable = []struct {
	suffix   string
	registry *Registry
}{
	{".com", com},
	{".net", net},
	{".org", org},
	{".au", au},
	{".biz", biz},
	{".ca", ca},
	{".cn", cn},
	{".co", co},
	{".cz", cz},
	{".de", de},
	{".dk", dk},
	{".fi", fi},
	{".fm", fm},
	{".fr", fr},
	{".il", il},
	{".info", info},
	{".jp", jp},
	{".kr", kr},
	{".me", me},
	{".name", nameTLD},
	{".no", no},
	{".nu", nu},
	{".pl", pl},
	{".tk", tk},
	{".tw", tw},
	{".ru", ru},
	{".sk", sk},
	{".su", su},
	{".ua", ua},
	{".uk", uk},
	{".us", us},
}

// ForDomain selects the registry for the domain's suffix, falling back to
// Default when no dedicated entry matches.
func ForDomain(domainName string) *Registry {
	for _, entry := range suffixTable {
		if strings.HasSuffix(domainName, entry.suffix) {
			return entry.registry
		}
	}
	return Default
}

// Suffixes returns every suffix with a dedicated registry, in table order.
func Suffixes() []string {
	suffixes := make([]string, len(suffixTable))
	for i, entry := range suffixTable {
		suffixes[i] = entry.suffix
	}
	return suffixes
}

// Load parses a raw WHOIS response for domainName into a Record bound to
// the registry selected by the domain's suffix.
//
// A DomainNotFoundError is returned when the trimmed response equals a
// global sentinel, or when the selected registry's own not-found rule
// triggers; the error carries the response verbatim. Load is pure and
// synchronous: no retries, no I/O.
func Load(domainName, text string) (*domain.Record, error) {
	trimmed := strings.TrimSpace(text)
	for _, sentinel := range globalSentinels {
		if trimmed == sentinel {
			return nil, &domain.DomainNotFoundError{Response: text}
		}
	}

	registry := ForDomain(domainName)
	if registry.notFound.Evaluate(text) {
		return nil, &domain.DomainNotFoundError{Response: text}
	}

	return domain.NewRecord(domainName, text, registry.patterns), nil
}
