package registries

import (
	"regexp"
	"sort"
	"strings"

	"github.com/custodia-labs/whois-cli/internal/core/domain"
)

// NotFoundRule recognises a registry's "no such registration" response.
// Registries are inconsistent about this: some compare the trimmed
// response to a sentinel, some look for a substring anywhere in it, and
// some perform no check at all (a nil rule, which never triggers). The
// per-registry distinction is deliberate and must not be unified.
type NotFoundRule struct {
	exact    bool
	sentinel string
}

// ExactMatch builds a rule that triggers when the whitespace-trimmed
// response equals sentinel exactly (case-sensitive).
func ExactMatch(sentinel string) *NotFoundRule {
	return &NotFoundRule{exact: true, sentinel: sentinel}
}

// Contains builds a rule that triggers when sentinel occurs anywhere in
// the response.
func Contains(sentinel string) *NotFoundRule {
	return &NotFoundRule{sentinel: sentinel}
}

// Evaluate reports whether the raw response is a not-found answer.
// A nil rule always reports found.
func (r *NotFoundRule) Evaluate(text string) bool {
	if r == nil {
		return false
	}
	if r.exact {
		return strings.TrimSpace(text) == r.sentinel
	}
	return strings.Contains(text, r.sentinel)
}

// Registry is the extraction data for one TLD: a compiled pattern table
// and an optional not-found rule. Pure data; the only behaviour is lookup.
type Registry struct {
	name     string
	patterns domain.Patterns
	notFound *NotFoundRule
}

// New compiles the given field-name-to-expression table into a Registry.
// Invalid expressions panic; registries are package-level data built at
// init, so a bad pattern is a programming error.
func New(name string, patterns map[string]string, notFound *NotFoundRule) *Registry {
	compiled := make(domain.Patterns, len(patterns))
	for field, expr := range patterns {
		compiled[field] = regexp.MustCompile(expr)
	}
	return &Registry{
		name:     name,
		patterns: compiled,
		notFound: notFound,
	}
}

// Name returns the suffix label this registry was registered under.
func (r *Registry) Name() string {
	return r.name
}

// Pattern returns the expression bound to the given field name.
func (r *Registry) Pattern(field string) (*regexp.Regexp, bool) {
	p, ok := r.patterns[field]
	return p, ok
}

// Patterns returns the shared, read-only pattern table.
func (r *Registry) Patterns() domain.Patterns {
	return r.patterns
}

// Fields returns the sorted field names this registry can extract.
func (r *Registry) Fields() []string {
	fields := make([]string, 0, len(r.patterns))
	for field := range r.patterns {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}
