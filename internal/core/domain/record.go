package domain

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// Patterns maps a field name to the compiled expression that extracts it
// from raw WHOIS text. Pattern tables are built once at startup by the
// registries package and shared read-only between all records, so they
// need no synchronisation.
type Patterns map[string]*regexp.Regexp

// Record is a WHOIS response bound to the pattern table of the registry
// that produced it. Field values are extracted lazily on first access and
// memoized, so repeated reads of the same field return the identical
// sequence without rescanning the text.
//
// The raw text is immutable; the only mutable state is the field cache,
// which is guarded by a mutex so a Record is safe for concurrent use.
type Record struct {
	domain   string
	text     string
	patterns Patterns

	mu    sync.Mutex
	cache map[string][]string
}

// NewRecord creates a record for domain bound to the given pattern table.
// The table is shared, not copied; callers must treat it as read-only.
func NewRecord(domain, text string, patterns Patterns) *Record {
	return &Record{
		domain:   domain,
		text:     text,
		patterns: patterns,
		cache:    make(map[string][]string),
	}
}

// Domain returns the domain name this record was parsed for.
func (r *Record) Domain() string {
	return r.domain
}

// Text returns the raw WHOIS response text.
func (r *Record) Text() string {
	return r.text
}

// Get returns every match of the named field's pattern, in document order.
// Single-valued fields are a sequence with at most one element by
// convention, not enforcement. A pattern that matches nothing yields an
// empty, non-nil sequence; that is expected WHOIS sparseness, not an error.
// Asking for a field the bound table does not define returns an
// UnknownFieldError.
func (r *Record) Get(field string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if values, ok := r.cache[field]; ok {
		return values, nil
	}

	pattern, ok := r.patterns[field]
	if !ok {
		return nil, &UnknownFieldError{Field: field}
	}

	matches := pattern.FindAllStringSubmatch(r.text, -1)
	values := make([]string, 0, len(matches))
	for _, m := range matches {
		// Patterns with a capture group extract the group; bare
		// patterns (e.g. email scans) extract the whole match.
		if len(m) > 1 {
			values = append(values, m[1])
		} else {
			values = append(values, m[0])
		}
	}

	r.cache[field] = values
	return values, nil
}

// Fields returns the sorted names of every field the bound pattern table
// defines, whether or not they have been extracted yet.
func (r *Record) Fields() []string {
	fields := make([]string, 0, len(r.patterns))
	for name := range r.patterns {
		fields = append(fields, name)
	}
	sort.Strings(fields)
	return fields
}

// String renders one "field: [values]" line per known field, sorted by
// field name.
func (r *Record) String() string {
	var b strings.Builder
	for i, field := range r.Fields() {
		values, err := r.Get(field)
		if err != nil {
			continue // unreachable: Fields only yields known names
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s: %v", field, values)
	}
	return b.String()
}
