// Package domain defines the core business entities for the WHOIS parser.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Record: a parsed WHOIS response with lazy, memoized field extraction
//   - Patterns: the field-name-to-expression table a Record is bound to
//   - CastDate: best-effort conversion of registry date strings
//
// Registry data (per-TLD pattern tables, suffix dispatch) lives in the
// registries package; network transport and persistence live in adapters.
package domain
