// Package registries holds the per-TLD extraction data and the dispatch
// that selects it.
//
// Every supported registry is a Registry value: a pattern table mapping
// field names to expressions, plus an optional not-found rule recognising
// that registry's "no such registration" response. Registries are
// registered in a suffix table consulted by Load at parse time.
//
// All data here is built once at package init and is read-only afterwards.
package registries
