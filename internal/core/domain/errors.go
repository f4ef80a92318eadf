package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrDomainNotFound indicates the registry reported no registration
	// data for the queried domain.
	ErrDomainNotFound = errors.New("whois: domain not found")

	// ErrUnknownField indicates a field name not present in the pattern
	// table a record is bound to. This is a caller error (typo or a
	// wrong-TLD assumption), not missing data.
	ErrUnknownField = errors.New("whois: unknown field")
)

// DomainNotFoundError is returned when a registry's "no match" sentinel is
// present in the raw response. It carries the response verbatim so callers
// can inspect or display the registry's own denial message.
type DomainNotFoundError struct {
	Response string
}

func (e *DomainNotFoundError) Error() string {
	return fmt.Sprintf("whois: domain not found: %q", firstLine(e.Response))
}

func (e *DomainNotFoundError) Unwrap() error {
	return ErrDomainNotFound
}

// UnknownFieldError is returned by Record.Get for a field name the bound
// pattern table does not define.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("whois: unknown field %q", e.Field)
}

func (e *UnknownFieldError) Unwrap() error {
	return ErrUnknownField
}

// IsDomainNotFound checks if the error indicates a registry-declared
// non-registration.
func IsDomainNotFound(err error) bool {
	return errors.Is(err, ErrDomainNotFound)
}

// IsUnknownField checks if the error indicates an unrecognised field name.
func IsUnknownField(err error) bool {
	return errors.Is(err, ErrUnknownField)
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	const max = 80
	if len(s) > max {
		s = s[:max] + "..."
	}
	return s
}
