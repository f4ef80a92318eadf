package domain

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainNotFoundError(t *testing.T) {
	err := &DomainNotFoundError{Response: "No match for \"EXAMPLE.COM\"\n>>> more detail"}

	assert.ErrorIs(t, err, ErrDomainNotFound)
	assert.True(t, IsDomainNotFound(err))
	assert.False(t, IsUnknownField(err))

	// Only the first line of the response appears in the message; the
	// full text stays on the error for callers who want it.
	assert.Contains(t, err.Error(), `No match for \"EXAMPLE.COM\"`)
	assert.NotContains(t, err.Error(), "more detail")
}

func TestDomainNotFoundError_TruncatesLongResponses(t *testing.T) {
	err := &DomainNotFoundError{Response: strings.Repeat("x", 200)}
	assert.Less(t, len(err.Error()), 120)
	assert.Contains(t, err.Error(), "...")
}

func TestUnknownFieldError(t *testing.T) {
	err := &UnknownFieldError{Field: "registrarr"}

	assert.ErrorIs(t, err, ErrUnknownField)
	assert.True(t, IsUnknownField(err))
	assert.False(t, IsDomainNotFound(err))
	assert.Equal(t, `whois: unknown field "registrarr"`, err.Error())
}

func TestErrorHelpers_WrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("lookup failed: %w", &DomainNotFoundError{Response: "NOT FOUND"})
	require.True(t, IsDomainNotFound(wrapped))

	wrapped = fmt.Errorf("get failed: %w", &UnknownFieldError{Field: "x"})
	require.True(t, IsUnknownField(wrapped))

	assert.False(t, IsDomainNotFound(nil))
	assert.False(t, IsUnknownField(nil))
}
