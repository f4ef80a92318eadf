package registries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundRule_ExactMatch(t *testing.T) {
	rule := ExactMatch("No match")

	assert.True(t, rule.Evaluate("No match"))
	assert.True(t, rule.Evaluate("  No match \r\n"))
	assert.False(t, rule.Evaluate("No match for \"EXAMPLE.COM\""))
	assert.False(t, rule.Evaluate("no match"))
	assert.False(t, rule.Evaluate(""))
}

func TestNotFoundRule_Contains(t *testing.T) {
	rule := Contains("Not found:")

	assert.True(t, rule.Evaluate("Not found: example.us"))
	assert.True(t, rule.Evaluate("preamble\nNot found: example.us\ntrailer"))
	assert.False(t, rule.Evaluate("not found: example.us"))
	assert.False(t, rule.Evaluate(""))
}

func TestNotFoundRule_NilAlwaysFound(t *testing.T) {
	var rule *NotFoundRule
	assert.False(t, rule.Evaluate("NOT FOUND"))
	assert.False(t, rule.Evaluate(""))
}

func TestNew_CompilesPatterns(t *testing.T) {
	registry := New(".test", map[string]string{
		"domain_name": `Domain Name:\s?(.+)`,
		"status":      `Status:\s?(.+)`,
	}, nil)

	assert.Equal(t, ".test", registry.Name())
	assert.Equal(t, []string{"domain_name", "status"}, registry.Fields())

	pattern, ok := registry.Pattern("domain_name")
	require.True(t, ok)
	assert.Equal(t, []string{"Domain Name: X", "X"}, pattern.FindStringSubmatch("Domain Name: X"))

	_, ok = registry.Pattern("missing")
	assert.False(t, ok)
}

func TestNew_PanicsOnInvalidPattern(t *testing.T) {
	assert.Panics(t, func() {
		New(".bad", map[string]string{"broken": `(`}, nil)
	})
}

func TestDefault_GenericFieldSet(t *testing.T) {
	assert.Equal(t, []string{
		"creation_date",
		"domain_name",
		"emails",
		"expiration_date",
		"name_servers",
		"referral_url",
		"registrar",
		"status",
		"updated_date",
		"whois_server",
	}, Default.Fields())

	// The default registry never declares a domain missing.
	assert.Nil(t, Default.notFound)
}

// Aliased suffixes share one registry value rather than duplicating the
// table.
func TestSharedRegistries(t *testing.T) {
	assert.Same(t, org, info)
	assert.Same(t, biz, co)
	assert.Same(t, ru, su)
}
