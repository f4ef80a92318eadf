package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))
}

func TestNewConfigStore_EmptyDirectory(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())

	_, ok := store.Get("cache.ttl_hours")
	assert.False(t, ok)
}

func TestNewConfigStore_LoadsExistingFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[cache]
ttl_hours = 48

[query]
timeout_seconds = 30
requests_per_second = 0.5
burst = 2

[servers]
com = "whois.example.test"
`)

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, 48, store.GetInt("cache.ttl_hours"))
	assert.Equal(t, 30, store.GetInt("query.timeout_seconds"))
	assert.Equal(t, "whois.example.test", store.GetString("servers.com"))

	rps, ok := store.Get("query.requests_per_second")
	require.True(t, ok)
	assert.Equal(t, 0.5, rps)
}

func TestConfigStore_FlattensNestedTables(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[servers]
com = "a.test"
cz = "b.test"
`)

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "a.test", store.GetString("servers.com"))
	assert.Equal(t, "b.test", store.GetString("servers.cz"))

	// The intermediate table itself is not a key.
	_, ok := store.Get("servers")
	assert.False(t, ok)
}

func TestConfigStore_SetPersists(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("cache.ttl_hours", 12))

	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, 12, reloaded.GetInt("cache.ttl_hours"))
}

func TestConfigStore_TypedGettersOnWrongTypes(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[cache]
ttl_hours = 48
enabled = true
tags = ["a", "b"]
`)

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "", store.GetString("cache.ttl_hours"))
	assert.Equal(t, 0, store.GetInt("cache.enabled"))
	assert.False(t, store.GetBool("cache.tags"))
	assert.Nil(t, store.GetStringSlice("cache.ttl_hours"))

	assert.True(t, store.GetBool("cache.enabled"))
	assert.Equal(t, []string{"a", "b"}, store.GetStringSlice("cache.tags"))
}

func TestConfigStore_MissingKeysZeroValues(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "", store.GetString("absent"))
	assert.Equal(t, 0, store.GetInt("absent"))
	assert.False(t, store.GetBool("absent"))
	assert.Nil(t, store.GetStringSlice("absent"))
}

func TestConfigStore_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "not = valid = toml")

	_, err := NewConfigStore(dir)
	assert.Error(t, err)
}
