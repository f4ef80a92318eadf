package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/whois-cli/internal/core/ports/driven"
)

func newTestCache(t *testing.T) *ResponseCache {
	t.Helper()
	cache, err := NewResponseCache(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })
	return cache
}

func TestNewResponseCache_CreatesDatabase(t *testing.T) {
	dir := t.TempDir()
	cache, err := NewResponseCache(dir)
	require.NoError(t, err)
	defer cache.Close()

	assert.Equal(t, filepath.Join(dir, "responses.db"), cache.Path())
}

func TestResponseCache_Roundtrip(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	fetched := time.Now().Truncate(time.Second)
	err := cache.Put(ctx, &driven.CachedResponse{
		Domain:    "example.com",
		Server:    "whois.verisign-grs.com",
		Raw:       "Domain Name: EXAMPLE.COM\n",
		FetchedAt: fetched,
	})
	require.NoError(t, err)

	got, ok, err := cache.Get(ctx, "example.com")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "example.com", got.Domain)
	assert.Equal(t, "whois.verisign-grs.com", got.Server)
	assert.Equal(t, "Domain Name: EXAMPLE.COM\n", got.Raw)
	// fetched_at is stored at second precision.
	assert.True(t, got.FetchedAt.Equal(fetched))
}

func TestResponseCache_Missing(t *testing.T) {
	cache := newTestCache(t)

	got, ok, err := cache.Get(context.Background(), "example.com")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestResponseCache_PutReplaces(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	first := &driven.CachedResponse{
		Domain:    "example.com",
		Server:    "whois.old",
		Raw:       "first",
		FetchedAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, cache.Put(ctx, first))

	second := &driven.CachedResponse{
		Domain:    "example.com",
		Server:    "whois.new",
		Raw:       "second",
		FetchedAt: time.Now(),
	}
	require.NoError(t, cache.Put(ctx, second))

	got, ok, err := cache.Get(ctx, "example.com")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "second", got.Raw)
	assert.Equal(t, "whois.new", got.Server)
}

func TestResponseCache_Delete(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, &driven.CachedResponse{
		Domain: "example.com", Server: "s", Raw: "body", FetchedAt: time.Now(),
	}))
	require.NoError(t, cache.Delete(ctx, "example.com"))

	_, ok, err := cache.Get(ctx, "example.com")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, cache.Delete(ctx, "example.com"))
}

func TestResponseCache_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	cache, err := NewResponseCache(dir)
	require.NoError(t, err)
	require.NoError(t, cache.Put(ctx, &driven.CachedResponse{
		Domain: "example.com", Server: "s", Raw: "persisted", FetchedAt: time.Now(),
	}))
	require.NoError(t, cache.Close())

	reopened, err := NewResponseCache(dir)
	require.NoError(t, err)
	defer reopened.Close()

	got, ok, err := reopened.Get(ctx, "example.com")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "persisted", got.Raw)
}

func TestResponseCache_DomainsAreIndependent(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, &driven.CachedResponse{
		Domain: "a.com", Server: "s", Raw: "a", FetchedAt: time.Now(),
	}))
	require.NoError(t, cache.Put(ctx, &driven.CachedResponse{
		Domain: "b.com", Server: "s", Raw: "b", FetchedAt: time.Now(),
	}))

	require.NoError(t, cache.Delete(ctx, "a.com"))

	_, ok, err := cache.Get(ctx, "a.com")
	require.NoError(t, err)
	assert.False(t, ok)

	got, ok, err := cache.Get(ctx, "b.com")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "b", got.Raw)
}
