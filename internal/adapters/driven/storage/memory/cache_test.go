package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/whois-cli/internal/core/ports/driven"
)

func TestResponseCache_Roundtrip(t *testing.T) {
	cache := NewResponseCache()
	ctx := context.Background()

	stored := &driven.CachedResponse{
		Domain:    "example.com",
		Server:    "whois.verisign-grs.com",
		Raw:       "Domain Name: EXAMPLE.COM\n",
		FetchedAt: time.Now(),
	}
	require.NoError(t, cache.Put(ctx, stored))

	got, ok, err := cache.Get(ctx, "example.com")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, *stored, *got)
}

func TestResponseCache_Missing(t *testing.T) {
	cache := NewResponseCache()

	got, ok, err := cache.Get(context.Background(), "example.com")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestResponseCache_PutReplaces(t *testing.T) {
	cache := NewResponseCache()
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, &driven.CachedResponse{Domain: "example.com", Raw: "first"}))
	require.NoError(t, cache.Put(ctx, &driven.CachedResponse{Domain: "example.com", Raw: "second"}))

	got, ok, err := cache.Get(ctx, "example.com")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "second", got.Raw)
}

func TestResponseCache_Delete(t *testing.T) {
	cache := NewResponseCache()
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, &driven.CachedResponse{Domain: "example.com", Raw: "body"}))
	require.NoError(t, cache.Delete(ctx, "example.com"))

	_, ok, err := cache.Get(ctx, "example.com")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent entry is not an error.
	assert.NoError(t, cache.Delete(ctx, "example.com"))
}

func TestResponseCache_GetReturnsCopy(t *testing.T) {
	cache := NewResponseCache()
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, &driven.CachedResponse{Domain: "example.com", Raw: "original"}))

	got, _, err := cache.Get(ctx, "example.com")
	require.NoError(t, err)
	got.Raw = "mutated"

	again, _, err := cache.Get(ctx, "example.com")
	require.NoError(t, err)
	assert.Equal(t, "original", again.Raw)
}

func TestResponseCache_ConcurrentAccess(t *testing.T) {
	cache := NewResponseCache()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = cache.Put(ctx, &driven.CachedResponse{Domain: "example.com", Raw: "body"})
				_, _, _ = cache.Get(ctx, "example.com")
			}
		}()
	}
	wg.Wait()

	_, ok, err := cache.Get(ctx, "example.com")
	require.NoError(t, err)
	assert.True(t, ok)
}
