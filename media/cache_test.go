package media

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dugodofficials-cpu/customer-app-sub000/api"
)

// fakeFetcher counts backend fetches and hands out numbered URLs.
type fakeFetcher struct {
	calls     int
	expiresIn int
	err       error
}

func (f *fakeFetcher) DownloadURL(_ context.Context, productID string) (*api.DownloadGrant, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.calls++
	return &api.DownloadGrant{
		URL:       "https://media/" + productID + "/v" + string(rune('0'+f.calls)),
		ExpiresIn: f.expiresIn,
	}, nil
}

func TestCacheHitSkipsBackend(t *testing.T) {
	store := NewMemoryStore()
	fetcher := &fakeFetcher{expiresIn: 300}
	r := NewResolver(store, fetcher)
	ctx := context.Background()

	first, err := r.PlaybackURL(ctx, "album-1")
	require.NoError(t, err)
	second, err := r.PlaybackURL(ctx, "album-1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, fetcher.calls)
}

func TestExpiredEntryIsRefetchedAndRemoved(t *testing.T) {
	store := NewMemoryStore()
	fetcher := &fakeFetcher{expiresIn: 300}
	r := NewResolver(store, fetcher)
	ctx := context.Background()

	stale := Entry{URL: "https://media/album-1/stale", ExpiresAt: time.Now().Add(-time.Minute)}
	require.NoError(t, store.Set(ctx, "album-1", stale))

	url, err := r.PlaybackURL(ctx, "album-1")
	require.NoError(t, err)
	assert.NotEqual(t, stale.URL, url)
	assert.Equal(t, 1, fetcher.calls)

	// The stale entry was replaced with the fresh grant.
	entry, err := store.Get(ctx, "album-1")
	require.NoError(t, err)
	assert.Equal(t, url, entry.URL)
	assert.True(t, entry.ExpiresAt.After(time.Now()))
}

func TestExpiredEntryIsDeletedEvenIfFetchFails(t *testing.T) {
	store := NewMemoryStore()
	fetcher := &fakeFetcher{err: assert.AnError}
	r := NewResolver(store, fetcher)
	ctx := context.Background()

	stale := Entry{URL: "https://media/album-1/stale", ExpiresAt: time.Now().Add(-time.Minute)}
	require.NoError(t, store.Set(ctx, "album-1", stale))

	_, err := r.PlaybackURL(ctx, "album-1")
	require.Error(t, err)

	// Expired entry treated as absent: removed on read.
	_, err = store.Get(ctx, "album-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMissingEntryFetchesAndWritesBack(t *testing.T) {
	store := NewMemoryStore()
	fetcher := &fakeFetcher{expiresIn: 120}
	r := NewResolver(store, fetcher)
	ctx := context.Background()

	url, err := r.PlaybackURL(ctx, "single-1")
	require.NoError(t, err)

	entry, err := store.Get(ctx, "single-1")
	require.NoError(t, err)
	assert.Equal(t, url, entry.URL)
}

func TestMemoryStoreLastWriteWins(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	a := Entry{URL: "https://media/x/a", ExpiresAt: time.Now().Add(time.Minute)}
	b := Entry{URL: "https://media/x/b", ExpiresAt: time.Now().Add(time.Minute)}
	require.NoError(t, store.Set(ctx, "x", a))
	require.NoError(t, store.Set(ctx, "x", b))

	entry, err := store.Get(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, b.URL, entry.URL)
}
