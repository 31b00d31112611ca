// Package media caches signed playback URLs keyed by product id. Entries
// are soft: expired or missing ones trigger a fresh backend fetch whose
// result is written back. There is no size bound and no eviction beyond
// expiry-on-read.
package media

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dugodofficials-cpu/customer-app-sub000/api"
)

var ErrNotFound = errors.New("media url not cached")

// Entry is one cached signed URL with its expiry.
type Entry struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Store is the persistence behind the cache. Concurrent writes for the same
// key are last-write-wins; acceptable because the payload is idempotent
// within the expiry window.
type Store interface {
	Get(ctx context.Context, productID string) (Entry, error)
	Set(ctx context.Context, productID string, e Entry) error
	Delete(ctx context.Context, productID string) error
}

// MemoryStore is the in-process Store used when no redis address is
// configured.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]Entry)}
}

func (s *MemoryStore) Get(_ context.Context, productID string) (Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[productID]
	if !ok {
		return Entry{}, ErrNotFound
	}
	return e, nil
}

func (s *MemoryStore) Set(_ context.Context, productID string, e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[productID] = e
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, productID)
	return nil
}

// grantFetcher is the slice of the api client the resolver needs.
type grantFetcher interface {
	DownloadURL(ctx context.Context, productID string) (*api.DownloadGrant, error)
}

// Resolver answers "give me a playable URL for this product": cache first,
// backend on miss or expiry, write-back after fetch. URLs are never
// synthesized locally.
type Resolver struct {
	store Store
	api   grantFetcher
	now   func() time.Time
}

func NewResolver(store Store, client grantFetcher) *Resolver {
	return &Resolver{store: store, api: client, now: time.Now}
}

// PlaybackURL resolves the signed URL for a product. An entry whose
// ExpiresAt has passed is treated as absent and removed on read.
func (r *Resolver) PlaybackURL(ctx context.Context, productID string) (string, error) {
	entry, err := r.store.Get(ctx, productID)
	if err == nil {
		if entry.ExpiresAt.After(r.now()) {
			return entry.URL, nil
		}
		_ = r.store.Delete(ctx, productID)
	}

	grant, err := r.api.DownloadURL(ctx, productID)
	if err != nil {
		return "", err
	}

	fresh := Entry{
		URL:       grant.URL,
		ExpiresAt: r.now().Add(time.Duration(grant.ExpiresIn) * time.Second),
	}
	if err := r.store.Set(ctx, productID, fresh); err != nil {
		return "", err
	}
	return fresh.URL, nil
}
