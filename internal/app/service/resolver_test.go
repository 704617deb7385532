package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ddegtyarev/linkpulse/internal/storage"
)

func seedLink(t *testing.T, store *storage.MemoryStorage, link storage.LinkRecord) *storage.LinkRecord {
	t.Helper()
	created, err := store.CreateLink(context.Background(), link)
	require.NoError(t, err)
	return created
}

func TestResolve_Found(t *testing.T) {
	store, _ := storage.CreateMemoryStorage()
	resolver := NewLinkResolver(store, nil, zap.NewNop())

	seedLink(t, store, storage.LinkRecord{
		Code:        "abc123",
		OriginalURL: "https://example.com",
		IsActive:    true,
	})

	link, err := resolver.Resolve(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", link.OriginalURL)
}

func TestResolve_UnknownCode(t *testing.T) {
	store, _ := storage.CreateMemoryStorage()
	resolver := NewLinkResolver(store, nil, zap.NewNop())

	_, err := resolver.Resolve(context.Background(), "nosuch")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestResolve_InactiveIndistinguishableFromUnknown(t *testing.T) {
	store, _ := storage.CreateMemoryStorage()
	resolver := NewLinkResolver(store, nil, zap.NewNop())

	seedLink(t, store, storage.LinkRecord{
		Code:        "off123",
		OriginalURL: "https://example.com",
		IsActive:    false,
	})

	_, errInactive := resolver.Resolve(context.Background(), "off123")
	_, errUnknown := resolver.Resolve(context.Background(), "nosuch")

	assert.ErrorIs(t, errInactive, storage.ErrNotFound)
	assert.Equal(t, errUnknown, errInactive)
}

func TestResolve_Expired(t *testing.T) {
	store, _ := storage.CreateMemoryStorage()
	resolver := NewLinkResolver(store, nil, zap.NewNop())

	past := time.Now().Add(-time.Second)
	seedLink(t, store, storage.LinkRecord{
		Code:        "old123",
		OriginalURL: "https://example.com",
		IsActive:    true,
		ExpiresAt:   &past,
	})

	_, err := resolver.Resolve(context.Background(), "old123")
	assert.ErrorIs(t, err, ErrExpired)
	assert.False(t, errors.Is(err, storage.ErrNotFound))
}

func TestResolve_FutureExpiry(t *testing.T) {
	store, _ := storage.CreateMemoryStorage()
	resolver := NewLinkResolver(store, nil, zap.NewNop())

	future := time.Now().Add(time.Hour)
	seedLink(t, store, storage.LinkRecord{
		Code:        "new123",
		OriginalURL: "https://example.com",
		IsActive:    true,
		ExpiresAt:   &future,
	})

	link, err := resolver.Resolve(context.Background(), "new123")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", link.OriginalURL)
}

// fakeCache remembers sets and serves hits so cache interaction is
// observable without redis.
type fakeCache struct {
	links   map[string]*storage.LinkRecord
	deleted []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{links: make(map[string]*storage.LinkRecord)}
}

func (f *fakeCache) GetLink(_ context.Context, code string) (*storage.LinkRecord, error) {
	return f.links[code], nil
}

func (f *fakeCache) SetLink(_ context.Context, link *storage.LinkRecord, _ time.Duration) error {
	f.links[link.Code] = link
	return nil
}

func (f *fakeCache) Delete(_ context.Context, code string) error {
	f.deleted = append(f.deleted, code)
	delete(f.links, code)
	return nil
}

func TestResolve_PopulatesCache(t *testing.T) {
	store, _ := storage.CreateMemoryStorage()
	cache := newFakeCache()
	resolver := NewLinkResolver(store, cache, zap.NewNop())

	seedLink(t, store, storage.LinkRecord{
		Code:        "abc123",
		OriginalURL: "https://example.com",
		IsActive:    true,
	})

	_, err := resolver.Resolve(context.Background(), "abc123")
	require.NoError(t, err)
	require.Contains(t, cache.links, "abc123")

	// Second resolve is served from cache even after the store forgets
	// the link.
	id := cache.links["abc123"].ID
	_, err = store.DeleteLink(context.Background(), id, "")
	require.NoError(t, err)

	link, err := resolver.Resolve(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", link.OriginalURL)
}

func TestResolve_CacheHitStillChecksExpiry(t *testing.T) {
	store, _ := storage.CreateMemoryStorage()
	cache := newFakeCache()
	resolver := NewLinkResolver(store, cache, zap.NewNop())

	past := time.Now().Add(-time.Minute)
	cache.links["old123"] = &storage.LinkRecord{
		Code:        "old123",
		OriginalURL: "https://example.com",
		IsActive:    true,
		ExpiresAt:   &past,
	}

	_, err := resolver.Resolve(context.Background(), "old123")
	assert.ErrorIs(t, err, ErrExpired)
}

func TestInvalidate(t *testing.T) {
	store, _ := storage.CreateMemoryStorage()
	cache := newFakeCache()
	resolver := NewLinkResolver(store, cache, zap.NewNop())

	cache.links["abc123"] = &storage.LinkRecord{Code: "abc123"}

	resolver.Invalidate(context.Background(), "abc123")
	assert.NotContains(t, cache.links, "abc123")
	assert.Equal(t, []string{"abc123"}, cache.deleted)

	// Empty codes are ignored.
	resolver.Invalidate(context.Background(), "")
	assert.Len(t, cache.deleted, 1)
}
