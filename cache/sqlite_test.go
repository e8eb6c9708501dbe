package cache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttlHours int) *LyricsCache {
	t.Helper()
	c, err := New(filepath.Join(t.TempDir(), "lyrics.db"), ttlHours)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestCacheRoundTrip(t *testing.T) {
	c := newTestCache(t, 24)

	c.Set(Entry{
		SongID:     42,
		SongTitle:  "Test Song",
		ArtistName: "Tester",
		Lyrics:     "la la la",
	})

	entry, ok := c.Get(42)
	require.True(t, ok)
	assert.Equal(t, 42, entry.SongID)
	assert.Equal(t, "Test Song", entry.SongTitle)
	assert.Equal(t, "Tester", entry.ArtistName)
	assert.Equal(t, "la la la", entry.Lyrics)
	assert.WithinDuration(t, time.Now(), entry.FetchedAt, time.Minute)
}

func TestCacheMiss(t *testing.T) {
	c := newTestCache(t, 24)
	_, ok := c.Get(999)
	assert.False(t, ok)
}

func TestCacheReplace(t *testing.T) {
	c := newTestCache(t, 24)

	c.Set(Entry{SongID: 1, SongTitle: "One", ArtistName: "A", Lyrics: "old"})
	c.Set(Entry{SongID: 1, SongTitle: "One", ArtistName: "A", Lyrics: "new"})

	entry, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, "new", entry.Lyrics)

	total, _, _ := c.Stats()
	assert.Equal(t, 1, total)
}

func TestCacheExpiry(t *testing.T) {
	c := newTestCache(t, 1)

	c.Set(Entry{
		SongID:     7,
		SongTitle:  "Stale",
		ArtistName: "A",
		Lyrics:     "old words",
		FetchedAt:  time.Now().Add(-2 * time.Hour),
	})

	// Expired entries read as misses and are deleted.
	_, ok := c.Get(7)
	assert.False(t, ok)

	total, _, _ := c.Stats()
	assert.Equal(t, 0, total)
}

func TestCacheStats(t *testing.T) {
	c := newTestCache(t, 1)

	c.Set(Entry{SongID: 1, SongTitle: "Fresh", ArtistName: "A", Lyrics: "abcde"})
	c.Set(Entry{SongID: 2, SongTitle: "Stale", ArtistName: "A", Lyrics: "xyz",
		FetchedAt: time.Now().Add(-2 * time.Hour)})

	total, expired, bytes := c.Stats()
	assert.Equal(t, 2, total)
	assert.Equal(t, 1, expired)
	assert.Equal(t, 8, bytes)
}

func TestCacheStatsEmpty(t *testing.T) {
	c := newTestCache(t, 1)
	total, expired, bytes := c.Stats()
	assert.Equal(t, 0, total)
	assert.Equal(t, 0, expired)
	assert.Equal(t, 0, bytes)
}

func TestCacheClear(t *testing.T) {
	c := newTestCache(t, 24)

	c.Set(Entry{SongID: 1, SongTitle: "A", ArtistName: "X", Lyrics: "a"})
	c.Set(Entry{SongID: 2, SongTitle: "B", ArtistName: "X", Lyrics: "b"})

	removed, err := c.Clear()
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	total, _, _ := c.Stats()
	assert.Equal(t, 0, total)
}

func TestCacheClearExpired(t *testing.T) {
	c := newTestCache(t, 1)

	c.Set(Entry{SongID: 1, SongTitle: "Fresh", ArtistName: "X", Lyrics: "a"})
	c.Set(Entry{SongID: 2, SongTitle: "Stale", ArtistName: "X", Lyrics: "b",
		FetchedAt: time.Now().Add(-2 * time.Hour)})

	removed, err := c.ClearExpired()
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, ok := c.Get(1)
	assert.True(t, ok)
}
