// Package cache is a sqlite-backed lyrics cache with TTL expiry. Entries
// are keyed by song ID; expired rows are treated as misses and deleted on
// read.
package cache

import (
	"database/sql"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type LyricsCache struct {
	db  *sql.DB
	ttl time.Duration
	mu  sync.RWMutex
	log *slog.Logger
}

// Entry is one cached lyrics record.
type Entry struct {
	SongID     int
	SongTitle  string
	ArtistName string
	Lyrics     string
	FetchedAt  time.Time
}

func New(dbPath string, ttlHours int) (*LyricsCache, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal=WAL&_timeout=5000")
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS lyrics (
			song_id     INTEGER PRIMARY KEY,
			song_title  TEXT NOT NULL,
			artist_name TEXT NOT NULL,
			lyrics      TEXT NOT NULL,
			fetched_at  INTEGER NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, err
	}

	log := slog.With("component", "cache")
	log.Debug("sqlite cache opened", "path", dbPath, "ttl_hours", ttlHours)

	return &LyricsCache{
		db:  db,
		ttl: time.Duration(ttlHours) * time.Hour,
		log: log,
	}, nil
}

// Get returns the cached entry for a song, or false on a miss. Expired
// entries count as misses and are removed.
func (c *LyricsCache) Get(songID int) (*Entry, bool) {
	c.mu.RLock()
	var e Entry
	var fetchedAt int64
	err := c.db.QueryRow(
		"SELECT song_id, song_title, artist_name, lyrics, fetched_at FROM lyrics WHERE song_id = ?",
		songID,
	).Scan(&e.SongID, &e.SongTitle, &e.ArtistName, &e.Lyrics, &fetchedAt)
	c.mu.RUnlock()

	if err != nil {
		return nil, false
	}

	e.FetchedAt = time.Unix(fetchedAt, 0).UTC()
	if time.Since(e.FetchedAt) > c.ttl {
		c.log.Debug("cache entry expired", "song_id", songID)
		c.mu.Lock()
		c.db.Exec("DELETE FROM lyrics WHERE song_id = ?", songID)
		c.mu.Unlock()
		return nil, false
	}
	return &e, true
}

// Set stores or replaces an entry. FetchedAt defaults to now when zero.
func (c *LyricsCache) Set(e Entry) {
	fetchedAt := e.FetchedAt
	if fetchedAt.IsZero() {
		fetchedAt = time.Now().UTC()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.db.Exec(
		`INSERT OR REPLACE INTO lyrics (song_id, song_title, artist_name, lyrics, fetched_at)
		 VALUES (?, ?, ?, ?, ?)`,
		e.SongID, e.SongTitle, e.ArtistName, e.Lyrics, fetchedAt.Unix(),
	)
	if err != nil {
		c.log.Warn("cache write failed", "song_id", e.SongID, "error", err)
	}
}

// Stats returns the entry count, how many of those are expired, and the
// total size of the stored lyric text in bytes.
func (c *LyricsCache) Stats() (total, expired, bytes int) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cutoff := time.Now().UTC().Add(-c.ttl).Unix()
	c.db.QueryRow("SELECT COUNT(*) FROM lyrics").Scan(&total)
	c.db.QueryRow("SELECT COUNT(*) FROM lyrics WHERE fetched_at < ?", cutoff).Scan(&expired)
	c.db.QueryRow("SELECT COALESCE(SUM(LENGTH(lyrics)), 0) FROM lyrics").Scan(&bytes)
	return total, expired, bytes
}

// Clear removes every entry and returns how many were removed.
func (c *LyricsCache) Clear() (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	res, err := c.db.Exec("DELETE FROM lyrics")
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	c.log.Info("cache cleared", "removed", n)
	return int(n), nil
}

// ClearExpired removes only entries older than the TTL.
func (c *LyricsCache) ClearExpired() (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cutoff := time.Now().UTC().Add(-c.ttl).Unix()
	res, err := c.db.Exec("DELETE FROM lyrics WHERE fetched_at < ?", cutoff)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	c.log.Info("expired cache entries cleared", "removed", n)
	return int(n), nil
}

func (c *LyricsCache) Close() error {
	return c.db.Close()
}
