package genius

import (
	"strings"
	"time"
)

// Artist is a Genius artist record.
type Artist struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	URL        string `json:"url"`
	ImageURL   string `json:"image_url,omitempty"`
	IsVerified bool   `json:"is_verified"`
}

// Song is a Genius song record.
type Song struct {
	ID                int    `json:"id"`
	Title             string `json:"title"`
	TitleWithFeatured string `json:"title_with_featured"`
	Artist            string `json:"artist"`
	ArtistID          int    `json:"artist_id"`
	URL               string `json:"url"`
}

// Lyrics is a song's raw lyrics text with identifying metadata.
type Lyrics struct {
	SongID     int       `json:"song_id"`
	SongTitle  string    `json:"song_title"`
	ArtistName string    `json:"artist_name"`
	Text       string    `json:"text"`
	FetchedAt  time.Time `json:"fetched_at"`
}

// IsEmpty reports whether the lyrics are blank, as with instrumentals.
func (l *Lyrics) IsEmpty() bool {
	return strings.TrimSpace(l.Text) == ""
}

// WordCount is an approximate whitespace-delimited word count.
func (l *Lyrics) WordCount() int {
	return len(strings.Fields(l.Text))
}

// ArtistWithSongs pairs an artist with their fetched song list.
type ArtistWithSongs struct {
	Artist Artist `json:"artist"`
	Songs  []Song `json:"songs"`
}
