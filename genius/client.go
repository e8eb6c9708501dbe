// Package genius fetches artist, song, and lyrics data from Genius. Song
// metadata comes from the JSON API; lyrics are scraped from the public song
// pages since the API does not serve lyric text.
package genius

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"golang.org/x/net/html"

	"lyriclens/cache"
)

var (
	// ErrMissingToken is returned by New when no access token is supplied.
	ErrMissingToken = errors.New("genius access token is required")

	// ErrArtistNotFound is returned when a search matches no artist.
	ErrArtistNotFound = errors.New("artist not found")

	// ErrNoLyricsFound is returned when a song page has no lyric text.
	ErrNoLyricsFound = errors.New("no lyrics found")
)

const (
	defaultBaseURL    = "https://api.genius.com"
	defaultMaxRetries = 3
	defaultRetryDelay = time.Second
	defaultPerPage    = 20
)

type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
	cache      *cache.LyricsCache
	maxRetries int
	retryDelay time.Duration
	log        *slog.Logger
}

type Option func(*Client)

// WithCache attaches a lyrics cache checked before any page fetch.
func WithCache(c *cache.LyricsCache) Option {
	return func(cl *Client) { cl.cache = c }
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(cl *Client) { cl.httpClient = hc }
}

// WithBaseURL points the client at a different API host. Used by tests.
func WithBaseURL(base string) Option {
	return func(cl *Client) { cl.baseURL = strings.TrimRight(base, "/") }
}

// WithRetries overrides the retry count and base backoff delay.
func WithRetries(attempts int, delay time.Duration) Option {
	return func(cl *Client) {
		cl.maxRetries = attempts
		cl.retryDelay = delay
	}
}

func New(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	c := &Client{
		token:      token,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		maxRetries: defaultMaxRetries,
		retryDelay: defaultRetryDelay,
		log:        slog.With("component", "genius"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type searchResponse struct {
	Response struct {
		Hits []struct {
			Result struct {
				ID                int    `json:"id"`
				Title             string `json:"title"`
				TitleWithFeatured string `json:"title_with_featured"`
				URL               string `json:"url"`
				PrimaryArtist     struct {
					ID         int    `json:"id"`
					Name       string `json:"name"`
					URL        string `json:"url"`
					ImageURL   string `json:"image_url"`
					IsVerified bool   `json:"is_verified"`
				} `json:"primary_artist"`
			} `json:"result"`
		} `json:"hits"`
	} `json:"response"`
}

// SearchArtist resolves an artist by name. The first hit whose primary
// artist matches the query case-insensitively wins; failing that, the first
// hit's primary artist is taken.
func (c *Client) SearchArtist(ctx context.Context, name string) (*Artist, error) {
	c.log.Debug("searching for artist", "name", name)

	params := url.Values{"q": {name}}
	body, err := c.apiGet(ctx, "/search?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var search searchResponse
	if err := json.Unmarshal(body, &search); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}
	if len(search.Response.Hits) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrArtistNotFound, name)
	}

	lower := strings.ToLower(strings.TrimSpace(name))
	hit := search.Response.Hits[0].Result.PrimaryArtist
	for _, h := range search.Response.Hits {
		if strings.ToLower(h.Result.PrimaryArtist.Name) == lower {
			hit = h.Result.PrimaryArtist
			break
		}
	}

	artist := &Artist{
		ID:         hit.ID,
		Name:       hit.Name,
		URL:        hit.URL,
		ImageURL:   hit.ImageURL,
		IsVerified: hit.IsVerified,
	}
	c.log.Info("found artist", "name", artist.Name, "id", artist.ID)
	return artist, nil
}

type artistSongsResponse struct {
	Response struct {
		Songs []struct {
			ID                int    `json:"id"`
			Title             string `json:"title"`
			TitleWithFeatured string `json:"title_with_featured"`
			URL               string `json:"url"`
			PrimaryArtist     struct {
				ID   int    `json:"id"`
				Name string `json:"name"`
			} `json:"primary_artist"`
		} `json:"songs"`
		NextPage *int `json:"next_page"`
	} `json:"response"`
}

// ArtistSongs pages through an artist's songs sorted by popularity until
// maxSongs are collected or the listing ends.
func (c *Client) ArtistSongs(ctx context.Context, artistID, maxSongs int) ([]Song, error) {
	var songs []Song
	page := 1

	for len(songs) < maxSongs {
		params := url.Values{
			"sort":     {"popularity"},
			"per_page": {fmt.Sprint(defaultPerPage)},
			"page":     {fmt.Sprint(page)},
		}
		body, err := c.apiGet(ctx, fmt.Sprintf("/artists/%d/songs?%s", artistID, params.Encode()))
		if err != nil {
			return nil, err
		}

		var resp artistSongsResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, fmt.Errorf("decoding songs response: %w", err)
		}

		for _, s := range resp.Response.Songs {
			songs = append(songs, Song{
				ID:                s.ID,
				Title:             cleanTitle(s.Title),
				TitleWithFeatured: s.TitleWithFeatured,
				Artist:            s.PrimaryArtist.Name,
				ArtistID:          s.PrimaryArtist.ID,
				URL:               s.URL,
			})
			if len(songs) == maxSongs {
				break
			}
		}

		if resp.Response.NextPage == nil || len(resp.Response.Songs) == 0 {
			break
		}
		page = *resp.Response.NextPage
	}

	c.log.Debug("fetched artist songs", "artist_id", artistID, "count", len(songs))
	return songs, nil
}

// GetArtistSongs is a convenience wrapper: search, then list songs.
func (c *Client) GetArtistSongs(ctx context.Context, name string, maxSongs int) (*ArtistWithSongs, error) {
	artist, err := c.SearchArtist(ctx, name)
	if err != nil {
		return nil, err
	}
	songs, err := c.ArtistSongs(ctx, artist.ID, maxSongs)
	if err != nil {
		return nil, err
	}
	return &ArtistWithSongs{Artist: *artist, Songs: songs}, nil
}

// GetLyrics returns a song's lyrics, from cache when possible, otherwise by
// scraping the song page. Blank lyric text is ErrNoLyricsFound.
func (c *Client) GetLyrics(ctx context.Context, song Song) (*Lyrics, error) {
	if c.cache != nil {
		if entry, ok := c.cache.Get(song.ID); ok {
			c.log.Debug("cache hit", "song_id", song.ID, "title", song.Title)
			return &Lyrics{
				SongID:     entry.SongID,
				SongTitle:  entry.SongTitle,
				ArtistName: entry.ArtistName,
				Text:       entry.Lyrics,
				FetchedAt:  entry.FetchedAt,
			}, nil
		}
	}

	body, err := c.pageGet(ctx, song.URL)
	if err != nil {
		return nil, err
	}

	text := parseLyricsHTML(strings.NewReader(string(body)))
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: %s by %s", ErrNoLyricsFound, song.Title, song.Artist)
	}

	lyrics := &Lyrics{
		SongID:     song.ID,
		SongTitle:  song.Title,
		ArtistName: song.Artist,
		Text:       text,
		FetchedAt:  time.Now().UTC(),
	}

	if c.cache != nil {
		c.cache.Set(cache.Entry{
			SongID:     lyrics.SongID,
			SongTitle:  lyrics.SongTitle,
			ArtistName: lyrics.ArtistName,
			Lyrics:     lyrics.Text,
			FetchedAt:  lyrics.FetchedAt,
		})
	}
	return lyrics, nil
}

// FetchAll retrieves lyrics for many songs with a bounded worker pool.
// Songs without lyrics are skipped; progressFn, when non-nil, is called
// after each song with running totals.
func (c *Client) FetchAll(ctx context.Context, songs []Song, workers int, progressFn func(processed, found int, current string)) []*Lyrics {
	if workers < 1 {
		workers = 1
	}

	type result struct {
		lyrics *Lyrics
		title  string
	}

	jobs := make(chan Song, len(songs))
	results := make(chan result, len(songs))

	for w := 0; w < workers; w++ {
		go func() {
			for song := range jobs {
				lyrics, err := c.GetLyrics(ctx, song)
				if err != nil {
					c.log.Warn("lyrics unavailable", "title", song.Title, "error", err)
					results <- result{title: song.Title}
					continue
				}
				results <- result{lyrics: lyrics, title: song.Title}
			}
		}()
	}

	for _, song := range songs {
		jobs <- song
	}
	close(jobs)

	var all []*Lyrics
	processed, found := 0, 0
	for range songs {
		r := <-results
		processed++
		if r.lyrics != nil {
			all = append(all, r.lyrics)
			found++
		}
		if progressFn != nil {
			progressFn(processed, found, r.title)
		}
	}
	return all
}

// apiGet issues an authenticated API request with retry.
func (c *Client) apiGet(ctx context.Context, path string) ([]byte, error) {
	return c.doWithRetry(ctx, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+c.token)
		return req, nil
	})
}

// pageGet fetches a public page with a browser user agent.
func (c *Client) pageGet(ctx context.Context, pageURL string) ([]byte, error) {
	return c.doWithRetry(ctx, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent",
			"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
		return req, nil
	})
}

// doWithRetry runs a request with exponential backoff. Transport errors,
// 429s, and 5xx responses are retried; other statuses fail immediately.
func (c *Client) doWithRetry(ctx context.Context, build func(context.Context) (*http.Request, error)) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			delay := c.retryDelay * (1 << (attempt - 1))
			c.log.Debug("retrying request", "attempt", attempt+1, "delay", delay)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		req, err := build(ctx)
		if err != nil {
			return nil, err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			return body, nil
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			lastErr = fmt.Errorf("server returned %s", resp.Status)
			continue
		default:
			return nil, fmt.Errorf("request failed: %s", resp.Status)
		}
	}
	return nil, fmt.Errorf("request failed after %d attempts: %w", c.maxRetries, lastErr)
}

// parseLyricsHTML extracts lyric text from a song page. Genius marks lyric
// blocks with data-lyrics-container divs; <br> becomes a newline.
func parseLyricsHTML(r io.Reader) string {
	doc, err := html.Parse(r)
	if err != nil {
		return ""
	}

	var sb strings.Builder

	var find func(*html.Node)
	find = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "div" {
			for _, a := range n.Attr {
				if a.Key == "data-lyrics-container" && a.Val == "true" {
					collectText(n, &sb)
					sb.WriteString("\n")
					return
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			find(child)
		}
	}

	find(doc)
	return strings.TrimSpace(sb.String())
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	if n.Type == html.ElementNode && n.Data == "br" {
		sb.WriteString("\n")
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, sb)
	}
}

var (
	reParens = regexp.MustCompile(`\s*[\(\[].*?[\)\]]\s*`)

	reSuffix = regexp.MustCompile(
		`(?i)\s*-\s*(remaster|live|demo|remix|deluxe|bonus|edit|version|` +
			`mix|single|acoustic|instrumental|radio|extended|original).*`)
)

// cleanTitle strips parenthesized qualifiers and release-variant suffixes
// so "Song (Live) - Remastered 2011" keys the same as "Song".
func cleanTitle(title string) string {
	title = reParens.ReplaceAllString(title, " ")
	title = reSuffix.ReplaceAllString(title, "")
	return strings.TrimSpace(title)
}
