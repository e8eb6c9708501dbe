package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"lyriclens/analysis"
	"lyriclens/cache"
	"lyriclens/genius"
	"lyriclens/output"
)

var analyzeFlags struct {
	maxSongs     int
	top          int
	format       string
	outputPath   string
	noStopWords  bool
	exclude      []string
	language     string
	minCount     int
	enhanced     bool
	detectSlang  bool
	contextsMode string
	maxContexts  int
	noCache      bool
	workers      int
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <artist>",
	Short: "Analyze an artist's lyric vocabulary",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.IntVar(&analyzeFlags.maxSongs, "max-songs", 0, "number of songs to fetch (default from config)")
	f.IntVar(&analyzeFlags.top, "top", 0, "number of top words to report (default from config)")
	f.StringVar(&analyzeFlags.format, "format", "table", "output format: table, json, csv, wordgrain")
	f.StringVarP(&analyzeFlags.outputPath, "output", "o", "", "write to file instead of stdout")
	f.BoolVar(&analyzeFlags.noStopWords, "no-stop-words", false, "keep common stop words")
	f.StringSliceVar(&analyzeFlags.exclude, "exclude", nil, "additional words to exclude")
	f.StringVar(&analyzeFlags.language, "language", "auto", "tokenization language: auto, western, logographic")
	f.IntVar(&analyzeFlags.minCount, "min-count", 1, "minimum aggregate count for a word to appear")
	f.BoolVar(&analyzeFlags.enhanced, "enhanced", false, "compute TF-IDF, POS, and sentiment enrichment")
	f.BoolVar(&analyzeFlags.detectSlang, "detect-slang", false, "flag slang vocabulary")
	f.StringVar(&analyzeFlags.contextsMode, "contexts-mode", "none", "example contexts: none, short, full")
	f.IntVar(&analyzeFlags.maxContexts, "max-contexts", 3, "maximum example contexts per word")
	f.BoolVar(&analyzeFlags.noCache, "no-cache", false, "bypass the lyrics cache")
	f.IntVar(&analyzeFlags.workers, "workers", 4, "concurrent lyric fetches")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	artistName := args[0]
	log := slog.With("component", "analyze")

	if !appCfg.IsConfigured() {
		return errors.New("no Genius access token configured (set LYRICLENS_GENIUS_ACCESS_TOKEN)")
	}

	format, err := output.ParseFormat(analyzeFlags.format)
	if err != nil {
		return err
	}

	anCfg, err := buildAnalysisConfig()
	if err != nil {
		return err
	}

	maxSongs := analyzeFlags.maxSongs
	if maxSongs <= 0 {
		maxSongs = appCfg.DefaultMaxSongs
	}
	topN := analyzeFlags.top
	if topN <= 0 {
		topN = appCfg.DefaultTopWords
	}

	var clientOpts []genius.Option
	var lyricsCache *cache.LyricsCache
	if !analyzeFlags.noCache {
		lyricsCache, err = cache.New(appCfg.CachePath(), appCfg.CacheTTLHours)
		if err != nil {
			log.Warn("cache unavailable, continuing without it", "error", err)
		} else {
			defer lyricsCache.Close()
			clientOpts = append(clientOpts, genius.WithCache(lyricsCache))
		}
	}

	client, err := genius.New(appCfg.GeniusAccessToken, clientOpts...)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	aws, err := client.GetArtistSongs(ctx, artistName, maxSongs)
	if err != nil {
		return err
	}
	log.Info("fetching lyrics", "artist", aws.Artist.Name, "songs", len(aws.Songs))

	allLyrics := client.FetchAll(ctx, aws.Songs, analyzeFlags.workers, func(processed, found int, current string) {
		log.Debug("fetched", "processed", processed, "found", found, "song", current)
	})
	if len(allLyrics) == 0 {
		return fmt.Errorf("no lyrics found for %s", aws.Artist.Name)
	}

	var results []*analysis.AnalysisResult
	var positioned []analysis.TokenWithPosition

	for _, lyrics := range allLyrics {
		result, err := analysis.Analyze(lyrics.Text, lyrics.SongID, lyrics.SongTitle, lyrics.ArtistName, anCfg)
		if err != nil {
			log.Warn("skipping song", "title", lyrics.SongTitle, "error", err)
			continue
		}
		results = append(results, result)

		if anCfg.ContextsMode != analysis.ContextsNone {
			tokens, err := analysis.TokenizeWithPositions(lyrics.Text, lyrics.SongID, lyrics.SongTitle, anCfg)
			if err != nil {
				log.Warn("no contexts for song", "title", lyrics.SongTitle, "error", err)
				continue
			}
			positioned = append(positioned, tokens...)
		}
	}
	if len(results) == 0 {
		return fmt.Errorf("no songs could be analyzed for %s", aws.Artist.Name)
	}

	agg := analysis.Aggregate(results, aws.Artist.Name, anCfg)
	log.Info("analysis complete",
		"songs", agg.SongsAnalyzed, "total_words", agg.TotalWords, "unique_words", agg.UniqueWords)

	return writeResult(agg, positioned, anCfg, format, topN)
}

func buildAnalysisConfig() (analysis.Config, error) {
	cfg := analysis.DefaultConfig()
	cfg.RemoveStopWords = !analyzeFlags.noStopWords
	cfg.CustomStopWords = analyzeFlags.exclude
	cfg.Language = analysis.Language(analyzeFlags.language)
	cfg.MinCount = analyzeFlags.minCount
	cfg.UseLemmatization = true
	cfg.DetectSlang = analyzeFlags.detectSlang
	cfg.ContextsMode = analysis.ContextsMode(analyzeFlags.contextsMode)
	cfg.MaxContextsPerWord = analyzeFlags.maxContexts
	if analyzeFlags.enhanced {
		cfg.ComputeTFIDF = true
		cfg.ComputePOS = true
		cfg.ComputeSentiment = true
	}
	return cfg, cfg.Validate()
}

// languageCode maps the analysis language to the ISO 639-1 code recorded in
// WordGrain metadata.
func languageCode(cfg analysis.Config) string {
	if cfg.Language == analysis.LanguageLogographic {
		return "ja"
	}
	return "en"
}

func writeResult(agg *analysis.AggregateResult, positioned []analysis.TokenWithPosition, anCfg analysis.Config, format output.Format, topN int) error {
	w := os.Stdout
	path := analyzeFlags.outputPath
	if format == output.FormatWordGrain && path == "" {
		path = output.Filename(agg.ArtistName)
	}
	if path != "" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	enriched := anCfg.ComputeTFIDF || anCfg.ComputePOS || anCfg.ComputeSentiment ||
		anCfg.DetectSlang || anCfg.ContextsMode != analysis.ContextsNone

	// Wordgrain exports the full vocabulary; top-N applies to display
	// formats only.
	var err error
	if format == output.FormatWordGrain {
		var doc *output.Document
		if enriched {
			doc, err = output.NewEnhancedDocument(agg, positioned, anCfg, languageCode(anCfg))
		} else {
			doc = output.NewDocument(agg, languageCode(anCfg))
		}
		if err == nil {
			err = output.WriteDocument(w, doc)
		}
	} else {
		err = output.Render(w, agg, format, topN)
	}
	if err != nil {
		return err
	}

	if path != "" {
		fmt.Fprintf(os.Stderr, "wrote %s\n", path)
	}
	return nil
}
