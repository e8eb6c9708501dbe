package analysis

import "fmt"

// Language selects the tokenization branch. Auto resolves by script
// detection on the input text.
type Language string

const (
	LanguageAuto        Language = "auto"
	LanguageWestern     Language = "western"
	LanguageLogographic Language = "logographic"
)

// ContextsMode controls how much of the surrounding line is kept when
// extracting example usages. Short mode keeps a few words either side of the
// target; full mode keeps the whole line with track metadata.
type ContextsMode string

const (
	ContextsNone  ContextsMode = "none"
	ContextsShort ContextsMode = "short"
	ContextsFull  ContextsMode = "full"
)

// Config holds all analysis options. Build one with DefaultConfig, adjust
// fields, then call Validate before use. A Config is never mutated by the
// pipeline and may be shared across songs.
type Config struct {
	MinWordLength    int
	MinCount         int
	UseLemmatization bool
	RemoveStopWords  bool
	CustomStopWords  []string
	Language         Language
	UsePOSFiltering  bool

	ComputeTFIDF     bool
	ComputePOS       bool
	ComputeSentiment bool
	DetectSlang      bool

	ContextsMode       ContextsMode
	MaxContextsPerWord int
}

// DefaultConfig returns the standard analysis configuration.
func DefaultConfig() Config {
	return Config{
		MinWordLength:      2,
		MinCount:           1,
		RemoveStopWords:    true,
		Language:           LanguageAuto,
		UsePOSFiltering:    true,
		ContextsMode:       ContextsNone,
		MaxContextsPerWord: 3,
	}
}

// Validate rejects out-of-range numeric fields and unrecognized enum values.
func (c Config) Validate() error {
	if c.MinWordLength < 1 {
		return fmt.Errorf("%w: min word length must be at least 1, got %d", ErrInvalidConfig, c.MinWordLength)
	}
	if c.MinCount < 1 {
		return fmt.Errorf("%w: min count must be at least 1, got %d", ErrInvalidConfig, c.MinCount)
	}
	if c.MaxContextsPerWord < 1 || c.MaxContextsPerWord > 10 {
		return fmt.Errorf("%w: max contexts per word must be 1-10, got %d", ErrInvalidConfig, c.MaxContextsPerWord)
	}
	switch c.Language {
	case LanguageAuto, LanguageWestern, LanguageLogographic:
	default:
		return fmt.Errorf("%w: unknown language %q", ErrInvalidConfig, c.Language)
	}
	switch c.ContextsMode {
	case ContextsNone, ContextsShort, ContextsFull:
	default:
		return fmt.Errorf("%w: unknown contexts mode %q", ErrInvalidConfig, c.ContextsMode)
	}
	return nil
}

// resolveLanguage pins the auto setting to a concrete branch using the given
// sample text. Western is the fallback when no sample is available.
func (c Config) resolveLanguage(sample string) Language {
	if c.Language != LanguageAuto {
		return c.Language
	}
	if sample == "" {
		return LanguageWestern
	}
	return DetectLanguage(sample)
}
