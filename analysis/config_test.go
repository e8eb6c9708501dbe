package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 2, cfg.MinWordLength)
	assert.Equal(t, 1, cfg.MinCount)
	assert.True(t, cfg.RemoveStopWords)
	assert.True(t, cfg.UsePOSFiltering)
	assert.Equal(t, LanguageAuto, cfg.Language)
	assert.Equal(t, ContextsNone, cfg.ContextsMode)
	assert.Equal(t, 3, cfg.MaxContextsPerWord)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero min word length", func(c *Config) { c.MinWordLength = 0 }},
		{"zero min count", func(c *Config) { c.MinCount = 0 }},
		{"zero max contexts", func(c *Config) { c.MaxContextsPerWord = 0 }},
		{"too many contexts", func(c *Config) { c.MaxContextsPerWord = 11 }},
		{"unknown language", func(c *Config) { c.Language = "martian" }},
		{"unknown contexts mode", func(c *Config) { c.ContextsMode = "verbose" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestResolveLanguage(t *testing.T) {
	auto := DefaultConfig()
	assert.Equal(t, LanguageWestern, auto.resolveLanguage(""))
	assert.Equal(t, LanguageWestern, auto.resolveLanguage("hello"))
	assert.Equal(t, LanguageLogographic, auto.resolveLanguage("夜空"))

	pinned := DefaultConfig()
	pinned.Language = LanguageWestern
	assert.Equal(t, LanguageWestern, pinned.resolveLanguage("夜空"))
}
