// Package config loads application settings from, in increasing priority:
// built-in defaults, an optional YAML config file, a .env file in the
// working directory, and LYRICLENS_-prefixed environment variables.
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	GeniusAccessToken string `yaml:"genius_access_token"`
	CacheDir          string `yaml:"cache_dir"`
	CacheTTLHours     int    `yaml:"cache_ttl_hours"`
	DefaultMaxSongs   int    `yaml:"default_max_songs"`
	DefaultTopWords   int    `yaml:"default_top_words"`
}

const envPrefix = "LYRICLENS_"

func defaults() Config {
	cacheDir := ".lyriclens"
	if home, err := os.UserHomeDir(); err == nil {
		cacheDir = filepath.Join(home, ".lyriclens")
	}
	return Config{
		CacheDir:        cacheDir,
		CacheTTLHours:   24 * 7,
		DefaultMaxSongs: 20,
		DefaultTopWords: 50,
	}
}

// Load builds the effective configuration. A missing YAML file or .env file
// is not an error; a malformed one is.
func Load() (Config, error) {
	cfg := defaults()

	if path := configFilePath(); path != "" {
		if err := loadYAML(path, &cfg); err != nil {
			return cfg, err
		}
	}
	if err := loadEnvFile(".env"); err != nil {
		return cfg, err
	}
	loadEnv(&cfg)

	return cfg, cfg.Validate()
}

// configFilePath prefers $LYRICLENS_CONFIG, then the conventional location
// under the user config directory. Empty means no file to read.
func configFilePath() string {
	if path := os.Getenv(envPrefix + "CONFIG"); path != "" {
		return path
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(dir, "lyriclens", "config.yaml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

func loadYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// loadEnvFile reads KEY=VALUE lines into the process environment. Existing
// variables win over file entries. Comments and blank lines are skipped.
func loadEnvFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"'`)
		if _, exists := os.LookupEnv(key); !exists {
			os.Setenv(key, value)
		}
	}
	return scanner.Err()
}

func loadEnv(cfg *Config) {
	if v := os.Getenv(envPrefix + "GENIUS_ACCESS_TOKEN"); v != "" {
		cfg.GeniusAccessToken = v
	}
	if v := os.Getenv(envPrefix + "CACHE_DIR"); v != "" {
		cfg.CacheDir = v
	}
	if v := envInt(envPrefix + "CACHE_TTL_HOURS"); v > 0 {
		cfg.CacheTTLHours = v
	}
	if v := envInt(envPrefix + "MAX_SONGS"); v > 0 {
		cfg.DefaultMaxSongs = v
	}
	if v := envInt(envPrefix + "TOP_WORDS"); v > 0 {
		cfg.DefaultTopWords = v
	}
}

func envInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

func (c Config) Validate() error {
	if c.CacheTTLHours < 1 {
		return fmt.Errorf("cache ttl must be at least 1 hour, got %d", c.CacheTTLHours)
	}
	if c.DefaultMaxSongs < 1 {
		return fmt.Errorf("default max songs must be at least 1, got %d", c.DefaultMaxSongs)
	}
	if c.DefaultTopWords < 1 {
		return fmt.Errorf("default top words must be at least 1, got %d", c.DefaultTopWords)
	}
	return nil
}

// IsConfigured reports whether a Genius token is present.
func (c Config) IsConfigured() bool {
	return c.GeniusAccessToken != ""
}

// MaskedToken shows only the last four characters of the access token.
func (c Config) MaskedToken() string {
	if c.GeniusAccessToken == "" {
		return "(not set)"
	}
	if len(c.GeniusAccessToken) <= 4 {
		return "****"
	}
	return "****" + c.GeniusAccessToken[len(c.GeniusAccessToken)-4:]
}

// CachePath is the sqlite database location under the cache directory.
func (c Config) CachePath() string {
	return filepath.Join(c.CacheDir, "lyrics.db")
}
