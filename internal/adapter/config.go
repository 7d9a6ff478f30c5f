package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	OMDb    OMDbConfig    `mapstructure:"omdb"`
	Search  SearchConfig  `mapstructure:"search"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// OMDbConfig holds metadata service configuration
type OMDbConfig struct {
	APIKey    string        `mapstructure:"api_key"`
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	RateLimit float64       `mapstructure:"rate_limit"` // requests per second, 0 disables limiting
	Burst     int           `mapstructure:"burst"`
}

// SearchConfig holds search pipeline configuration
type SearchConfig struct {
	Debounce       time.Duration `mapstructure:"debounce"`
	LatestSubjects []string      `mapstructure:"latest_subjects"`
}

// UIConfig holds UI configuration
type UIConfig struct {
	Theme          string        `mapstructure:"theme"` // "dark" or "light"
	ScrollDebounce time.Duration `mapstructure:"scroll_debounce"`
	CompactAbove   int           `mapstructure:"compact_above"` // px scrolled before the header compacts
	ExpandBelow    int           `mapstructure:"expand_below"`  // px from top before the header expands again
	RowHeight      int           `mapstructure:"row_height"`    // px represented by one terminal row
	ToastDuration  time.Duration `mapstructure:"toast_duration"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultLatestSubjects are the titles sampled for the startup listing
var DefaultLatestSubjects = []string{
	"Avengers", "Batman", "Spider", "Marvel", "Star Wars", "Fast", "Mission", "John Wick",
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		OMDb: OMDbConfig{
			BaseURL:   "https://www.omdbapi.com",
			Timeout:   15 * time.Second,
			RateLimit: 5,
			Burst:     2,
		},
		Search: SearchConfig{
			Debounce:       300 * time.Millisecond,
			LatestSubjects: append([]string(nil), DefaultLatestSubjects...),
		},
		UI: UIConfig{
			Theme:          "dark",
			ScrollDebounce: 50 * time.Millisecond,
			CompactAbove:   150,
			ExpandBelow:    50,
			RowHeight:      20,
			ToastDuration:  4 * time.Second,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "marquee", "marquee.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "marquee", "marquee.log")
	}
}

// DefaultConfigDir returns the default config directory for the current OS
func DefaultConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "marquee")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "marquee")
	}
}

// newViper returns a viper instance seeded with defaults so that every key
// can be overridden from the environment (MARQUEE_OMDB_API_KEY, ...)
func newViper() *viper.Viper {
	v := viper.New()
	cfg := DefaultConfig()

	v.SetDefault("omdb.api_key", cfg.OMDb.APIKey)
	v.SetDefault("omdb.base_url", cfg.OMDb.BaseURL)
	v.SetDefault("omdb.timeout", cfg.OMDb.Timeout)
	v.SetDefault("omdb.rate_limit", cfg.OMDb.RateLimit)
	v.SetDefault("omdb.burst", cfg.OMDb.Burst)

	v.SetDefault("search.debounce", cfg.Search.Debounce)
	v.SetDefault("search.latest_subjects", cfg.Search.LatestSubjects)

	v.SetDefault("ui.theme", cfg.UI.Theme)
	v.SetDefault("ui.scroll_debounce", cfg.UI.ScrollDebounce)
	v.SetDefault("ui.compact_above", cfg.UI.CompactAbove)
	v.SetDefault("ui.expand_below", cfg.UI.ExpandBelow)
	v.SetDefault("ui.row_height", cfg.UI.RowHeight)
	v.SetDefault("ui.toast_duration", cfg.UI.ToastDuration)

	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)

	v.SetEnvPrefix("MARQUEE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// LoadConfig loads configuration from file and environment.
// An empty path searches the default config directory and the working directory.
func LoadConfig(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(DefaultConfigDir())
		v.AddConfigPath(".")
	}

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if len(cfg.Search.LatestSubjects) == 0 {
		cfg.Search.LatestSubjects = append([]string(nil), DefaultLatestSubjects...)
	}

	return cfg, nil
}

// SaveConfig writes the configuration to path, or to the default location when path is empty
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		path = filepath.Join(DefaultConfigDir(), "config.yaml")
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()

	// Durations are written as strings so the file stays readable
	v.Set("omdb.api_key", cfg.OMDb.APIKey)
	v.Set("omdb.base_url", cfg.OMDb.BaseURL)
	v.Set("omdb.timeout", cfg.OMDb.Timeout.String())
	v.Set("omdb.rate_limit", cfg.OMDb.RateLimit)
	v.Set("omdb.burst", cfg.OMDb.Burst)

	v.Set("search.debounce", cfg.Search.Debounce.String())
	v.Set("search.latest_subjects", cfg.Search.LatestSubjects)

	v.Set("ui.theme", cfg.UI.Theme)
	v.Set("ui.scroll_debounce", cfg.UI.ScrollDebounce.String())
	v.Set("ui.compact_above", cfg.UI.CompactAbove)
	v.Set("ui.expand_below", cfg.UI.ExpandBelow)
	v.Set("ui.row_height", cfg.UI.RowHeight)
	v.Set("ui.toast_duration", cfg.UI.ToastDuration.String())

	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// IsConfigured returns true if an API key is set
func (c *Config) IsConfigured() bool {
	return strings.TrimSpace(c.OMDb.APIKey) != ""
}
