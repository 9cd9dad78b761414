package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		BaseURL        string `yaml:"base_url"`
		APIKey         string `yaml:"api_key"`
		Interval       string `yaml:"interval"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"data_source"`
	Fetch struct {
		Mode          string `yaml:"mode"`
		Symbols       string `yaml:"symbols"` // comma-separated override, bypasses the watchlist file
		WatchlistFile string `yaml:"watchlist_file"`
		DelayMillis   int    `yaml:"delay_millis"`
	} `yaml:"fetch"`
	Output struct {
		Dir string `yaml:"dir"`
	} `yaml:"output"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is fine; environment variables alone can configure a run.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("FMP_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("FETCH_MODE"); v != "" {
		cfg.Fetch.Mode = v
	}
	if v := os.Getenv("SPECIFIC_SYMBOLS"); v != "" {
		cfg.Fetch.Symbols = v
	}
	if v := os.Getenv("WATCHLIST_FILE"); v != "" {
		cfg.Fetch.WatchlistFile = v
	}
	if v := os.Getenv("FETCH_DELAY_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.Fetch.DelayMillis = ms
		}
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}

	// Defaults
	if cfg.DataSource.BaseURL == "" {
		cfg.DataSource.BaseURL = "https://financialmodelingprep.com/api/v3"
	}
	if cfg.DataSource.Interval == "" {
		cfg.DataSource.Interval = "30min"
	}
	if cfg.DataSource.TimeoutSeconds == 0 {
		cfg.DataSource.TimeoutSeconds = 15
	}
	if cfg.Fetch.Mode == "" {
		cfg.Fetch.Mode = "today"
	}
	if cfg.Fetch.WatchlistFile == "" {
		cfg.Fetch.WatchlistFile = "watchlist.txt"
	}
	if cfg.Fetch.DelayMillis == 0 {
		cfg.Fetch.DelayMillis = 500
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "data"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.DataSource.APIKey == "" {
		return fmt.Errorf("data_source.api_key is required (set FMP_API_KEY)")
	}
	if c.DataSource.TimeoutSeconds < 0 {
		return fmt.Errorf("data_source.timeout_seconds must not be negative")
	}
	return nil
}

// Timeout is the HTTP client timeout for provider calls.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.DataSource.TimeoutSeconds) * time.Second
}

// Delay is the pause between consecutive symbol fetches.
func (c *Config) Delay() time.Duration {
	return time.Duration(c.Fetch.DelayMillis) * time.Millisecond
}
