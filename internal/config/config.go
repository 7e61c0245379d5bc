package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"StockExpert/internal/model"
)

// TickerConfig is one watched ticker with its target rule.
type TickerConfig struct {
	Symbol string  `yaml:"symbol"`
	Target float64 `yaml:"target"`
	Action string  `yaml:"action"` // "buy" or "sell"
}

// Rule converts the config entry into a target rule.
func (t TickerConfig) Rule() model.TargetRule {
	return model.TargetRule{
		Threshold: t.Target,
		Direction: model.Direction(t.Action),
	}
}

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	DataSource struct {
		Lookback   string `yaml:"lookback"`
		Interval   string `yaml:"interval"`
		FetchDelay string `yaml:"fetch_delay"`
	} `yaml:"data_source"`
	Forecast struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
		Horizon int    `yaml:"horizon"`
	} `yaml:"forecast"`
	Cache struct {
		TTL string `yaml:"ttl"`
	} `yaml:"cache"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Tickers []TickerConfig `yaml:"tickers"`
	Proxy   string         `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
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
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("FORECAST_BASE_URL"); v != "" {
		cfg.Forecast.BaseURL = v
	}
	if v := os.Getenv("FORECAST_API_KEY"); v != "" {
		cfg.Forecast.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("CRON_REFRESH"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("CACHE_TTL"); v != "" {
		cfg.Cache.TTL = v
	}

	// Defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.DataSource.Lookback == "" {
		cfg.DataSource.Lookback = "2y"
	}
	if cfg.DataSource.Interval == "" {
		cfg.DataSource.Interval = "1d"
	}
	if cfg.DataSource.FetchDelay == "" {
		cfg.DataSource.FetchDelay = "2s"
	}
	if cfg.Forecast.Horizon == 0 {
		cfg.Forecast.Horizon = 14
	}
	if cfg.Cache.TTL == "" {
		cfg.Cache.TTL = "10m"
	}
	if cfg.Schedule.RefreshCron == "" {
		cfg.Schedule.RefreshCron = "0 */10 * * * *"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/stockexpert.db"
	}

	return cfg, nil
}

// CacheTTL parses the cache time-to-live.
func (c *Config) CacheTTL() (time.Duration, error) {
	return time.ParseDuration(c.Cache.TTL)
}

// FetchDelay parses the pause between provider fetches.
func (c *Config) FetchDelay() (time.Duration, error) {
	return time.ParseDuration(c.DataSource.FetchDelay)
}

// Validate checks that all required fields are set and coherent.
func (c *Config) Validate() error {
	if len(c.Tickers) == 0 {
		return fmt.Errorf("tickers: at least one ticker is required")
	}
	for i, t := range c.Tickers {
		if t.Symbol == "" {
			return fmt.Errorf("tickers[%d]: symbol is required", i)
		}
		if t.Target <= 0 {
			return fmt.Errorf("tickers[%d] (%s): target must be positive", i, t.Symbol)
		}
		if t.Action != string(model.DirectionBuy) && t.Action != string(model.DirectionSell) {
			return fmt.Errorf("tickers[%d] (%s): action must be %q or %q", i, t.Symbol, model.DirectionBuy, model.DirectionSell)
		}
	}
	if _, err := c.CacheTTL(); err != nil {
		return fmt.Errorf("cache.ttl: %w", err)
	}
	if _, err := c.FetchDelay(); err != nil {
		return fmt.Errorf("data_source.fetch_delay: %w", err)
	}
	if c.Forecast.Horizon < 0 {
		return fmt.Errorf("forecast.horizon must not be negative")
	}
	return nil
}
