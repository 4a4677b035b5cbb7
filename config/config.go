package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the utility's settings. Values come from, in order of
// precedence: environment variables, config.yaml in the working directory,
// and built-in defaults. A .env file, if present, seeds the environment.
type Config struct {
	HistoryBackend  string `mapstructure:"history_backend"`
	HistoryPath     string `mapstructure:"history_path"`
	PostgresURL     string `mapstructure:"postgres_url"`
	DefaultPlatform string `mapstructure:"default_platform"`
	SlotHours       []int  `mapstructure:"slot_hours"`
	MaxConcurrent   int    `mapstructure:"max_concurrent"`
	Verbose         bool   `mapstructure:"verbose"`
}

// Load reads configuration from .env, config.yaml, and the environment.
// A missing config file is not an error.
func Load() (*Config, error) {
	// .env seeds environment variables; absence is fine.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("postpilot")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("history_backend", "csv")
	v.SetDefault("history_path", "post_history.csv")
	v.SetDefault("default_platform", "facebook")
	v.SetDefault("slot_hours", []int{9, 12, 18})
	v.SetDefault("max_concurrent", 4)
	v.SetDefault("verbose", false)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.HistoryBackend {
	case "csv", "sqlite", "postgres", "memory":
	default:
		return fmt.Errorf("unknown history backend %q", c.HistoryBackend)
	}
	if c.HistoryBackend == "postgres" && c.PostgresURL == "" {
		return fmt.Errorf("postgres history backend requires postgres_url")
	}
	if len(c.SlotHours) == 0 {
		return fmt.Errorf("slot_hours cannot be empty")
	}
	prev := -1
	for _, h := range c.SlotHours {
		if h < 0 || h > 23 {
			return fmt.Errorf("slot hour %d out of range", h)
		}
		if h <= prev {
			return fmt.Errorf("slot_hours must be strictly ascending")
		}
		prev = h
	}
	if c.MaxConcurrent < 1 {
		return fmt.Errorf("max_concurrent must be at least 1")
	}
	return nil
}
