package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig
	Catalog     CatalogConfig
	Recommender RecommenderConfig
	Cache       CacheConfig
	RateLimit   RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CatalogConfig selects and parameterizes the catalog source
type CatalogConfig struct {
	Source        string `mapstructure:"source"` // "file" or "synthetic"
	Path          string `mapstructure:"path"`
	SyntheticSize int    `mapstructure:"synthetic_size"`
	SyntheticSeed int64  `mapstructure:"synthetic_seed"`
}

// RecommenderConfig holds recommendation engine tuning
type RecommenderConfig struct {
	MaxNeighbors int `mapstructure:"max_neighbors"`
	BuildWorkers int `mapstructure:"build_workers"`
	DefaultLimit int `mapstructure:"default_limit"`
}

// CacheConfig holds response cache configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute per client IP
	Burst int `mapstructure:"burst"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/giftwise/")

	// Environment variable settings
	v.SetEnvPrefix("GIFTWISE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Catalog defaults
	v.SetDefault("catalog.source", "synthetic")
	v.SetDefault("catalog.path", "")
	v.SetDefault("catalog.synthetic_size", 500)
	v.SetDefault("catalog.synthetic_seed", 1)

	// Recommender defaults
	v.SetDefault("recommender.max_neighbors", 10)
	v.SetDefault("recommender.build_workers", 0) // 0 = one per CPU
	v.SetDefault("recommender.default_limit", 10)

	// Cache defaults
	v.SetDefault("cache.ttl", "1h")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)
	v.SetDefault("ratelimit.burst", 20)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Catalog.Source != "file" && config.Catalog.Source != "synthetic" {
		return fmt.Errorf("catalog source must be 'file' or 'synthetic', got: %s", config.Catalog.Source)
	}

	if config.Catalog.Source == "file" && config.Catalog.Path == "" {
		return fmt.Errorf("catalog path is required when catalog source is 'file' (set GIFTWISE_CATALOG_PATH)")
	}

	if config.Catalog.Source == "synthetic" && config.Catalog.SyntheticSize <= 0 {
		return fmt.Errorf("catalog synthetic_size must be positive, got: %d", config.Catalog.SyntheticSize)
	}

	if config.Recommender.DefaultLimit <= 0 {
		return fmt.Errorf("recommender default_limit must be positive, got: %d", config.Recommender.DefaultLimit)
	}

	return nil
}
