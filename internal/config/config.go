// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"math"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Cache backend names.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Cache     CacheConfig
	Timeouts  TimeoutConfig
	Scoring   ScoringConfig
	Recommend RecommendConfig
	Providers ProviderConfig
	Logging   LoggingConfig
	App       AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
}

// CacheConfig holds cache store settings.
type CacheConfig struct {
	// Backend selects the store implementation: memory, redis, or mongo
	Backend string `env:"CACHE_BACKEND" envDefault:"memory"`

	// ForexTTL is short: exchange rates move within hours
	ForexTTL time.Duration `env:"CACHE_FOREX_TTL" envDefault:"1h"`

	// FlightTTL is longer, reflecting lower fare volatility
	FlightTTL time.Duration `env:"CACHE_FLIGHT_TTL" envDefault:"12h"`

	// RecommendationTTL bounds how long an assembled response is reused
	RecommendationTTL time.Duration `env:"CACHE_RECOMMENDATION_TTL" envDefault:"30m"`

	// SweepInterval is the memory-store janitor interval (0 disables it)
	SweepInterval time.Duration `env:"CACHE_SWEEP_INTERVAL" envDefault:"5m"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	MongoURI        string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDatabase   string `env:"MONGO_DATABASE" envDefault:"traveldeals"`
	MongoCollection string `env:"MONGO_COLLECTION" envDefault:"cache_entries"`
}

// TimeoutConfig holds timeout settings for recommendation operations.
type TimeoutConfig struct {
	GlobalRecommend time.Duration `env:"TIMEOUT_GLOBAL_RECOMMEND" envDefault:"10s"`
	PerProvider     time.Duration `env:"TIMEOUT_PER_PROVIDER" envDefault:"2s"`
}

// ScoringConfig holds the scoring weights and normalization baselines.
// The weights must sum to 1.
type ScoringConfig struct {
	ForexWeight     float64 `env:"SCORE_WEIGHT_FOREX" envDefault:"0.35"`
	CostWeight      float64 `env:"SCORE_WEIGHT_COST" envDefault:"0.50"`
	CarbonWeight    float64 `env:"SCORE_WEIGHT_CARBON" envDefault:"0.15"`
	RateBaseline    float64 `env:"SCORE_RATE_BASELINE" envDefault:"1.0"`
	TrendInfluence  float64 `env:"SCORE_TREND_INFLUENCE" envDefault:"0.5"`
	RefPricePerHour float64 `env:"SCORE_REF_PRICE_PER_HOUR" envDefault:"100"`
	RefCarbonKg     float64 `env:"SCORE_REF_CARBON_KG" envDefault:"50"`
}

// RecommendConfig holds recommendation result settings.
type RecommendConfig struct {
	MaxResults int `env:"RECOMMEND_MAX_RESULTS" envDefault:"20"`
}

// ProviderConfig holds provider adapter settings.
type ProviderConfig struct {
	// DataDir is where the provider mock response documents live
	DataDir string `env:"PROVIDER_DATA_DIR" envDefault:"docs/response-mock"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	validBackends := map[string]bool{BackendMemory: true, BackendRedis: true, BackendMongo: true}
	if !validBackends[cfg.Cache.Backend] {
		return fmt.Errorf("CACHE_BACKEND must be one of: memory, redis, mongo; got %q", cfg.Cache.Backend)
	}
	if cfg.Cache.ForexTTL <= 0 {
		return fmt.Errorf("CACHE_FOREX_TTL must be positive")
	}
	if cfg.Cache.FlightTTL <= 0 {
		return fmt.Errorf("CACHE_FLIGHT_TTL must be positive")
	}
	if cfg.Cache.RecommendationTTL <= 0 {
		return fmt.Errorf("CACHE_RECOMMENDATION_TTL must be positive")
	}

	if cfg.Timeouts.GlobalRecommend <= 0 {
		return fmt.Errorf("TIMEOUT_GLOBAL_RECOMMEND must be positive")
	}
	if cfg.Timeouts.PerProvider <= 0 {
		return fmt.Errorf("TIMEOUT_PER_PROVIDER must be positive")
	}
	if cfg.Timeouts.PerProvider >= cfg.Timeouts.GlobalRecommend {
		return fmt.Errorf("TIMEOUT_PER_PROVIDER (%s) should be less than TIMEOUT_GLOBAL_RECOMMEND (%s)",
			cfg.Timeouts.PerProvider, cfg.Timeouts.GlobalRecommend)
	}

	if err := validateScoring(&cfg.Scoring); err != nil {
		return err
	}

	if cfg.Recommend.MaxResults < 1 {
		return fmt.Errorf("RECOMMEND_MAX_RESULTS must be at least 1")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// validateScoring checks the weights are non-negative and sum to 1.
func validateScoring(s *ScoringConfig) error {
	if s.ForexWeight < 0 || s.CostWeight < 0 || s.CarbonWeight < 0 {
		return fmt.Errorf("scoring weights must not be negative")
	}
	sum := s.ForexWeight + s.CostWeight + s.CarbonWeight
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("scoring weights must sum to 1, got %v", sum)
	}
	if s.RateBaseline <= 0 {
		return fmt.Errorf("SCORE_RATE_BASELINE must be positive")
	}
	if s.RefPricePerHour <= 0 {
		return fmt.Errorf("SCORE_REF_PRICE_PER_HOUR must be positive")
	}
	if s.RefCarbonKg <= 0 {
		return fmt.Errorf("SCORE_REF_CARBON_KG must be positive")
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
