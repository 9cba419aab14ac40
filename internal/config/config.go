// Package config loads the application configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string
	// RedisURL is optional; empty disables the analytics cache.
	RedisURL  string
	LogLevel  string
	LogFormat string

	RateLimitPerSecond float64
	RateLimitBurst     int
	AnalyticsCacheTTL  time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:      getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		RedisURL:    getEnv("REDIS_URL", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	var err error
	cfg.RateLimitPerSecond, err = getEnvFloat("RATE_LIMIT_PER_SECOND", 20)
	if err != nil {
		return nil, err
	}
	if cfg.RateLimitPerSecond <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_PER_SECOND must be positive")
	}

	cfg.RateLimitBurst, err = getEnvInt("RATE_LIMIT_BURST", 40)
	if err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_BURST must be positive")
	}

	cfg.AnalyticsCacheTTL, err = getEnvDuration("ANALYTICS_CACHE_TTL", 30*time.Second)
	if err != nil {
		return nil, err
	}
	if cfg.AnalyticsCacheTTL <= 0 {
		return nil, fmt.Errorf("ANALYTICS_CACHE_TTL must be positive")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return value, nil
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration like 30s: %w", key, err)
	}
	return value, nil
}
