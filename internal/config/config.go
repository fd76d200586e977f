package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	CacheBackendFile  = "file"
	CacheBackendRedis = "redis"
)

// Config holds every knob the client reads from the environment.
type Config struct {
	// Remote API
	APIBaseURL  string
	HTTPTimeout time.Duration

	// Persisted session cache
	CacheBackend string // "file" or "redis"
	CacheDir     string // file backend: directory for cache + key files
	RedisAddr    string // redis backend

	// UI
	SplashDelay time.Duration
}

// Load reads the client configuration from environment variables.
// Callers are expected to have run godotenv.Load() first.
func Load() (*Config, error) {
	cfg := &Config{
		APIBaseURL:   getEnv("SWA_API_URL", "http://localhost:5000/api"),
		HTTPTimeout:  time.Duration(getIntEnv("SWA_HTTP_TIMEOUT_SEC", 15)) * time.Second,
		CacheBackend: getEnv("SWA_CACHE_BACKEND", CacheBackendFile),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		SplashDelay:  time.Duration(getIntEnv("SWA_SPLASH_SECONDS", 3)) * time.Second,
	}

	if cfg.CacheBackend != CacheBackendFile && cfg.CacheBackend != CacheBackendRedis {
		return nil, fmt.Errorf("invalid SWA_CACHE_BACKEND %q (want %q or %q)",
			cfg.CacheBackend, CacheBackendFile, CacheBackendRedis)
	}

	cacheDir := os.Getenv("SWA_CACHE_DIR")
	if cacheDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot resolve home directory for session cache: %w", err)
		}
		cacheDir = filepath.Join(home, ".swa")
	}
	cfg.CacheDir = cacheDir

	return cfg, nil
}

// getEnv reads an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getIntEnv reads a numeric environment variable, falling back to the
// default on absence or parse failure.
func getIntEnv(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("WARN: invalid %s (%q), using default %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
