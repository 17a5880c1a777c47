// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string
	LogLevel   string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Remote source
	SourceURL     string
	SourceTimeout time.Duration

	// Cache
	CacheBackend      string // memory | sqlite | mongo | redis
	SQLitePath        string
	MongoURI          string
	MongoDB           string
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	CacheFreshWindow  time.Duration
	CacheUsableWindow time.Duration
	CacheSizeBudget   int

	// Refresh
	RefreshInterval   time.Duration
	StaleRefreshDelay time.Duration

	// Built-in fallback
	SyntheticCount int
}

// DefaultSourceURL is the NASA Exoplanet Archive TAP sync endpoint
const DefaultSourceURL = "https://exoplanetarchive.ipac.caltech.edu/TAP/sync"

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	// Set defaults and override with env vars
	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		SourceURL:     getEnv("SOURCE_URL", DefaultSourceURL),
		SourceTimeout: time.Duration(getEnvAsInt("SOURCE_TIMEOUT", 30)) * time.Second,

		CacheBackend:      getEnv("CACHE_BACKEND", "sqlite"),
		SQLitePath:        getEnv("SQLITE_PATH", "exocatalog.db"),
		MongoURI:          getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:           getEnv("MONGO_DB", "exocatalog"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		CacheFreshWindow:  time.Duration(getEnvAsInt("CACHE_FRESH_HOURS", 24)) * time.Hour,
		CacheUsableWindow: time.Duration(getEnvAsInt("CACHE_USABLE_HOURS", 168)) * time.Hour,
		CacheSizeBudget:   getEnvAsInt("CACHE_SIZE_BUDGET", 4_500_000),

		RefreshInterval:   time.Duration(getEnvAsInt("REFRESH_INTERVAL_MINUTES", 360)) * time.Minute,
		StaleRefreshDelay: time.Duration(getEnvAsInt("STALE_REFRESH_DELAY", 10)) * time.Second,

		SyntheticCount: getEnvAsInt("SYNTHETIC_COUNT", 120),
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
