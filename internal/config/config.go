package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Env      string
	LogLevel string

	// Server
	Port string

	// Database
	DBDriver   string
	SQLitePath string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Storage schema version of the stored positions and records
	StorageVersion int

	// Auth
	OwnerPasswordHash string
	JWTSecret         string
	JWTExpirationDur  time.Duration
	PipelineAPIKey    string

	// Presentation
	Currency string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Get values from environment variables with defaults
	config := &Config{
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", ""),

		// Server
		Port: getEnv("PORT", "8080"),

		// Database
		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		SQLitePath: getEnv("SQLITE_PATH", "monpatrimoine.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "monpatrimoine"),
		DBPassword: getEnv("DB_PASSWORD", "monpatrimoine"),
		DBName:     getEnv("DB_NAME", "monpatrimoine"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		// Auth
		OwnerPasswordHash: getEnv("OWNER_PASSWORD_HASH", ""),
		JWTSecret:         getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),
		PipelineAPIKey:    getEnv("PIPELINE_API_KEY", ""),

		Currency: getEnv("CURRENCY", "EUR"),
	}

	// Parse JWT expiration duration
	expStr := getEnv("JWT_EXPIRES_IN", "24h")
	expDur, err := time.ParseDuration(expStr)
	if err != nil {
		log.Printf("Warning: invalid JWT_EXPIRES_IN value '%s', falling back to 24h\n", expStr)
		expDur = 24 * time.Hour
	}
	config.JWTExpirationDur = expDur

	versionStr := getEnv("STORAGE_VERSION", "1")
	version, err := strconv.Atoi(versionStr)
	if err != nil {
		log.Printf("Warning: invalid STORAGE_VERSION value '%s', falling back to 1\n", versionStr)
		version = 1
	}
	config.StorageVersion = version

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// AuthEnabled reports whether an owner password is configured.
func (c *Config) AuthEnabled() bool {
	return c.OwnerPasswordHash != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
