package app

import (
	"os"
	"strconv"
	"time"

	"github.com/staffroomhq/accounts/pkg/jwtx"
)

type Config struct {
	Issuer    string        // Optional: issuer claim for session tokens (default: accounts-service)
	JWTSecret string        // Required in production: HMAC secret for session tokens
	TokenTTL  time.Duration // Optional: session token lifetime (default: 30 days)

	StoreDriver   string // Optional: backing store, "sqlite" or "mongo" (default: sqlite)
	DatabaseFile  string // Optional: path to SQLite database file (default: ./accounts.db)
	MongoURI      string // Required when StoreDriver is "mongo"
	MongoDatabase string // Optional: mongo database name (default: accounts)
	PepperFile    string // Optional: path to file containing pepper for password hashing

	Env                 string        // Environment (development, staging, production) (default: development)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		Issuer:    getEnvOrDefault("ACCOUNTS_ISSUER", "accounts-service"),
		JWTSecret: os.Getenv("ACCOUNTS_JWT_SECRET"),
		TokenTTL:  getEnvDurationOrDefault("ACCOUNTS_TOKEN_TTL", jwtx.DefaultSessionTTL),

		StoreDriver:   getEnvOrDefault("ACCOUNTS_STORE_DRIVER", "sqlite"),
		DatabaseFile:  getEnvOrDefault("ACCOUNTS_DATABASE_FILE", "accounts.db"),
		MongoURI:      os.Getenv("ACCOUNTS_MONGO_URI"),
		MongoDatabase: getEnvOrDefault("ACCOUNTS_MONGO_DATABASE", "accounts"),
		PepperFile:    os.Getenv("ACCOUNTS_PEPPER_FILE"),

		Env:                 getEnvOrDefault("ENV", "development"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
