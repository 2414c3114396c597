package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	SecretKey string // Required: HS256 session token signing secret
	Issuer    string // Optional: issuer claim for session tokens (default: gkrp-portal)
	BaseURL   string // Optional: public address used in invite links (default: http://localhost:8080)

	DatabaseFile   string        // Optional: path to SQLite database file (default: ./portal.db)
	InviteTTLHours int           // Optional: invite validity window (default: 72)
	SessionTTL     time.Duration // Optional: session token lifetime (default: 12h)

	// Initial admin credentials, applied only when the user table is empty.
	AdminUsername string // Optional: seed admin username
	AdminPassword string // Optional: seed admin password
	AdminEmail    string // Optional: seed admin email

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		SecretKey: os.Getenv("PORTAL_SECRET_KEY"),
		Issuer:    getEnvOrDefault("PORTAL_ISSUER", "gkrp-portal"),
		BaseURL:   getEnvOrDefault("PORTAL_BASE_URL", "http://localhost:8080"),

		DatabaseFile:   getEnvOrDefault("PORTAL_DATABASE_FILE", "portal.db"),
		InviteTTLHours: getEnvIntOrDefault("PORTAL_INVITE_TTL_HOURS", 72),
		SessionTTL:     getEnvDurationOrDefault("PORTAL_SESSION_TTL", 12*time.Hour),

		AdminUsername: os.Getenv("PORTAL_ADMIN_USERNAME"),
		AdminPassword: os.Getenv("PORTAL_ADMIN_PASSWORD"),
		AdminEmail:    os.Getenv("PORTAL_ADMIN_EMAIL"),

		Env:                 getEnvOrDefault("ENV", "dev"),
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
