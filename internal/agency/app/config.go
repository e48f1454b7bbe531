package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Env       string // Environment (dev, staging, prod) (default: dev)
	LogLevel  string // Log level (debug, info, warn, error) (default: info)
	LogFormat string // Log format (json, text) (default: json)

	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
	DatabaseFile        string        // Path to SQLite database file (default: ./agency.db)

	SignInURL      string // Where unauthenticated browsers get redirected (default: /sign-in)
	ProvisionToken string // Optional: if set, required to provision agencies

	// Identity provider. "hosted" verifies sessions against the provider's
	// JWKS endpoint and pushes role metadata over its REST API. "static"
	// verifies HS256 tokens with a shared secret and keeps metadata in
	// memory, for dev and e2e runs.
	IdentityMode          string // hosted or static (default: static)
	IdentityIssuer        string // Required: issuer claim on session tokens
	IdentityJWKSURL       string // hosted mode: JWKS endpoint
	IdentityAPIURL        string // hosted mode: provider REST API base URL
	IdentityAPIKey        string // hosted mode: bearer key for metadata updates
	IdentitySessionSecret string // static mode: HS256 shared secret

	HousekeepingInterval  time.Duration // Housekeeping interval (default: 1h)
	NotificationRetention time.Duration // How long notifications are kept (default: 90 days)
}

func LoadConfig() Config {
	cfg := Config{
		Env:       getEnvOrDefault("ENV", "dev"),
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "json"),

		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		DatabaseFile:        getEnvOrDefault("AGENCY_DATABASE_FILE", "agency.db"),

		SignInURL:      getEnvOrDefault("AGENCY_SIGN_IN_URL", "/sign-in"),
		ProvisionToken: os.Getenv("AGENCY_PROVISION_TOKEN"),

		IdentityMode:          getEnvOrDefault("IDENTITY_MODE", "static"),
		IdentityIssuer:        os.Getenv("IDENTITY_ISSUER"),
		IdentityJWKSURL:       os.Getenv("IDENTITY_JWKS_URL"),
		IdentityAPIURL:        os.Getenv("IDENTITY_API_URL"),
		IdentityAPIKey:        os.Getenv("IDENTITY_API_KEY"),
		IdentitySessionSecret: os.Getenv("IDENTITY_SESSION_SECRET"),

		HousekeepingInterval:  getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
		NotificationRetention: getEnvDurationOrDefault("NOTIFICATION_RETENTION", 90*24*time.Hour),
	}

	if cfg.IdentityIssuer == "" {
		cfg.IdentityIssuer = "agencyhub-dev"
	}

	return cfg
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

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
