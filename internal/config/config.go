package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// Server
	Port      string
	PortProbe bool // probe for a free port at startup instead of failing
	Env       string

	// Database
	DatabaseURL string

	// Auth
	JWTSecret string

	// CORS
	AllowedOrigins []string

	// Demo mode enables the built-in demo credentials, the mock identity and
	// the degraded auth fallback. Never enabled by default in production.
	DemoMode bool

	// SeedEnabled mounts the destructive /api/seed/users endpoint.
	// Forced off in production regardless of the environment variable.
	SeedEnabled bool
}

func Load() *Config {
	env := getEnv("ENV", "development")
	isProduction := env == "production"

	cfg := &Config{
		// Server
		Port:      getEnv("PORT", "5001"),
		PortProbe: getBoolEnv("PORT_PROBE", false),
		Env:       env,

		// Database
		DatabaseURL: getEnv("DATABASE_URL", "postgres://localhost:5432/finadvisor?sslmode=disable"),

		// Auth
		JWTSecret: getEnv("JWT_SECRET", "dev-secret-change-in-production"),

		// CORS
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),

		DemoMode:    getBoolEnv("DEMO_MODE", !isProduction),
		SeedEnabled: getBoolEnv("SEED_ENABLED", !isProduction),
	}

	if isProduction {
		cfg.SeedEnabled = false
	}

	return cfg
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
