package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Storage backends selectable through STORAGE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendMongo    = "mongo"
	BackendPostgres = "postgres"
)

type Config struct {
	Port           string
	Host           string   // Raw HOST env (e.g. https://api.neurosphere.app)
	AllowedHost    string   // Hostname only for strict host check (production only)
	Environment    string   // ENV: production, development, etc.
	AllowedOrigins []string // CORS: from ALLOWED_ORIGINS or FRONTEND_URL(s)
	TrustProxy     bool     // TRUST_PROXY: take client IPs from X-Forwarded-For

	StorageBackend string
	RedisURI       string
	MongoURI       string
	PostgresURI    string

	AutosaveInterval time.Duration
	InsightDelay     time.Duration
	InsightMinLength int

	LogLevel  string
	LogFormat string

	// Warnings collects fallbacks applied while parsing; logged once the logger exists.
	Warnings []string
}

func Load() (*Config, error) {
	env := strings.ToLower(strings.TrimSpace(getEnv("ENV", "development")))
	host := getEnv("HOST", "http://localhost:8080")

	// AllowedHost is only set in production; host check is skipped in development
	var allowedHost string
	if env == "production" {
		allowedHost = bareHost(host)
	}

	allowedOrigins := parseOrigins(getEnv("ALLOWED_ORIGINS", ""))
	if len(allowedOrigins) == 0 {
		for _, u := range []string{getEnv("FRONTEND_URL", "http://localhost:3000"), getEnv("FRONTEND_URL_2", "")} {
			u = strings.TrimSpace(u)
			if u != "" && !containsOrigin(allowedOrigins, u) {
				allowedOrigins = append(allowedOrigins, u)
			}
		}
	}
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		Host:           host,
		AllowedHost:    allowedHost,
		Environment:    env,
		AllowedOrigins: allowedOrigins,
		TrustProxy:     parseBool(getEnv("TRUST_PROXY", "false")),
		StorageBackend: strings.ToLower(strings.TrimSpace(getEnv("STORAGE_BACKEND", BackendMemory))),
		RedisURI:       getEnv("REDIS_URI", "redis://localhost:6379/0"),
		MongoURI:       getEnv("MONGODB_URI", getEnv("MONGO_URI", "mongodb://localhost:27017/neurosphere")),
		PostgresURI:    getEnv("POSTGRES_URI", "postgres://localhost:5432/neurosphere?sslmode=disable"),
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:      strings.ToLower(getEnv("LOG_FORMAT", "json")),
	}

	cfg.AutosaveInterval = cfg.durationEnv("AUTOSAVE_INTERVAL", 30*time.Second)
	cfg.InsightDelay = cfg.durationEnv("INSIGHT_DELAY", 2*time.Second)
	cfg.InsightMinLength = cfg.intEnv("INSIGHT_MIN_LENGTH", 20)

	switch cfg.StorageBackend {
	case BackendMemory, BackendRedis, BackendMongo, BackendPostgres:
	default:
		return nil, fmt.Errorf("config: unknown STORAGE_BACKEND %q", cfg.StorageBackend)
	}

	return cfg, nil
}

// IsProduction returns true when ENV is set to "production".
func (c *Config) IsProduction() bool {
	return strings.ToLower(strings.TrimSpace(c.Environment)) == "production"
}

func (c *Config) durationEnv(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		c.Warnings = append(c.Warnings, fmt.Sprintf("%s=%q is not a positive duration, using %s", key, raw, def))
		return def
	}
	return d
}

func (c *Config) intEnv(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		c.Warnings = append(c.Warnings, fmt.Sprintf("%s=%q is not a non-negative integer, using %d", key, raw, def))
		return def
	}
	return n
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && b
}

func bareHost(host string) string {
	for _, prefix := range []string{"https://", "http://"} {
		host = strings.TrimPrefix(host, prefix)
	}
	if idx := strings.Index(host, "/"); idx != -1 {
		host = host[:idx]
	}
	if idx := strings.Index(host, ":"); idx != -1 {
		host = host[:idx]
	}
	return strings.TrimSpace(host)
}

func parseOrigins(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func containsOrigin(list []string, o string) bool {
	o = strings.TrimSpace(strings.ToLower(o))
	for _, v := range list {
		if strings.TrimSpace(strings.ToLower(v)) == o {
			return true
		}
	}
	return false
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
