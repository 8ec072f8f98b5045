// Package config loads runtime configuration from .env and the environment.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	ServerPort    string
	GinMode       string
	MongoURI      string
	MongoDatabase string
	RedisURI      string

	AccessTokenSecret string
	AccessTokenExpiry time.Duration
	ClaimsCacheTTL    time.Duration

	LogFormat      string
	LogLevel       string
	MetricsEnabled bool

	RateLimitPerMinute int
	CORSAllowedOrigins []string

	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3UseSSL    bool

	StatsWorkers int
}

// Load reads configuration from a .env file, if present, and the process environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		MongoURI:      getEnvRequired("MONGO_URI"),
		MongoDatabase: getEnvRequired("MONGO_DATABASE"),
		RedisURI:      getEnv("REDIS_URI", "localhost:6379"),

		AccessTokenSecret: getEnvRequired("ACCESS_TOKEN_SECRET"),
		AccessTokenExpiry: parseDuration(getEnv("ACCESS_TOKEN_EXPIRY", "1h")),
		ClaimsCacheTTL:    parseDuration(getEnv("CLAIMS_CACHE_TTL", "5m")),

		LogFormat:      getEnv("LOG_FORMAT", "json"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		MetricsEnabled: parseBool(getEnv("METRICS_ENABLED", "true")),

		RateLimitPerMinute: parseInt(getEnv("RATE_LIMIT_PER_MINUTE", "60")),
		CORSAllowedOrigins: parseList(getEnv("CORS_ALLOWED_ORIGINS", "*")),

		S3Endpoint:  getEnv("S3_ENDPOINT", "localhost:9000"),
		S3AccessKey: getEnv("S3_ACCESS_KEY", "minioadmin"),
		S3SecretKey: getEnv("S3_SECRET_KEY", "minioadmin"),
		S3Bucket:    getEnv("S3_BUCKET", "ceslar-media"),
		S3UseSSL:    parseBool(getEnv("S3_USE_SSL", "false")),

		StatsWorkers: parseInt(getEnv("STATS_WORKERS", "2")),
	}
}

// getEnv reads an environment variable with a fallback default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvRequired reads an environment variable and exits if it is not set.
func getEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		slog.Error("required environment variable is not set", "key", key)
		os.Exit(1)
	}
	return value
}

// parseDuration parses a duration string and exits on error.
func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		slog.Error("invalid duration", "value", s)
		os.Exit(1)
	}
	return d
}

// parseInt parses a non-negative integer and exits on error.
func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		slog.Error("invalid integer", "value", s)
		os.Exit(1)
	}
	return n
}

// parseBool accepts "true" and "1" as true; anything else is false.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1"
}

// parseList splits a comma-separated list, dropping blanks.
func parseList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
