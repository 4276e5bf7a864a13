package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultDatabaseURL = "sheetstash.db"
	defaultJWTSecret   = "change-me-jwt-secret"
	defaultJWTTTL      = "24h"
	defaultListenAddr  = ":8080"
	defaultUploadsDir  = "./uploads"

	defaultMaxFileBytes    = 10 << 20 // raw spreadsheet ceiling
	defaultMaxDatasetBytes = 5 << 20  // serialized payload ceiling, tighter than the raw one
)

// Config is the runtime configuration for the API server, loaded from env
// vars with local-development defaults.
type Config struct {
	DatabaseURL     string
	ListenAddr      string
	JWTSecret       string
	JWTTTL          time.Duration
	UploadsDir      string
	MaxFileBytes    int64
	MaxDatasetBytes int64
}

func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL: getEnv("DATABASE_URL", defaultDatabaseURL),
		ListenAddr:  getEnv("LISTEN_ADDR", defaultListenAddr),
		JWTSecret:   strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret)),
		UploadsDir:  getEnv("UPLOADS_DIR", defaultUploadsDir),
	}

	ttl, err := time.ParseDuration(getEnv("JWT_TTL", defaultJWTTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}
	cfg.JWTTTL = ttl

	cfg.MaxFileBytes, err = parseBytesEnv("MAX_FILE_BYTES", defaultMaxFileBytes)
	if err != nil {
		return nil, err
	}
	cfg.MaxDatasetBytes, err = parseBytesEnv("MAX_DATASET_BYTES", defaultMaxDatasetBytes)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBytesEnv(key string, fallback int64) (int64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return n, nil
}
