package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Batch extraction
	InputDir  string
	OutputDir string

	// Worker pool
	WorkerCount  int
	MaxQueueSize int

	// Upload limits (serve mode)
	MaxUploadBytes int64

	// Job state
	JobTTL time.Duration

	// Auth (serve mode; empty disables auth)
	APIKey string

	// Sidecar policy: drop output files for documents with no headings.
	SkipEmptyOutlines bool
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8091"),

		InputDir:  envOr("INPUT_DIR", "input"),
		OutputDir: envOr("OUTPUT_DIR", "output"),

		WorkerCount:  envInt("WORKER_COUNT", 4),
		MaxQueueSize: envInt("MAX_QUEUE_SIZE", 100),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		JobTTL: envDuration("JOB_TTL", 1*time.Hour),

		APIKey: os.Getenv("PDFOUTLINE_API_KEY"),

		SkipEmptyOutlines: envBool("SKIP_EMPTY_OUTLINES", true),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
