package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Auth. Empty disables bearer checks on /api routes.
	APIKey string

	// Worker pool
	WorkerCount         int
	MaxQueueSize        int
	MaxConcurrentRender int

	// Request limits
	MaxUploadBytes int64
	MaxExportBytes int64

	// Job state
	JobTTL time.Duration

	// PDF
	PDFFallbackPdftotext bool

	// Export labels
	EventTitle     string
	TimezoneOffset int // hours east of UTC
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		APIKey: os.Getenv("QABOARD_API_KEY"),

		WorkerCount:         envInt("WORKER_COUNT", 2),
		MaxQueueSize:        envInt("MAX_QUEUE_SIZE", 50),
		MaxConcurrentRender: envInt("MAX_CONCURRENT_RENDER", 4),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB
		MaxExportBytes: envInt64("MAX_EXPORT_BYTES", 20971520), // 20MB

		JobTTL: envDuration("JOB_TTL", 1*time.Hour),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),

		EventTitle:     envOr("EVENT_TITLE", "2025 AI 결산"),
		TimezoneOffset: envInt("EXPORT_TIMEZONE_OFFSET", 9),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 2
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 50
	}
	if cfg.MaxConcurrentRender <= 0 {
		cfg.MaxConcurrentRender = 4
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.MaxExportBytes <= 0 {
		cfg.MaxExportBytes = 20971520
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	if _, err := strconv.ParseUint(c.Port, 10, 16); err != nil {
		return fmt.Errorf("PORT must be a port number, got %q", c.Port)
	}
	if c.TimezoneOffset < -12 || c.TimezoneOffset > 14 {
		return fmt.Errorf("EXPORT_TIMEZONE_OFFSET out of range: %d", c.TimezoneOffset)
	}
	return nil
}

// Location is the zone export timestamps are displayed in.
func (c Config) Location() *time.Location {
	if c.TimezoneOffset == 9 {
		return time.FixedZone("KST", 9*60*60)
	}
	return time.FixedZone(fmt.Sprintf("UTC%+d", c.TimezoneOffset), c.TimezoneOffset*60*60)
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
