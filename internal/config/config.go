package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"print-order-backend/internal/lifecycle"
)

type Config struct {
	// Supabase
	SupabaseURL            string
	SupabasePublishableKey string
	SupabaseJWTSecret      string
	SupabaseStorageBucket  string

	// Database
	DatabaseURL string

	// Retention policy (hours)
	DeliveredFileTTLHours         int
	DeliveredPaymentProofTTLHours int

	// Cleanup scheduler shared secret (optional)
	CleanupSecret string

	// Server
	Port        string
	Environment string
	BaseURL     string
}

func Load() (*Config, error) {
	cfg := &Config{
		SupabaseURL:            getEnv("SUPABASE_URL", ""),
		SupabasePublishableKey: getEnv("SUPABASE_PUBLISHABLE_KEY", ""),
		SupabaseJWTSecret:      getEnv("SUPABASE_JWT_SECRET", ""),
		SupabaseStorageBucket:  getEnv("SUPABASE_STORAGE_BUCKET", "documents"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		DeliveredFileTTLHours: getEnvInt("DELIVERED_FILE_TTL_HOURS", 1),
		// PAYMENT_PROOF_TTL_HOURS is the legacy name for the proof window.
		DeliveredPaymentProofTTLHours: getEnvInt("DELIVERED_PAYMENT_PROOF_TTL_HOURS",
			getEnvInt("PAYMENT_PROOF_TTL_HOURS", 24)),

		CleanupSecret: getEnv("CLEANUP_SECRET", ""),

		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.SupabaseURL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	if c.SupabasePublishableKey == "" {
		return fmt.Errorf("SUPABASE_PUBLISHABLE_KEY is required")
	}
	if c.SupabaseJWTSecret == "" {
		return fmt.Errorf("SUPABASE_JWT_SECRET is required")
	}
	if c.DeliveredFileTTLHours <= 0 {
		return fmt.Errorf("DELIVERED_FILE_TTL_HOURS must be positive")
	}
	if c.DeliveredPaymentProofTTLHours <= 0 {
		return fmt.Errorf("DELIVERED_PAYMENT_PROOF_TTL_HOURS must be positive")
	}
	return nil
}

// LifecyclePolicy converts the configured hour counts into the retention
// policy consumed by the status state machine.
func (c *Config) LifecyclePolicy() lifecycle.Policy {
	return lifecycle.Policy{
		DeliveredFileTTL:         time.Duration(c.DeliveredFileTTLHours) * time.Hour,
		DeliveredPaymentProofTTL: time.Duration(c.DeliveredPaymentProofTTLHours) * time.Hour,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
