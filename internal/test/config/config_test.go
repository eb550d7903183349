package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"print-order-backend/internal/config"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SUPABASE_URL", "https://x.supabase.co")
	t.Setenv("SUPABASE_PUBLISHABLE_KEY", "anon-key")
	t.Setenv("SUPABASE_JWT_SECRET", "jwt-secret")
	t.Setenv("DELIVERED_FILE_TTL_HOURS", "")
	t.Setenv("DELIVERED_PAYMENT_PROOF_TTL_HOURS", "")
	t.Setenv("PAYMENT_PROOF_TTL_HOURS", "")
	t.Setenv("PORT", "")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "documents", cfg.SupabaseStorageBucket)
	assert.Equal(t, 1, cfg.DeliveredFileTTLHours)
	assert.Equal(t, 24, cfg.DeliveredPaymentProofTTLHours)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoad_LegacyProofTTLFallback(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PAYMENT_PROOF_TTL_HOURS", "48")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 48, cfg.DeliveredPaymentProofTTLHours)
}

func TestLoad_ExplicitProofTTLWinsOverLegacy(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PAYMENT_PROOF_TTL_HOURS", "48")
	t.Setenv("DELIVERED_PAYMENT_PROOF_TTL_HOURS", "12")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.DeliveredPaymentProofTTLHours)
}

func TestLoad_MissingSupabaseURL(t *testing.T) {
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_PUBLISHABLE_KEY", "anon-key")
	t.Setenv("SUPABASE_JWT_SECRET", "jwt-secret")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLifecyclePolicy(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DELIVERED_FILE_TTL_HOURS", "2")
	t.Setenv("DELIVERED_PAYMENT_PROOF_TTL_HOURS", "36")

	cfg, err := config.Load()
	require.NoError(t, err)

	policy := cfg.LifecyclePolicy()
	assert.Equal(t, 2*time.Hour, policy.DeliveredFileTTL)
	assert.Equal(t, 36*time.Hour, policy.DeliveredPaymentProofTTL)
}
