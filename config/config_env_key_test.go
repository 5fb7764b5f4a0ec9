package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"supabase": map[string]any{
			"jwtSecret":        "",
			"accessCookieName": "",
		},
		"webhook": map[string]any{
			"hmacMessageHeaderName": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SUPABASE_JWTSECRET", want: "supabase.jwtSecret"},
		{envKey: "SUPABASE_ACCESSCOOKIENAME", want: "supabase.accessCookieName"},
		{envKey: "WEBHOOK_HMACMESSAGEHEADERNAME", want: "webhook.hmacMessageHeaderName"},
		{envKey: "SENTRY_DSN", want: "sentry.dsn"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "sb-access-token", cfg.Supabase.AccessCookieName)
	assert.Equal(t, defaultAvatarBatchSize, cfg.Storage.AvatarBatchSize)
	assert.Equal(t, "x-supabase-signature", cfg.Webhook.SignatureHeaderName)
	assert.Equal(t, float64(defaultFallbackPrice), cfg.Payment.FallbackPrice)
	assert.Equal(t, defaultSearchLimit, cfg.Spotify.DefaultLimit)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Storage: &StorageConfig{AvatarBatchSize: 25},
		Payment: &PaymentConfig{FallbackPrice: 75},
	}

	applyDefaults(cfg)

	assert.Equal(t, 25, cfg.Storage.AvatarBatchSize)
	assert.Equal(t, float64(75), cfg.Payment.FallbackPrice)
}
