package config

import (
	"testing"
	"time"

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
		"cancellation": map[string]any{
			"lateWindow": "24h",
		},
		"rateLimit": map[string]any{
			"failOpen": true,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "CANCELLATION_LATEWINDOW", want: "cancellation.lateWindow"},
		{envKey: "RATELIMIT_FAILOPEN", want: "rateLimit.failOpen"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 24*time.Hour, cfg.Cancellation.LateWindow)
	assert.Equal(t, defaultAccessTTL, cfg.Auth.AccessTTL)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, 100*time.Millisecond, cfg.Database.SlowQueryThreshold)
	assert.Equal(t, 5*time.Second, cfg.Database.PoolMonitorInterval)
	assert.Equal(t, 50*time.Millisecond, cfg.Database.PoolWaitWarn)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Cancellation: &CancellationConfig{LateWindow: 48 * time.Hour},
		Auth:         &AuthConfig{BcryptCost: 10, AccessTTL: time.Hour},
		Database:     &DatabaseConfig{PoolMonitorInterval: time.Second},
	}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	applyDefaults(cfg)

	assert.Equal(t, "1MB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 48*time.Hour, cfg.Cancellation.LateWindow)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, time.Hour, cfg.Auth.AccessTTL)
	assert.Zero(t, cfg.Database.SlowQueryThreshold, "an explicit database section may disable slow-query logging")
	assert.Equal(t, time.Second, cfg.Database.PoolMonitorInterval)
}
