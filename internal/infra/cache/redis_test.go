package cache

import (
	"io"
	"log/slog"
	"testing"

	"staffing/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newParams(t *testing.T, cfg *config.RedisConfig) Params {
	return Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{Redis: cfg},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNewRedis_NilWhenUnconfigured(t *testing.T) {
	client, err := NewRedis(newParams(t, nil))
	require.NoError(t, err)
	assert.Nil(t, client)

	client, err = NewRedis(newParams(t, &config.RedisConfig{}))
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestNewRedis_InvalidURL(t *testing.T) {
	_, err := NewRedis(newParams(t, &config.RedisConfig{URL: "http://not-redis"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse redis url")
}

func TestNewClient_AppliesPoolSettings(t *testing.T) {
	client, err := newClient(&config.RedisConfig{URL: "redis://localhost:6379/2", PoolSize: 7, MinIdleConns: 2})
	require.NoError(t, err)
	defer client.Close()

	opts := client.Options()
	assert.Equal(t, 7, opts.PoolSize)
	assert.Equal(t, 2, opts.MinIdleConns)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, redisPoolTimeout, opts.PoolTimeout)
}
