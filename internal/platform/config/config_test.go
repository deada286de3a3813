package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("DB_DSN", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("TOKEN_TTL_HOURS", "")
	t.Setenv("SEED_DATA", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Empty(t, cfg.DBDSN)
	assert.Equal(t, DefaultTokenTTL, cfg.TokenTTL)
	assert.True(t, cfg.Seed)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_TokenTTLOverride(t *testing.T) {
	t.Setenv("TOKEN_TTL_HOURS", "12")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 12*time.Hour, cfg.TokenTTL)
}

func TestLoad_RejectsBadTTL(t *testing.T) {
	t.Setenv("TOKEN_TTL_HOURS", "zero")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("TOKEN_TTL_HOURS", "-1")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoad_ProductionSecretRules(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("TOKEN_TTL_HOURS", "")

	// secret default en prod => rechazado
	t.Setenv("JWT_SECRET", "")
	_, err := Load()
	assert.Error(t, err)

	// secret corto en prod => rechazado
	t.Setenv("JWT_SECRET", "short")
	_, err = Load()
	assert.Error(t, err)

	// secret largo => ok
	t.Setenv("JWT_SECRET", "this-is-a-sufficiently-long-production-secret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}
