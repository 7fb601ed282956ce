package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		viper.Reset()

		cfg := Load()

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "postgres", cfg.Storage.Driver)
		assert.Equal(t, 24, cfg.JWT.ExpiryHours)
		assert.Equal(t, 100000, cfg.Credentials.Iterations)
		assert.False(t, cfg.Credentials.LegacySalt)
		assert.Equal(t, time.Minute, cfg.RateLimit.LoginWindow)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.False(t, cfg.Log.JSON)
	})

	t.Run("environment overrides", func(t *testing.T) {
		viper.Reset()
		t.Setenv("PORT", "9090")
		t.Setenv("JWT_EXPIRY_HOURS", "2")
		t.Setenv("CREDENTIALS_LEGACY_SALT", "true")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("RATELIMIT_LOGIN_WINDOW", "30s")
		t.Setenv("STORAGE_DRIVER", "memory")

		cfg := Load()

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 2, cfg.JWT.ExpiryHours)
		assert.True(t, cfg.Credentials.LegacySalt)
		assert.True(t, cfg.Log.JSON)
		assert.Equal(t, 30*time.Second, cfg.RateLimit.LoginWindow)
		assert.Equal(t, "memory", cfg.Storage.Driver)
	})
}
