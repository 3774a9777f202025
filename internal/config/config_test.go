package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Port:         "8460",
		Env:          "development",
		JWTSecret:    "a-development-secret-that-is-long-enough!",
		AssistantURL: "http://localhost:9090/functions/assistant",
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid development config", func(t *testing.T) {
		require.NoError(t, validConfig().Validate())
	})

	t.Run("missing port", func(t *testing.T) {
		cfg := validConfig()
		cfg.Port = ""
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "PORT")
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.JWTSecret = ""
		require.Error(t, cfg.Validate())
	})

	t.Run("missing assistant url", func(t *testing.T) {
		cfg := validConfig()
		cfg.AssistantURL = ""
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ASSISTANT_URL")
	})
}

func TestValidateProduction(t *testing.T) {
	prod := func() *Config {
		cfg := validConfig()
		cfg.Env = "production"
		cfg.DBPassword = "s0me-str0ng-db-password"
		cfg.AdminPasswordHash = "$2a$10$abcdefghijklmnopqrstuv"
		return cfg
	}

	t.Run("valid production config", func(t *testing.T) {
		require.NoError(t, prod().Validate())
	})

	t.Run("default jwt secret rejected", func(t *testing.T) {
		cfg := prod()
		cfg.JWTSecret = "your-secret-key-change-in-production"
		require.Error(t, cfg.Validate())
	})

	t.Run("short jwt secret rejected", func(t *testing.T) {
		cfg := prod()
		cfg.JWTSecret = "short"
		require.Error(t, cfg.Validate())
	})

	t.Run("missing admin password hash rejected", func(t *testing.T) {
		cfg := prod()
		cfg.AdminPasswordHash = ""
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ADMIN_PASSWORD_HASH")
	})

	t.Run("weak db password rejected", func(t *testing.T) {
		cfg := prod()
		cfg.DBPassword = "password"
		require.Error(t, cfg.Validate())
	})
}
