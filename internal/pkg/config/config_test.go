//go:build unit

package config_test

import (
	"encoding/base64"
	"os"
	"testing"

	"table-reservation/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PORT", "8080")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "reservations")
	t.Setenv("COOKIE_HASH_KEY", base64.StdEncoding.EncodeToString(make([]byte, 32)))
	t.Setenv("COOKIE_BLOCK_KEY", base64.StdEncoding.EncodeToString(make([]byte, 32)))
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "Le Gourmet", cfg.Restaurant.Name)
	assert.Equal(t, 15, cfg.Restaurant.TotalTables)
	assert.Equal(t, 4, cfg.Restaurant.SeatsPerTable)
	assert.Equal(t, 12, cfg.Restaurant.FirstSeatingHour)
	assert.Equal(t, 21, cfg.Restaurant.LastSeatingHour)
	assert.Equal(t, "smtp", cfg.Mail.Driver)
	assert.Equal(t, "localhost", cfg.Mail.SMTPHost)
	assert.Equal(t, 25, cfg.Mail.SMTPPort)
	assert.Equal(t, "auto", cfg.Mail.SMTPStartTLS)
	assert.Equal(t, "memory", cfg.Confirmation.Store)
	assert.Empty(t, cfg.NATS.URL)
}

func TestLoadConfig_Rejects(t *testing.T) {
	t.Run("missing port", func(t *testing.T) {
		setRequiredEnv(t)
		// Setenv registers the restore; Unsetenv makes the variable absent.
		require.NoError(t, os.Unsetenv("PORT"))

		_, err := config.LoadConfig()
		assert.ErrorContains(t, err, "PORT")
	})

	t.Run("blank port", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("PORT", "  ")

		_, err := config.LoadConfig()
		assert.ErrorContains(t, err, "PORT must not be blank")
	})

	t.Run("unknown timezone", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("RESTAURANT_TIMEZONE", "Mars/Olympus")

		_, err := config.LoadConfig()
		assert.ErrorContains(t, err, "RESTAURANT_TIMEZONE")
	})

	t.Run("short block key", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("COOKIE_BLOCK_KEY", base64.StdEncoding.EncodeToString(make([]byte, 10)))

		_, err := config.LoadConfig()
		assert.ErrorContains(t, err, "COOKIE_BLOCK_KEY")
	})
}

func TestSessionConfig_Keys(t *testing.T) {
	cfg := config.SessionConfig{
		HashKey:  base64.RawStdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef0")),
		BlockKey: base64.StdEncoding.EncodeToString([]byte("0123456789abcdef")),
	}

	hashKey, blockKey, err := cfg.Keys()
	require.NoError(t, err)
	assert.Len(t, hashKey, 33)
	assert.Len(t, blockKey, 16)

	cfg.HashKey = "  "
	_, _, err = cfg.Keys()
	assert.ErrorContains(t, err, "COOKIE_HASH_KEY")
}

func TestDBConfig_BuildDSN(t *testing.T) {
	cfg := config.DBConfig{
		Host:     "db",
		Port:     "5432",
		User:     "app",
		Password: "secret",
		DBName:   "reservations",
		SSLMode:  "disable",
		TimeZone: "Europe/Paris",
	}

	assert.Equal(t, "postgres://app:secret@db:5432/reservations?sslmode=disable&timezone=Europe/Paris", cfg.BuildDSN())
}
