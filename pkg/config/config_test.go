package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{
	"BANKIST_ADDR",
	"BANKIST_JWT_SECRET",
	"BANKIST_SESSION_TTL",
	"BANKIST_ACCESS_LOG",
	"BANKIST_SEED_FILE",
}

// clearEnv blanks every variable for the test and unsets it so godotenv can
// fill it in. t.Setenv restores the original values afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadFile_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, []byte(DevJWTSecret), cfg.JWTSecret)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.Equal(t, "access_log.json", cfg.AccessLog)
	assert.Empty(t, cfg.SeedFile)
}

func TestLoadFile_DotEnvAndOverrides(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"BANKIST_ADDR=:9090\nBANKIST_JWT_SECRET=from-file\nBANKIST_SESSION_TTL=15m\nBANKIST_SEED_FILE=seed.yaml\n",
	), 0o600))
	t.Setenv("BANKIST_JWT_SECRET", "from-env")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, []byte("from-env"), cfg.JWTSecret)
	assert.Equal(t, 15*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "seed.yaml", cfg.SeedFile)
}

func TestLoadFile_InvalidTTL(t *testing.T) {
	for _, ttl := range []string{"soon", "-5m", "0s"} {
		clearEnv(t)
		t.Setenv("BANKIST_SESSION_TTL", ttl)

		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
		assert.ErrorContains(t, err, "BANKIST_SESSION_TTL", "ttl %q", ttl)
	}
}
