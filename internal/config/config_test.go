package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/inovacc/fitbook/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) (string, bool) { return "", false }

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := load(filepath.Join(t.TempDir(), "absent.ini"), noEnv)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultConfig(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	content := `[booking]
delay = 250ms
failure_rate = 0.5

[store]
backend = sqlite
path = /tmp/fitbook-test.db
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := load(path, noEnv)
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.Booking.Delay)
	assert.Equal(t, 0.5, cfg.Booking.FailureRate)
	assert.Equal(t, time.Second, cfg.Booking.Highlight, "unset keys keep defaults")
	assert.Equal(t, model.BackendSQLite, cfg.Store.Backend)
	assert.Equal(t, "/tmp/fitbook-test.db", cfg.Store.Path)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = warn\n"), 0o600))

	cfg, err := load(path, envMap(map[string]string{
		"FITBOOK_LOG_LEVEL":       "debug",
		"FITBOOK_STORE_BACKEND":   "memory",
		"FITBOOK_BOOKING_DELAY":   "0s",
		"FITBOOK_CATALOG_UNKNOWN": "ignored",
	}))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, model.BackendMemory, cfg.Store.Backend)
	assert.Equal(t, time.Duration(0), cfg.Booking.Delay)
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	content := `[booking]
failure_rate = 1.5

[store]
backend = etcd
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, err := load(path, noEnv)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Fields, "booking.failure_rate")
	assert.Contains(t, ve.Fields, "store.backend")
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoad_RedisNeedsURL(t *testing.T) {
	_, err := load(filepath.Join(t.TempDir(), "absent.ini"), envMap(map[string]string{
		"FITBOOK_STORE_BACKEND": "redis",
	}))
	require.NoError(t, err, "default redis_url satisfies required_if")

	cfg := model.DefaultConfig()
	cfg.Store.Backend = model.BackendRedis
	cfg.Store.RedisURL = ""

	var ve *ValidationError
	require.True(t, errors.As(Validate(cfg), &ve))
	assert.Contains(t, ve.Fields, "store.redis_url")
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")

	want := model.DefaultConfig()
	want.Booking.Delay = 1500 * time.Millisecond
	want.Booking.FailureRate = 0.3
	want.Store.Backend = model.BackendSQLite

	require.NoError(t, Save(want, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "1.5s", "durations are written in Go syntax")

	got, err := load(path, noEnv)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEnvName(t *testing.T) {
	assert.Equal(t, "FITBOOK_BOOKING_FAILURE_RATE", EnvName("booking", "failure_rate"))
}

func TestValidate_Defaults(t *testing.T) {
	assert.NoError(t, Validate(model.DefaultConfig()))
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Write(model.DefaultConfig(), &buf))
	assert.Contains(t, buf.String(), "[booking]")
	assert.Contains(t, buf.String(), "700ms")
	assert.Contains(t, buf.String(), "backend")
}
