// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no sources yields the
// defaults.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that earlier configs take priority and
// later ones only fill the gaps.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://flags:1"}},
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://env:2", RateBurst: 3}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://flags:1", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3, cfg.Adapter.RateBurst)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("ADAPTER_ADDRESS", "http://env-host:3000")
	t.Setenv("APP_PAGE_LIMIT", "25")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "http://env-host:3000", b.configs[0].Adapter.HTTPAddress)
	assert.Equal(t, 25, b.configs[0].App.PageLimit)
}

func TestWithEnv_InvalidValueSetsError(t *testing.T) {
	t.Setenv("APP_PAGE_LIMIT", "many")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsParsedConfig(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-guest", "-page-limit", "5"})

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.True(t, b.configs[0].App.Guest)
	assert.Equal(t, 5, b.configs[0].App.PageLimit)
}

func TestWithFlags_UnknownFlagSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-no-such-flag"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_LoadsPathFromEarlierSource(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"storage": map[string]any{"db": map[string]any{"dsn": "from-json.db"}},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "from-json.db", b.configs[1].Storage.DB.DSN)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: filepath.Join(t.TempDir(), "missing.json"),
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

func TestWithDotEnv_LoadsFileWithoutOverriding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("STORAGE_DB_DSN=dotenv.db\nADAPTER_RATE_BURST=7\n"), 0o600))

	t.Setenv("STORAGE_DB_DSN", "process.db")
	// registers cleanup for the key the dotenv file sets
	t.Setenv("ADAPTER_RATE_BURST", "")
	require.NoError(t, os.Unsetenv("ADAPTER_RATE_BURST"))

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{EnvFilePath: path})
	b.withDotEnv().withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "process.db", b.configs[1].Storage.DB.DSN)
	assert.Equal(t, 7, b.configs[1].Adapter.RateBurst)
}

func TestWithDotEnv_MissingExplicitFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		EnvFilePath: filepath.Join(t.TempDir(), "missing.env"),
	})
	b.withDotEnv()

	assert.Error(t, b.err)
}

// ── GetStructuredConfig / GetClientConfig ─────────────────────────────────────

func TestGetStructuredConfig_Priority(t *testing.T) {
	t.Chdir(t.TempDir())

	path := writeTempJSONConfig(t, map[string]any{
		"adapter": map[string]any{
			"http_address":    "http://json:3000",
			"request_timeout": "5s",
			"rate_burst":      4,
		},
		"app": map[string]any{"page_limit": 30},
	})
	t.Setenv("CONFIG", path)
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "9s")

	cfg, err := GetStructuredConfig([]string{"-a", "127.0.0.1:4000"})
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:4000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 9*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 4, cfg.Adapter.RateBurst)
	assert.Equal(t, 30, cfg.App.PageLimit)
	assert.Equal(t, "finance_client.db", cfg.Storage.DB.DSN)
}

func TestGetClientConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 10, cfg.App.PageLimit)
	assert.Equal(t, 300*time.Millisecond, cfg.App.DemoDelay)
	assert.Equal(t, time.Minute, cfg.Workers.RefreshInterval)
	assert.False(t, cfg.App.Guest)
}

func TestClientConfigValidate(t *testing.T) {
	valid := func() *ClientConfig { return newClientConfig(Defaults()) }

	tests := []struct {
		name    string
		mutate  func(*ClientConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*ClientConfig) {}},
		{name: "empty dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "empty address", mutate: func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero timeout", mutate: func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "negative rate", mutate: func(c *ClientConfig) { c.Adapter.RateLimit = -1 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero page limit", mutate: func(c *ClientConfig) { c.App.PageLimit = 0 }, wantErr: ErrInvalidAppConfigs},
		{name: "bad entry url", mutate: func(c *ClientConfig) { c.App.EntryURL = "http://[::1" }, wantErr: ErrInvalidAppConfigs},
		{name: "zero refresh interval", mutate: func(c *ClientConfig) { c.Workers.RefreshInterval = 0 }, wantErr: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
