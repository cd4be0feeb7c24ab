package config

import (
	"encoding/json"
	"os"
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

// TestBuild_DefaultsOnly verifies that the defaults layer alone is a valid
// configuration.
func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, defaults(), cfg)
}

// TestBuild_EmptyBuilder verifies that a config with no layers fails
// validation.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterLayersOverride verifies that non-zero fields of later layers
// override earlier ones while zero fields keep earlier values.
func TestBuild_LaterLayersOverride(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{Backend: BackendSQLite}},
		&StructuredConfig{Storage: Storage{Path: "/tmp/x.db"}, App: App{Locale: LocaleArabic}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "/tmp/x.db", cfg.Storage.Path)
	assert.Equal(t, DefaultStorageKey, cfg.Storage.Key)
	assert.Equal(t, LocaleArabic, cfg.App.Locale)
	assert.Equal(t, DefaultValidationTTL, cfg.App.ValidationTTL)
}

// ── withEnv / withFlags ───────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("STORAGE_KEY", "env-key")

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-key", b.configs[0].Storage.Key)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("APP_VALIDATION_TTL", "forever")

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithFlags_AppendsConfig(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags([]string{"-k", "flag-key"}))

	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag-key", b.configs[0].Storage.Key)
}

func TestWithFlags_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-nope"})
	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Storage.Backend = BackendMemory
	payload.App.ValidationTTL = Duration(time.Second)
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, BackendMemory, b.configs[1].Storage.Backend)
	assert.Equal(t, time.Second, b.configs[1].App.ValidationTTL)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Storage.Key = "last-wins"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/first/ignored.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].Storage.Key)
}

// ── GetStructuredConfig / GetClientConfig ─────────────────────────────────────

// TestGetStructuredConfig_Priority verifies defaults < env < flags < JSON.
func TestGetStructuredConfig_Priority(t *testing.T) {
	clearEnvVars(t)

	payload := StructuredJSONConfig{}
	payload.App.Locale = LocaleArabic
	path := writeTempJSONConfig(t, payload)

	t.Setenv("STORAGE_BACKEND", BackendSQLite)
	t.Setenv("STORAGE_KEY", "env-key")

	cfg, err := GetStructuredConfig([]string{"-k", "flag-key", "-p", "/tmp/n.db", "-c", path})
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "flag-key", cfg.Storage.Key)
	assert.Equal(t, "/tmp/n.db", cfg.Storage.Path)
	assert.Equal(t, LocaleArabic, cfg.App.Locale)
	assert.Equal(t, DefaultValidationTTL, cfg.App.ValidationTTL)
}

func TestGetClientConfig_MapsFields(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetClientConfig([]string{"-b", "memory", "-log", "/tmp/notes.log"})
	require.NoError(t, err)

	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, DefaultStoragePath, cfg.Storage.Path)
	assert.Equal(t, DefaultStorageKey, cfg.Storage.Key)
	assert.Equal(t, DefaultValidationTTL, cfg.App.ValidationTTL)
	assert.Equal(t, DefaultLocale, cfg.App.Locale)
	assert.Equal(t, "/tmp/notes.log", cfg.Log.Path)
}

func TestGetClientConfig_InvalidBackend(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetClientConfig([]string{"-b", "ftp"})
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}
