package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ENTITIES_FILE", "entities.toml")
	t.Setenv("DEFAULT_LOCALE", "fr")
	t.Setenv("SUPPORTED_LOCALES", "fr,en")
	t.Setenv("STORE_BACKEND", "memory")
}

func TestLoad_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, []string{"fr", "en"}, cfg.SupportedLocales)
	assert.True(t, cfg.AutoTranslate)
	assert.Equal(t, BackendMemory, cfg.StoreBackend)
}

func TestLoad_PostgresDefaultDSN(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("STORE_BACKEND", "postgres")
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Contains(t, cfg.DatabaseURL, "postgres://")
}

func TestLoad_InvalidDatabaseURL(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("STORE_BACKEND", "postgres")
	t.Setenv("DATABASE_URL", "pas-une-url")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_ScyllaRequiresHosts(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("STORE_BACKEND", "scylla")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("SCYLLA_HOSTS", "127.0.0.1,127.0.0.2")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"127.0.0.1", "127.0.0.2"}, cfg.ScyllaHosts)
}

func TestLoad_UnknownBackend(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("STORE_BACKEND", "dbase")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_SupportedMustStartWithDefault(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("SUPPORTED_LOCALES", "en,fr")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_AutoTranslateDisabled(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("AUTO_TRANSLATE", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.AutoTranslate)
}
