package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 32, cfg.Ledger.Shards)
	assert.Equal(t, "file", cfg.Catalog.Source)
	assert.Equal(t, "AtomicCards.json", cfg.Catalog.Path)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LEDGER_SHARDS", "4")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 4, cfg.Ledger.Shards)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CATALOG_SOURCE=storage\nCATALOG_OBJECT=cards.json\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("CATALOG_SOURCE")
		os.Unsetenv("CATALOG_OBJECT")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "storage", cfg.Catalog.Source)
	assert.Equal(t, "cards.json", cfg.Catalog.Object)
}

func TestLoadConfig_InvalidCatalogSource(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "ftp")

	_, err := LoadConfig(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ftp")
}

func TestLoadConfig_NestedDefaults(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "sqlite")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.True(t, cfg.Server.Swagger)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "cards", cfg.Database.Name)
	assert.Equal(t, "catalog", cfg.Storage.Bucket)
}
