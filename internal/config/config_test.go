package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "libs.json", cfg.Source)
	assert.Equal(t, "site", cfg.SiteDir)
	assert.True(t, cfg.Strict)
	assert.Equal(t, "Library Downloads", cfg.PageTitle)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10.0, cfg.HTTP.RateLimitRPS)
	assert.Equal(t, 20, cfg.HTTP.RateLimitBurst)
	assert.False(t, cfg.HTTP.EnableHSTS)
	assert.False(t, cfg.HTTP.TrustProxy)
}

func TestLoad_EnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CATALOG_SOURCE", "https://cdn.example.com/libs.json")
	t.Setenv("CATALOG_STRICT", "false")
	t.Setenv("RATE_LIMIT_BURST", "5")
	t.Setenv("ENABLE_HSTS", "true")
	t.Setenv("TRUST_PROXY", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/libs.json", cfg.Source)
	assert.False(t, cfg.Strict)
	assert.Equal(t, 5, cfg.HTTP.RateLimitBurst)
	assert.True(t, cfg.HTTP.EnableHSTS)
	assert.True(t, cfg.HTTP.TrustProxy)
}

func TestLoad_InvalidValue(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("RATE_LIMIT_BURST", "lots")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadEnvFiles_DoesNotOverrideExistingEnv(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, ".env"), []byte("SITE_DIR=from_file\nPAGE_TITLE=From File\n"), 0644))
	chdir(t, tmp)

	t.Setenv("SITE_DIR", "from_env")
	t.Setenv("PAGE_TITLE", "")
	os.Unsetenv("PAGE_TITLE")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "from_env", cfg.SiteDir, "existing env should win")
	assert.Equal(t, "From File", cfg.PageTitle)
}
