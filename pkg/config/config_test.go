package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("VAULTORG_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 1000, cfg.APIListLimitMax)
	assert.True(t, cfg.AuditEnabled)
	for _, attr := range cfg.Attributes() {
		assert.Equal(t, "default", attr.Source, attr.Name)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("VAULTORG_CONFIG_PATH", dir)

	content := "api_list_limit_max: 50\naudit_enabled: false\nflag_file: /tmp/flags.yml\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o600))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.APIListLimitMax)
	assert.False(t, cfg.AuditEnabled)
	assert.Equal(t, "/tmp/flags.yml", cfg.FlagFile)

	sources := map[string]string{}
	for _, attr := range cfg.Attributes() {
		sources[attr.Name] = attr.Source
	}
	assert.Equal(t, "file", sources["api_list_limit_max"])
	assert.Equal(t, "file", sources["audit_enabled"])
	assert.Equal(t, "default", sources["trusted_proxies"])
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("VAULTORG_CONFIG_PATH", dir)
	t.Setenv("VAULTORG_API_LIST_LIMIT_MAX", "25")

	content := "api_list_limit_max: 50\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o600))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.APIListLimitMax)
}

func TestLoadBadYAML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("VAULTORG_CONFIG_PATH", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{not yaml"), 0o600))

	_, err := Load()
	assert.Error(t, err)
}
