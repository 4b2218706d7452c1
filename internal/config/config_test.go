package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 100, cfg.HistoryLimit)
	assert.Equal(t, filepath.Join(".termgym-data", "sessions"), cfg.SessionsDir())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TERMGYM_ADDR", ":9999")
	t.Setenv("TERMGYM_HISTORY_LIMIT", "5")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, 5, cfg.HistoryLimit)
}

func TestAliasesDefaultTable(t *testing.T) {
	cfg := &Config{}
	table, err := cfg.Aliases()
	require.NoError(t, err)
	assert.Equal(t, "ls -la", table["ll"])
}

func TestAliasesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aliases.toml")
	content := "[aliases]\nll = \"ls -lah\"\ng = \"git\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg := &Config{AliasFile: path}
	table, err := cfg.Aliases()
	require.NoError(t, err)
	assert.Equal(t, "ls -lah", table["ll"], "file entries override defaults")
	assert.Equal(t, "git", table["g"])
	assert.Equal(t, "git status", table["gs"], "defaults kept when not overridden")
}

func TestAliasesBadFile(t *testing.T) {
	cfg := &Config{AliasFile: filepath.Join(t.TempDir(), "missing.toml")}
	_, err := cfg.Aliases()
	assert.Error(t, err)
}
