// pkg/core/config_test.go
package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "sudo", cfg.SudoCommand)
	assert.True(t, cfg.Parallel)
	assert.Equal(t, 4, cfg.MaxParallel)
	assert.NotEmpty(t, cfg.CachePath)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
sudo_command: doas
parallel: false
managers: [apt, brew]
exclude_managers: [npm]
debug: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "doas", cfg.SudoCommand)
	assert.False(t, cfg.Parallel)
	assert.Equal(t, []string{"apt", "brew"}, cfg.Managers)
	assert.Equal(t, []string{"npm"}, cfg.ExcludeManagers)
	assert.True(t, cfg.Debug)
	// unset values keep their defaults
	assert.Equal(t, 4, cfg.MaxParallel)
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("managers: {not a list"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestResolveAliasDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CachePath = "/tmp/upm-cache"
	assert.Equal(t, filepath.Join("/tmp/upm-cache", "aliases"), cfg.ResolveAliasDir())

	cfg.AliasDir = "/etc/upm/aliases"
	assert.Equal(t, "/etc/upm/aliases", cfg.ResolveAliasDir())
}
