package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"CRAFTCTL_HOME", "CRAFTCTL_DOCKER_BIN", "CRAFTCTL_VERBOSE"} {
		// Setenv registers the restore; the variable must be absent for
		// the default to apply.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ".mc-servers", cfg.Home)
	assert.Equal(t, "docker", cfg.DockerBin)
	assert.False(t, cfg.Verbose)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("CRAFTCTL_HOME", "/var/lib/craftctl")
	t.Setenv("CRAFTCTL_DOCKER_BIN", "podman")
	t.Setenv("CRAFTCTL_VERBOSE", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/craftctl", cfg.Home)
	assert.Equal(t, "podman", cfg.DockerBin)
	assert.True(t, cfg.Verbose)
}

func TestSettings_Paths(t *testing.T) {
	cfg := &Settings{Home: "/srv/mc"}

	assert.Equal(t, filepath.Join("/srv/mc", "servers.json"), cfg.RegistryPath())
	assert.Equal(t, filepath.Join("/srv/mc", "alice"), cfg.DataPath("alice"))
	assert.Equal(t, filepath.Join("/srv/mc", "backups"), cfg.BackupDir())
}

func TestEnsureDirs(t *testing.T) {
	cfg := &Settings{Home: filepath.Join(t.TempDir(), "nested", ".mc-servers")}

	require.NoError(t, cfg.EnsureDirs())
	assert.DirExists(t, cfg.Home)
	assert.DirExists(t, cfg.BackupDir())

	// Idempotent on an existing tree.
	require.NoError(t, cfg.EnsureDirs())
}
