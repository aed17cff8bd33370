package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	registryFile = "servers.json"
	backupDir    = "backups"
)

// Settings holds process-wide configuration. The base directory is threaded
// into every store and path computation so tests can run against temporary
// directories.
type Settings struct {
	// Home is the config directory holding the registry, the per-server
	// data directories and the backups directory.
	Home string `env:"CRAFTCTL_HOME" envDefault:".mc-servers"`
	// DockerBin is the container runtime executable.
	DockerBin string `env:"CRAFTCTL_DOCKER_BIN" envDefault:"docker"`
	// Verbose enables debug logging.
	Verbose bool `env:"CRAFTCTL_VERBOSE" envDefault:"false"`
}

// Load reads settings from the environment, honoring a .env file in the
// working directory when present.
func Load() (*Settings, error) {
	// A missing .env is fine; only a malformed one is an error.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Settings{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// RegistryPath is the location of the registry file.
func (s *Settings) RegistryPath() string {
	return filepath.Join(s.Home, registryFile)
}

// DataPath is the data directory owned by the named server.
func (s *Settings) DataPath(name string) string {
	return filepath.Join(s.Home, name)
}

// BackupDir is the directory backups are written to.
func (s *Settings) BackupDir() string {
	return filepath.Join(s.Home, backupDir)
}

// EnsureDirs creates the config and backup directories if needed.
func (s *Settings) EnsureDirs() error {
	if err := os.MkdirAll(s.Home, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.MkdirAll(s.BackupDir(), 0o755); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}
	return nil
}
