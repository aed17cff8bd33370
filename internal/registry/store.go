// Package registry persists the server registry: the JSON mapping from
// server name to configuration that is the single source of truth for which
// servers exist.
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/craftctl-dev/craftctl/internal/models"
)

// Store owns load/save of the registry file. It assumes a single process;
// concurrent invocations against the same file are undefined behavior.
type Store struct {
	path string
}

// NewStore creates a store for the registry file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the registry file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the registry. A missing file yields an empty registry so the
// first run needs no bootstrap step.
func (s *Store) Load() (*models.ServerConfig, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.NewServerConfig(), nil
		}
		return nil, fmt.Errorf("failed to read registry: %w", err)
	}

	cfg := models.NewServerConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, models.ConfigParseError{Path: s.path, Err: err}
	}
	if cfg.Servers == nil {
		cfg.Servers = make(map[string]models.ServerInfo)
	}
	return cfg, nil
}

// Save serializes the full registry and replaces the file. The write goes
// through a temp file and rename so a crash mid-write cannot truncate the
// registry.
func (s *Store) Save(cfg *models.ServerConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize registry: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".servers-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp registry: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write registry: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write registry: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace registry: %w", err)
	}
	return nil
}
