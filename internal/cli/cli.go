// Package cli holds the craftctl subcommands. The root command wires a
// configured manager in before any RunE executes.
package cli

import (
	"github.com/craftctl-dev/craftctl/internal/config"
	"github.com/craftctl-dev/craftctl/internal/manager"
)

var (
	mgr      *manager.Manager
	settings *config.Settings
)

// Setup injects the manager and settings the commands operate on.
func Setup(s *config.Settings, m *manager.Manager) {
	settings = s
	mgr = m
}
