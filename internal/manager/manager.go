// Package manager sequences the multi-step server lifecycle workflows on
// top of the registry store, the descriptor generator and the runtime
// gateway.
package manager

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/craftctl-dev/craftctl/internal/compose"
	"github.com/craftctl-dev/craftctl/internal/config"
	"github.com/craftctl-dev/craftctl/internal/models"
	"github.com/craftctl-dev/craftctl/internal/registry"
)

// nameRe is the allowed server name pattern. Names become registry keys,
// directory names and container name suffixes.
var nameRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Gateway is the runtime boundary the manager drives.
type Gateway interface {
	Available() bool
	ComposeUp(ctx context.Context, dataPath string) error
	ComposeDown(ctx context.Context, dataPath string) error
	ComposeLogs(ctx context.Context, dataPath string, follow bool) error
	Attach(ctx context.Context, containerName string) error
	ContainerRunning(ctx context.Context, containerName string) (bool, error)
	ArchiveCreate(ctx context.Context, dataPath, destFile string) error
	ArchiveExtract(ctx context.Context, dataPath, srcFile string) error
}

// ConsoleClient executes a console command over RCON.
type ConsoleClient interface {
	Execute(addr, password, command string) (string, error)
}

// ConfirmFunc asks the user a yes/no question.
type ConfirmFunc func(prompt string) (bool, error)

// Manager implements the server lifecycle operations.
type Manager struct {
	cfg     *config.Settings
	store   *registry.Store
	gw      Gateway
	console ConsoleClient
	log     *zap.Logger
	now     func() time.Time
}

// New creates a manager.
func New(cfg *config.Settings, store *registry.Store, gw Gateway, console ConsoleClient, log *zap.Logger) *Manager {
	return &Manager{
		cfg:     cfg,
		store:   store,
		gw:      gw,
		console: console,
		log:     log,
		now:     time.Now,
	}
}

// CreateRequest carries the already-validated inputs of the creation
// workflow.
type CreateRequest struct {
	Name             string
	Type             models.ServerType
	Version          string
	Memory           string
	Port             string
	ModLoaderVersion string
	JavaArgs         string
	EnableRcon       bool
	RconPort         string
}

// Create registers a new server: the descriptor is written and validated
// before the registry entry is committed, so a registry entry never points
// at a missing descriptor.
func (m *Manager) Create(ctx context.Context, req CreateRequest) error {
	if !nameRe.MatchString(req.Name) {
		return models.InvalidNameError{Name: req.Name}
	}

	cfg, err := m.store.Load()
	if err != nil {
		return err
	}
	if _, exists := cfg.Servers[req.Name]; exists {
		return models.ExistsError{Name: req.Name}
	}

	dataPath := m.cfg.DataPath(req.Name)
	info := models.ServerInfo{
		Version:    req.Version,
		Port:       req.Port,
		Memory:     req.Memory,
		DataPath:   dataPath,
		ServerType: req.Type,
		JavaArgs:   req.JavaArgs,
		CreatedAt:  m.now().UTC(),
	}
	if req.Type.HasModLoader() {
		info.ModLoader = string(req.Type)
		info.ModLoaderVersion = req.ModLoaderVersion
	}
	if req.EnableRcon {
		info.RconPort = req.RconPort
		if info.RconPort == "" {
			info.RconPort = compose.RconPort
		}
		info.RconPassword = uuid.NewString()
	}

	if err := os.MkdirAll(dataPath, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	doc := compose.Generate(req.Name, info)
	raw, err := doc.Marshal()
	if err != nil {
		return err
	}
	if err := compose.Validate(ctx, req.Name, raw); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dataPath, compose.FileName), raw, 0o644); err != nil {
		return fmt.Errorf("failed to write descriptor: %w", err)
	}

	cfg.Servers[req.Name] = info
	if err := m.store.Save(cfg); err != nil {
		return err
	}

	m.log.Debug("server created", zap.String("name", req.Name), zap.String("type", string(req.Type)))
	return nil
}

// Start brings one server up and records the start time. The timestamp is
// only written after the gateway reports success, preserving the last known
// good value on failure.
func (m *Manager) Start(ctx context.Context, name string) error {
	cfg, err := m.store.Load()
	if err != nil {
		return err
	}
	info, ok := cfg.Servers[name]
	if !ok {
		return models.NotFoundError{Name: name}
	}

	if err := m.gw.ComposeUp(ctx, info.DataPath); err != nil {
		return err
	}

	started := m.now().UTC()
	info.LastStarted = &started
	cfg.Servers[name] = info
	return m.store.Save(cfg)
}

// StartAll starts every registered server in name order and returns the
// names it started.
func (m *Manager) StartAll(ctx context.Context) ([]string, error) {
	return m.eachServer(func(name string) error {
		return m.Start(ctx, name)
	})
}

// Stop brings one server down. Running state is derived on demand, so there
// is nothing to persist.
func (m *Manager) Stop(ctx context.Context, name string) error {
	cfg, err := m.store.Load()
	if err != nil {
		return err
	}
	info, ok := cfg.Servers[name]
	if !ok {
		return models.NotFoundError{Name: name}
	}
	return m.gw.ComposeDown(ctx, info.DataPath)
}

// StopAll stops every registered server in name order.
func (m *Manager) StopAll(ctx context.Context) ([]string, error) {
	return m.eachServer(func(name string) error {
		return m.Stop(ctx, name)
	})
}

// Logs relays service logs to the caller's terminal.
func (m *Manager) Logs(ctx context.Context, name string, follow bool) error {
	cfg, err := m.store.Load()
	if err != nil {
		return err
	}
	info, ok := cfg.Servers[name]
	if !ok {
		return models.NotFoundError{Name: name}
	}
	return m.gw.ComposeLogs(ctx, info.DataPath, follow)
}

// Console attaches the caller's terminal to the server console.
func (m *Manager) Console(ctx context.Context, name string) error {
	cfg, err := m.store.Load()
	if err != nil {
		return err
	}
	if _, ok := cfg.Servers[name]; !ok {
		return models.NotFoundError{Name: name}
	}
	return m.gw.Attach(ctx, compose.ContainerName(name))
}

// Remove deletes a server. The stop is best-effort since the goal is
// cleanup; the data directory is removed before the registry entry so a
// registry entry never survives its descriptor silently. A crash between
// the two leaves a dangling entry pointing at a missing path, which readers
// treat as already removed.
func (m *Manager) Remove(ctx context.Context, name string, force bool, confirm ConfirmFunc) error {
	cfg, err := m.store.Load()
	if err != nil {
		return err
	}
	info, ok := cfg.Servers[name]
	if !ok {
		return models.NotFoundError{Name: name}
	}

	if !force {
		ok, err := confirm(fmt.Sprintf("Are you sure you want to remove server '%s'? This will delete all data!", name))
		if err != nil {
			return err
		}
		if !ok {
			return models.CancelledError{}
		}
	}

	if err := m.gw.ComposeDown(ctx, info.DataPath); err != nil {
		m.log.Warn("failed to stop server before removal", zap.String("name", name), zap.Error(err))
	}

	if err := os.RemoveAll(info.DataPath); err != nil {
		return fmt.Errorf("failed to remove data directory: %w", err)
	}

	delete(cfg.Servers, name)
	return m.store.Save(cfg)
}

// Backup archives the server's data directory into the backup directory and
// returns the archive path.
func (m *Manager) Backup(ctx context.Context, name string) (string, error) {
	cfg, err := m.store.Load()
	if err != nil {
		return "", err
	}
	info, ok := cfg.Servers[name]
	if !ok {
		return "", models.NotFoundError{Name: name}
	}

	if err := os.MkdirAll(m.cfg.BackupDir(), 0o755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	timestamp := m.now().Format("20060102_150405")
	dest := filepath.Join(m.cfg.BackupDir(), fmt.Sprintf("%s_%s.tar.gz", name, timestamp))

	if err := m.gw.ArchiveCreate(ctx, info.DataPath, dest); err != nil {
		return "", err
	}
	return dest, nil
}

// Restore extracts an archive into the server's data directory. The server
// is stopped first, best-effort, to avoid writing into a live directory.
func (m *Manager) Restore(ctx context.Context, name, archivePath string) error {
	cfg, err := m.store.Load()
	if err != nil {
		return err
	}
	info, ok := cfg.Servers[name]
	if !ok {
		return models.NotFoundError{Name: name}
	}

	abs, err := filepath.Abs(archivePath)
	if err != nil {
		return fmt.Errorf("failed to resolve backup path: %w", err)
	}
	if _, err := os.Stat(abs); err != nil {
		return fmt.Errorf("backup file not found: %w", err)
	}

	if err := m.gw.ComposeDown(ctx, info.DataPath); err != nil {
		m.log.Warn("failed to stop server before restore", zap.String("name", name), zap.Error(err))
	}

	return m.gw.ArchiveExtract(ctx, info.DataPath, abs)
}

// Status derives the running state from a live container query. It never
// consults persisted state, so it reflects out-of-band changes.
func (m *Manager) Status(ctx context.Context, name string) (models.Status, error) {
	running, err := m.gw.ContainerRunning(ctx, compose.ContainerName(name))
	if err != nil {
		return "", err
	}
	if running {
		return models.StatusRunning, nil
	}
	return models.StatusStopped, nil
}

// Entry pairs a registered server with its derived status.
type Entry struct {
	Name   string
	Info   models.ServerInfo
	Status models.Status
}

// List returns every registered server with its live status, sorted by
// name.
func (m *Manager) List(ctx context.Context) ([]Entry, error) {
	cfg, err := m.store.Load()
	if err != nil {
		return nil, err
	}

	names := cfg.Names()
	sort.Strings(names)

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		status, err := m.Status(ctx, name)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Name: name, Info: cfg.Servers[name], Status: status})
	}
	return entries, nil
}

// SendCommand executes a console command over the server's RCON listener
// and returns the response.
func (m *Manager) SendCommand(ctx context.Context, name, command string) (string, error) {
	cfg, err := m.store.Load()
	if err != nil {
		return "", err
	}
	info, ok := cfg.Servers[name]
	if !ok {
		return "", models.NotFoundError{Name: name}
	}
	if !info.RconEnabled() {
		return "", fmt.Errorf("server '%s' was created without RCON; recreate it with --rcon to send commands", name)
	}
	return m.console.Execute("127.0.0.1:"+info.RconPort, info.RconPassword, command)
}

// eachServer applies fn to every registered server in name order.
func (m *Manager) eachServer(fn func(name string) error) ([]string, error) {
	cfg, err := m.store.Load()
	if err != nil {
		return nil, err
	}

	names := cfg.Names()
	sort.Strings(names)

	for _, name := range names {
		if err := fn(name); err != nil {
			return nil, err
		}
	}
	return names, nil
}
