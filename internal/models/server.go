package models

import "time"

// ServerType is the itzg/minecraft-server TYPE value a server runs with.
type ServerType string

const (
	TypeVanilla ServerType = "VANILLA"
	TypePaper   ServerType = "PAPER"
	TypeForge   ServerType = "FORGE"
	TypeFabric  ServerType = "FABRIC"
	TypeSpigot  ServerType = "SPIGOT"
	TypePurpur  ServerType = "PURPUR"
)

// ServerTypes lists every supported type in display order.
var ServerTypes = []ServerType{TypeVanilla, TypePaper, TypeForge, TypeFabric, TypeSpigot, TypePurpur}

// HasModLoader reports whether the type layers a mod loader on top of the
// base server and therefore needs a loader version.
func (t ServerType) HasModLoader() bool {
	return t == TypeForge || t == TypeFabric
}

// ServerConfig is the registry root: the single source of truth for which
// servers exist, keyed by validated server name.
type ServerConfig struct {
	Servers map[string]ServerInfo `json:"servers"`
}

// NewServerConfig returns an empty registry.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{Servers: make(map[string]ServerInfo)}
}

// Names returns the registry keys. Callers sort when they need
// deterministic iteration order.
func (c *ServerConfig) Names() []string {
	names := make([]string, 0, len(c.Servers))
	for name := range c.Servers {
		names = append(names, name)
	}
	return names
}

// ServerInfo is the persisted configuration of one server. CreatedAt is set
// once at creation; LastStarted is the only field mutated afterwards.
type ServerInfo struct {
	Version          string     `json:"version"`
	Port             string     `json:"port"`
	Memory           string     `json:"memory"`
	DataPath         string     `json:"data_path"`
	ServerType       ServerType `json:"server_type"`
	ModLoader        string     `json:"mod_loader,omitempty"`
	ModLoaderVersion string     `json:"mod_loader_version,omitempty"`
	JavaArgs         string     `json:"java_args,omitempty"`
	RconPort         string     `json:"rcon_port,omitempty"`
	RconPassword     string     `json:"rcon_password,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	LastStarted      *time.Time `json:"last_started,omitempty"`
}

// RconEnabled reports whether the server was provisioned with an RCON
// listener reachable from the host.
func (i ServerInfo) RconEnabled() bool {
	return i.RconPort != "" && i.RconPassword != ""
}

// Status is the derived running state of a server. It is never persisted;
// it always comes from a live container query.
type Status string

const (
	StatusRunning Status = "RUNNING"
	StatusStopped Status = "STOPPED"
)
