// Package compose generates the docker-compose descriptor the container
// runtime consumes for each server. Generation is a pure transformation of
// the registered server configuration; writing the file is the caller's
// responsibility.
package compose

import (
	"context"
	"fmt"

	"github.com/compose-spec/compose-go/v2/loader"
	composetypes "github.com/compose-spec/compose-go/v2/types"
	"gopkg.in/yaml.v3"

	"github.com/craftctl-dev/craftctl/internal/models"
)

const (
	// Image is the server runtime image every descriptor references.
	Image = "itzg/minecraft-server"
	// ContainerPrefix is prepended to the server name to form the
	// container name.
	ContainerPrefix = "mc-"
	// GamePort is the fixed in-container server port.
	GamePort = "25565"
	// RconPort is the fixed in-container RCON port.
	RconPort = "25575"
	// DataMount is the fixed in-container data directory.
	DataMount = "/data"
	// FileName is the descriptor file name inside a server's data path.
	FileName = "docker-compose.yml"
)

// Document is the descriptor written beside a server's data directory. It
// is always regenerated as a whole from ServerInfo, never partially
// mutated.
type Document struct {
	Version  string             `yaml:"version"`
	Services map[string]Service `yaml:"services"`
}

// Service is one compose service definition.
type Service struct {
	Image         string   `yaml:"image"`
	ContainerName string   `yaml:"container_name"`
	Ports         []string `yaml:"ports"`
	Environment   []string `yaml:"environment"`
	Volumes       []string `yaml:"volumes"`
	Restart       string   `yaml:"restart"`
	StdinOpen     bool     `yaml:"stdin_open"`
	TTY           bool     `yaml:"tty"`
}

// ContainerName derives the container name for a server.
func ContainerName(name string) string {
	return ContainerPrefix + name
}

// Generate builds the descriptor for a server. The console must stay
// attachable, so stdin_open and tty are always set.
func Generate(name string, info models.ServerInfo) Document {
	environment := []string{
		"EULA=TRUE",
		fmt.Sprintf("MEMORY=%s", info.Memory),
		fmt.Sprintf("VERSION=%s", info.Version),
		fmt.Sprintf("TYPE=%s", info.ServerType),
	}

	if info.ModLoader != "" {
		environment = append(environment, fmt.Sprintf("TYPE=%s", info.ModLoader))
		if info.ModLoaderVersion != "" {
			switch info.ModLoader {
			case string(models.TypeForge):
				environment = append(environment, fmt.Sprintf("FORGE_VERSION=%s", info.ModLoaderVersion))
			case string(models.TypeFabric):
				environment = append(environment, fmt.Sprintf("FABRIC_VERSION=%s", info.ModLoaderVersion))
			}
		}
	}

	if info.JavaArgs != "" {
		environment = append(environment, fmt.Sprintf("JVM_OPTS=%s", info.JavaArgs))
	}

	ports := []string{fmt.Sprintf("%s:%s", info.Port, GamePort)}

	if info.RconEnabled() {
		environment = append(environment,
			"ENABLE_RCON=true",
			fmt.Sprintf("RCON_PASSWORD=%s", info.RconPassword),
		)
		ports = append(ports, fmt.Sprintf("%s:%s", info.RconPort, RconPort))
	}

	return Document{
		Version: "3.8",
		Services: map[string]Service{
			name: {
				Image:         Image,
				ContainerName: ContainerName(name),
				Ports:         ports,
				Environment:   environment,
				Volumes:       []string{fmt.Sprintf("%s:%s", info.DataPath, DataMount)},
				Restart:       "unless-stopped",
				StdinOpen:     true,
				TTY:           true,
			},
		},
	}
}

// Marshal renders the descriptor to YAML.
func (d Document) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal descriptor: %w", err)
	}
	return data, nil
}

// Validate runs the rendered descriptor through the canonical compose
// parser so a document the orchestration tool would reject never reaches
// disk.
func Validate(ctx context.Context, name string, raw []byte) error {
	details := composetypes.ConfigDetails{
		ConfigFiles: []composetypes.ConfigFile{{
			Filename: FileName,
			Content:  raw,
		}},
		Environment: map[string]string{},
	}

	_, err := loader.LoadWithContext(ctx, details, func(o *loader.Options) {
		o.SetProjectName(name, true)
		o.SkipConsistencyCheck = true
	})
	if err != nil {
		return models.ConfigParseError{Path: FileName, Err: err}
	}
	return nil
}
