package dockercli

import (
	"context"
	"fmt"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/client"
)

// engineProbe answers running-state queries over the engine API.
type engineProbe struct {
	cli *client.Client
}

func newEngineProbe() (*engineProbe, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create docker client: %w", err)
	}
	return &engineProbe{cli: cli}, nil
}

func (p *engineProbe) running(ctx context.Context, containerName string) (bool, error) {
	// The name filter matches substrings, so verify the exact name.
	list, err := p.cli.ContainerList(ctx, container.ListOptions{
		Filters: filters.NewArgs(filters.Arg("name", containerName)),
	})
	if err != nil {
		return false, fmt.Errorf("failed to list containers: %w", err)
	}

	for _, ctr := range list {
		for _, name := range ctr.Names {
			if name == "/"+containerName {
				return true, nil
			}
		}
	}
	return false, nil
}
