package dockercli

import (
	"context"
	"fmt"
	"os/exec"

	"go.uber.org/zap"

	"github.com/craftctl-dev/craftctl/internal/models"
)

// Installer attempts a platform-specific docker installation.
type Installer interface {
	Install(ctx context.Context) error
}

// ConfirmFunc asks the user a yes/no question.
type ConfirmFunc func(prompt string) (bool, error)

// NewInstaller selects the installation capability for the given GOOS.
// Platforms without an unattended path fall back to a manual-install
// confirmation.
func NewInstaller(goos string, confirm ConfirmFunc, log *zap.Logger) Installer {
	switch goos {
	case "linux":
		return &scriptInstaller{log: log}
	case "darwin":
		return &brewInstaller{log: log}
	default:
		return &manualInstaller{confirm: confirm}
	}
}

// scriptInstaller runs the get.docker.com convenience script.
type scriptInstaller struct {
	log *zap.Logger
}

func (i *scriptInstaller) Install(ctx context.Context) error {
	i.log.Info("installing docker via get.docker.com")
	cmd := exec.CommandContext(ctx, "sh", "-c", "curl -fsSL https://get.docker.com | sh")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return CommandError{Command: "sh -c curl -fsSL https://get.docker.com | sh", Output: string(out), Err: err}
	}
	return nil
}

// brewInstaller installs docker through homebrew.
type brewInstaller struct {
	log *zap.Logger
}

func (i *brewInstaller) Install(ctx context.Context) error {
	i.log.Info("installing docker via homebrew")
	cmd := exec.CommandContext(ctx, "brew", "install", "docker")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return CommandError{Command: "brew install docker", Output: string(out), Err: err}
	}
	return nil
}

// manualInstaller asks the user to install Docker Desktop themselves.
type manualInstaller struct {
	confirm ConfirmFunc
}

func (i *manualInstaller) Install(ctx context.Context) error {
	fmt.Println("Please download and install Docker Desktop from:")
	fmt.Println("https://www.docker.com/products/docker-desktop")

	ok, err := i.confirm("Have you installed Docker Desktop?")
	if err != nil {
		return err
	}
	if !ok {
		return models.UnavailableError{}
	}
	return nil
}
