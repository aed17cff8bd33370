// Package dockercli is the boundary to the container runtime. Lifecycle
// and archive operations shell out to the docker compose plugin and tar;
// running-state queries go through the engine API.
package dockercli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// CommandError is a non-zero exit of an external process, carrying the
// captured diagnostic output. The gateway never interprets output beyond
// exit status.
type CommandError struct {
	Command string
	Output  string
	Err     error
}

func (e CommandError) Error() string {
	msg := fmt.Sprintf("command %q failed: %v", e.Command, e.Err)
	if e.Output != "" {
		msg += ": " + strings.TrimSpace(e.Output)
	}
	return msg
}

func (e CommandError) Unwrap() error { return e.Err }

// CLI invokes the docker executable and tar with fixed argument templates.
type CLI struct {
	dockerBin string
	log       *zap.Logger

	probeOnce sync.Once
	probe     *engineProbe
	probeErr  error
}

// New creates a gateway around the given docker executable.
func New(dockerBin string, log *zap.Logger) *CLI {
	return &CLI{dockerBin: dockerBin, log: log}
}

// Available reports whether the runtime and its compose plugin respond.
func (c *CLI) Available() bool {
	if _, err := exec.LookPath(c.dockerBin); err != nil {
		return false
	}
	return exec.Command(c.dockerBin, "compose", "version").Run() == nil
}

// ComposeUp starts the service described by the descriptor in dataPath.
func (c *CLI) ComposeUp(ctx context.Context, dataPath string) error {
	return c.runCaptured(ctx, dataPath, c.dockerBin, "compose", "up", "-d")
}

// ComposeDown stops the service described by the descriptor in dataPath.
func (c *CLI) ComposeDown(ctx context.Context, dataPath string) error {
	return c.runCaptured(ctx, dataPath, c.dockerBin, "compose", "down")
}

// ComposeLogs streams service logs to the caller's terminal. With follow it
// blocks until interrupted.
func (c *CLI) ComposeLogs(ctx context.Context, dataPath string, follow bool) error {
	args := []string{"compose", "logs"}
	if follow {
		args = append(args, "-f")
	}
	return c.runInteractive(ctx, dataPath, c.dockerBin, args...)
}

// Attach connects the caller's terminal to the container console.
func (c *CLI) Attach(ctx context.Context, containerName string) error {
	return c.runInteractive(ctx, "", c.dockerBin, "attach", containerName)
}

// ArchiveCreate packs the contents of dataPath into destFile.
func (c *CLI) ArchiveCreate(ctx context.Context, dataPath, destFile string) error {
	return c.runCaptured(ctx, dataPath, "tar", "-czf", destFile, ".")
}

// ArchiveExtract unpacks srcFile into dataPath.
func (c *CLI) ArchiveExtract(ctx context.Context, dataPath, srcFile string) error {
	return c.runCaptured(ctx, dataPath, "tar", "-xzf", srcFile)
}

// ContainerRunning reports whether a container with the given name is live,
// queried from the engine rather than any cached state.
func (c *CLI) ContainerRunning(ctx context.Context, containerName string) (bool, error) {
	c.probeOnce.Do(func() {
		c.probe, c.probeErr = newEngineProbe()
	})
	if c.probeErr != nil {
		return false, fmt.Errorf("failed to reach docker engine: %w", c.probeErr)
	}
	return c.probe.running(ctx, containerName)
}

// runCaptured runs a process to completion, capturing combined output for
// the error path.
func (c *CLI) runCaptured(ctx context.Context, dir, bin string, args ...string) error {
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir

	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	c.log.Debug("running command",
		zap.String("bin", bin),
		zap.Strings("args", args),
		zap.String("dir", dir))

	if err := cmd.Run(); err != nil {
		return CommandError{
			Command: bin + " " + strings.Join(args, " "),
			Output:  buf.String(),
			Err:     err,
		}
	}
	return nil
}

// runInteractive runs a process with the caller's stdio wired through, for
// log streaming and console attach.
func (c *CLI) runInteractive(ctx context.Context, dir, bin string, args ...string) error {
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	c.log.Debug("running interactive command",
		zap.String("bin", bin),
		zap.Strings("args", args))

	if err := cmd.Run(); err != nil {
		return CommandError{
			Command: bin + " " + strings.Join(args, " "),
			Err:     err,
		}
	}
	return nil
}
