// Package cli assembles the craftctl command tree and wires the runtime
// dependencies before any subcommand runs.
package cli

import (
	"runtime"

	"github.com/spf13/cobra"

	internalcli "github.com/craftctl-dev/craftctl/internal/cli"
	"github.com/craftctl-dev/craftctl/internal/cli/common"
	"github.com/craftctl-dev/craftctl/internal/config"
	"github.com/craftctl-dev/craftctl/internal/dockercli"
	"github.com/craftctl-dev/craftctl/internal/logging"
	"github.com/craftctl-dev/craftctl/internal/manager"
	"github.com/craftctl-dev/craftctl/internal/models"
	"github.com/craftctl-dev/craftctl/internal/rcon"
	"github.com/craftctl-dev/craftctl/internal/registry"
	"github.com/craftctl-dev/craftctl/pkg/printer"
)

var verbose bool

// Root builds the craftctl root command. Invoking it without a subcommand
// lists the configured servers.
func Root() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "craftctl",
		Short:             "Manage multiple Minecraft servers with Docker",
		Long:              `craftctl provisions and operates containerized Minecraft servers: it keeps a local registry of server definitions, generates docker-compose descriptors and drives the container runtime for lifecycle, backup and console operations.`,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return internalcli.ListCmd.RunE(cmd, args)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		internalcli.CreateCmd,
		internalcli.ListCmd,
		internalcli.StartCmd,
		internalcli.StopCmd,
		internalcli.LogsCmd,
		internalcli.RemoveCmd,
		internalcli.ConsoleCmd,
		internalcli.VersionsCmd,
		internalcli.BackupCmd,
		internalcli.RestoreCmd,
		internalcli.CmdCmd,
		internalcli.VersionCmd,
	)

	return rootCmd
}

// setup loads settings, ensures the config directory exists, makes sure the
// container runtime is available and hands a wired manager to the commands.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if verbose {
		cfg.Verbose = true
	}

	log := logging.NewLogger("craftctl", cfg.Verbose)

	if err := cfg.EnsureDirs(); err != nil {
		return err
	}

	gw := dockercli.New(cfg.DockerBin, log)
	if !gw.Available() {
		printer.PrintWarning("Docker not found! Attempting installation...")
		installer := dockercli.NewInstaller(runtime.GOOS, common.Confirm, log)
		if err := installer.Install(cmd.Context()); err != nil {
			return err
		}
		if !gw.Available() {
			return models.UnavailableError{}
		}
		printer.PrintSuccess("Docker installed successfully!")
	}

	store := registry.NewStore(cfg.RegistryPath())
	internalcli.Setup(cfg, manager.New(cfg, store, gw, rcon.NewClient(), log))
	return nil
}
