package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/craftctl-dev/craftctl/internal/cli/common"
	"github.com/craftctl-dev/craftctl/internal/manager"
	"github.com/craftctl-dev/craftctl/internal/models"
	"github.com/craftctl-dev/craftctl/pkg/printer"
)

var (
	createType          string
	createVersion       string
	createMemory        string
	createPort          string
	createLoaderVersion string
	createJavaArgs      string
	createRcon          bool
	createRconPort      string
	createEULA          bool
	createStart         bool
)

var CreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new Minecraft server",
	Long: `Creates a new Minecraft server: writes its docker-compose descriptor and
registers it. The server is not started unless --start is given or the
start prompt is confirmed.

Examples:
  craftctl create alice --type PAPER --memory 2G
  craftctl create bob --type FORGE --loader-version 47.1.0 --port 25566`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func init() {
	CreateCmd.Flags().StringVarP(&createType, "type", "t", "VANILLA", "Server type (VANILLA, PAPER, FORGE, FABRIC, SPIGOT, PURPUR)")
	CreateCmd.Flags().StringVar(&createVersion, "mc-version", "LATEST", "Minecraft version (LATEST, SNAPSHOT or a release like 1.20.2)")
	CreateCmd.Flags().StringVarP(&createMemory, "memory", "m", "2G", "Server memory (e.g. 2G, 4G)")
	CreateCmd.Flags().StringVarP(&createPort, "port", "p", "25565", "Host port mapped to the server")
	CreateCmd.Flags().StringVar(&createLoaderVersion, "loader-version", "", "Mod loader version for FORGE/FABRIC (e.g. 47.1.0, RECOMMENDED, LATEST)")
	CreateCmd.Flags().StringVar(&createJavaArgs, "java-args", "", "Custom JVM arguments")
	CreateCmd.Flags().BoolVar(&createRcon, "rcon", false, "Enable an RCON listener for 'craftctl cmd'")
	CreateCmd.Flags().StringVar(&createRconPort, "rcon-port", "25575", "Host port mapped to RCON (with --rcon)")
	CreateCmd.Flags().BoolVar(&createEULA, "eula", false, "Accept the Minecraft EULA (otherwise prompted)")
	CreateCmd.Flags().BoolVar(&createStart, "start", false, "Start the server after creation (otherwise prompted)")
}

func runCreate(cmd *cobra.Command, args []string) error {
	name := args[0]

	if err := common.ValidateServerName(name); err != nil {
		return err
	}
	if err := common.ValidatePort(createPort); err != nil {
		return err
	}
	serverType, err := common.ParseServerType(createType)
	if err != nil {
		return err
	}
	if createRcon {
		if err := common.ValidatePort(createRconPort); err != nil {
			return err
		}
	}

	loaderVersion := createLoaderVersion
	if serverType.HasModLoader() && loaderVersion == "" {
		switch serverType {
		case models.TypeForge:
			loaderVersion = "RECOMMENDED"
		case models.TypeFabric:
			loaderVersion = "LATEST"
		}
	}

	if !createEULA {
		ok, err := common.Confirm("Do you agree to the Minecraft EULA? (https://account.mojang.com/documents/minecraft_eula)")
		if err != nil {
			return err
		}
		if !ok {
			printer.PrintWarning("EULA must be accepted to continue.")
			return nil
		}
	}

	req := manager.CreateRequest{
		Name:             name,
		Type:             serverType,
		Version:          createVersion,
		Memory:           createMemory,
		Port:             createPort,
		ModLoaderVersion: loaderVersion,
		JavaArgs:         createJavaArgs,
		EnableRcon:       createRcon,
		RconPort:         createRconPort,
	}
	if err := mgr.Create(cmd.Context(), req); err != nil {
		return err
	}

	printer.PrintSuccess("Server configuration saved successfully!")

	startNow := createStart
	if !startNow {
		startNow, err = common.Confirm("Would you like to start the server now?")
		if err != nil {
			return err
		}
	}
	if startNow {
		if err := mgr.Start(cmd.Context(), name); err != nil {
			return err
		}
		printer.PrintSuccess(fmt.Sprintf("Server '%s' started successfully!", name))
	}
	return nil
}
