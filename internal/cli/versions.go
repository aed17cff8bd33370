package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/craftctl-dev/craftctl/pkg/printer"
)

var VersionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List available versions and types",
	Long:  `Shows the supported server types and the accepted version formats.`,
	// Purely informational, no config dir or docker needed.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	Run: runVersions,
}

func runVersions(cmd *cobra.Command, args []string) {
	printer.PrintHeader("Available Minecraft Server Types")
	fmt.Println("- VANILLA: Vanilla Minecraft server")
	fmt.Println("- PAPER:   High performance fork of Spigot")
	fmt.Println("- FORGE:   Modded Minecraft server")
	fmt.Println("- FABRIC:  Lightweight mod loader")
	fmt.Println("- SPIGOT:  Fork of CraftBukkit")
	fmt.Println("- PURPUR:  Performance-focused server")
	fmt.Println()

	printer.PrintHeader("Version Format Examples")
	fmt.Println("- LATEST (always uses the latest release)")
	fmt.Println("- 1.20.2 (specific version)")
	fmt.Println("- SNAPSHOT (latest snapshot version)")
	fmt.Println()

	printer.PrintHeader("Mod Loader Examples")
	fmt.Println("- Forge:  RECOMMENDED or specific version (e.g. 47.1.0)")
	fmt.Println("- Fabric: LATEST or specific version (e.g. 0.14.21)")
}
