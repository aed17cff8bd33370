package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/craftctl-dev/craftctl/pkg/printer"
)

var ConsoleCmd = &cobra.Command{
	Use:   "console <name>",
	Short: "Attach to server console",
	Long:  `Attaches the terminal to a running server's interactive console.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runConsole,
}

func runConsole(cmd *cobra.Command, args []string) error {
	name := args[0]

	printer.PrintInfo(fmt.Sprintf("Attaching to server '%s' console:", name))
	printer.PrintInfo("Press Ctrl+P, Ctrl+Q to detach")
	return mgr.Console(cmd.Context(), name)
}
