package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/craftctl-dev/craftctl/pkg/printer"
)

var StartCmd = &cobra.Command{
	Use:   "start [name]",
	Short: "Start specific server(s)",
	Long:  `Starts the named server, or every configured server when no name is given.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStart,
}

func runStart(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		name := args[0]
		if err := mgr.Start(cmd.Context(), name); err != nil {
			return err
		}
		printer.PrintSuccess(fmt.Sprintf("Server '%s' started successfully!", name))
		return nil
	}

	started, err := mgr.StartAll(cmd.Context())
	if err != nil {
		return err
	}
	if len(started) == 0 {
		printer.PrintWarning("No servers configured!")
		return nil
	}
	for _, name := range started {
		printer.PrintSuccess(fmt.Sprintf("Server '%s' started successfully!", name))
	}
	return nil
}
