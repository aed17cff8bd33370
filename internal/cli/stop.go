package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/craftctl-dev/craftctl/pkg/printer"
)

var StopCmd = &cobra.Command{
	Use:   "stop [name]",
	Short: "Stop specific server(s)",
	Long:  `Stops the named server, or every configured server when no name is given.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStop,
}

func runStop(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		name := args[0]
		if err := mgr.Stop(cmd.Context(), name); err != nil {
			return err
		}
		printer.PrintSuccess(fmt.Sprintf("Server '%s' stopped successfully!", name))
		return nil
	}

	stopped, err := mgr.StopAll(cmd.Context())
	if err != nil {
		return err
	}
	if len(stopped) == 0 {
		printer.PrintWarning("No servers configured!")
		return nil
	}
	for _, name := range stopped {
		printer.PrintSuccess(fmt.Sprintf("Server '%s' stopped successfully!", name))
	}
	return nil
}
