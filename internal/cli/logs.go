package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/craftctl-dev/craftctl/pkg/printer"
)

var logsFollow bool

var LogsCmd = &cobra.Command{
	Use:   "logs <name>",
	Short: "Show server logs",
	Long:  `Relays the container logs of a server. With --follow it streams until interrupted.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runLogs,
}

func init() {
	LogsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "Follow logs in real-time")
}

func runLogs(cmd *cobra.Command, args []string) error {
	name := args[0]

	printer.PrintInfo(fmt.Sprintf("Showing logs for server '%s':", name))
	if logsFollow {
		printer.PrintInfo("Press Ctrl+C to exit")
	}
	return mgr.Logs(cmd.Context(), name, logsFollow)
}
