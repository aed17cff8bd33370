package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/craftctl-dev/craftctl/internal/cli/common"
	"github.com/craftctl-dev/craftctl/pkg/printer"
)

var restoreStart bool

var RestoreCmd = &cobra.Command{
	Use:   "restore <name> <path>",
	Short: "Restore server from backup",
	Long:  `Stops a server and extracts a backup archive into its data directory.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runRestore,
}

func init() {
	RestoreCmd.Flags().BoolVar(&restoreStart, "start", false, "Start the server after restoring (otherwise prompted)")
}

func runRestore(cmd *cobra.Command, args []string) error {
	name, path := args[0], args[1]

	if err := mgr.Restore(cmd.Context(), name, path); err != nil {
		return err
	}
	printer.PrintSuccess("Backup restored successfully!")

	startNow := restoreStart
	if !startNow {
		var err error
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
