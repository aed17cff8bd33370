package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/craftctl-dev/craftctl/internal/cli/common"
	"github.com/craftctl-dev/craftctl/internal/models"
	"github.com/craftctl-dev/craftctl/pkg/printer"
)

var removeForce bool

var RemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a server",
	Long:  `Stops a server, deletes its data directory and drops it from the registry.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

func init() {
	RemoveCmd.Flags().BoolVarP(&removeForce, "force", "f", false, "Force removal without confirmation")
}

func runRemove(cmd *cobra.Command, args []string) error {
	name := args[0]

	err := mgr.Remove(cmd.Context(), name, removeForce, common.Confirm)
	var cancelled models.CancelledError
	if errors.As(err, &cancelled) {
		printer.PrintInfo("Removal cancelled.")
		return nil
	}
	if err != nil {
		return err
	}

	printer.PrintSuccess(fmt.Sprintf("Server '%s' removed successfully!", name))
	return nil
}
