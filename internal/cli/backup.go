package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/craftctl-dev/craftctl/pkg/printer"
)

var BackupCmd = &cobra.Command{
	Use:   "backup <name>",
	Short: "Backup server data",
	Long:  `Archives a server's data directory into the backups directory.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runBackup,
}

func runBackup(cmd *cobra.Command, args []string) error {
	name := args[0]

	dest, err := mgr.Backup(cmd.Context(), name)
	if err != nil {
		return err
	}
	printer.PrintSuccess(fmt.Sprintf("Backup created: %s", dest))
	return nil
}
