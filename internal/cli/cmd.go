package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var CmdCmd = &cobra.Command{
	Use:   "cmd <name> <command...>",
	Short: "Send a console command over RCON",
	Long: `Executes a console command on a running server through its RCON listener
and prints the response. The server must have been created with --rcon.

Examples:
  craftctl cmd alice list
  craftctl cmd alice say hello everyone`,
	Args: cobra.MinimumNArgs(2),
	RunE: runCmd,
}

func runCmd(cmd *cobra.Command, args []string) error {
	name := args[0]
	command := strings.Join(args[1:], " ")

	response, err := mgr.SendCommand(cmd.Context(), name, command)
	if err != nil {
		return err
	}
	if response != "" {
		fmt.Println(response)
	}
	return nil
}
