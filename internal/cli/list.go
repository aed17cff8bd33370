package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/craftctl-dev/craftctl/internal/manager"
	"github.com/craftctl-dev/craftctl/internal/models"
	"github.com/craftctl-dev/craftctl/pkg/printer"
)

var listOutputFormat string

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all servers",
	Long:  `Lists every configured server with its live running state.`,
	RunE:  runList,
}

func init() {
	ListCmd.Flags().StringVarP(&listOutputFormat, "output", "o", "table", "Output format (table, json)")
}

type listEntry struct {
	Name   string            `json:"name"`
	Status models.Status     `json:"status"`
	Info   models.ServerInfo `json:"info"`
}

func runList(cmd *cobra.Command, args []string) error {
	entries, err := mgr.List(cmd.Context())
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		printer.PrintWarning(fmt.Sprintf("No servers configured yet in %s. Use 'create' to add a server.", settings.Home))
		return nil
	}

	if listOutputFormat == "json" {
		out := make([]listEntry, 0, len(entries))
		for _, e := range entries {
			out = append(out, listEntry{Name: e.Name, Status: e.Status, Info: e.Info})
		}
		p := printer.New(printer.OutputTypeJSON, false)
		return p.PrintJSON(out)
	}

	printTable(entries)
	return nil
}

func printTable(entries []manager.Entry) {
	printer.PrintHeader("Configured Minecraft Servers")

	t := printer.NewTablePrinter(os.Stdout)
	t.Header("NAME", "STATUS", "TYPE", "VERSION", "PORT", "MEMORY", "CREATED", "LAST STARTED")

	for _, e := range entries {
		version := e.Info.Version
		if e.Info.ModLoader != "" {
			version = fmt.Sprintf("%s (%s)", version, e.Info.ModLoader)
		}
		lastStarted := "Never"
		if e.Info.LastStarted != nil {
			lastStarted = e.Info.LastStarted.Format("2006-01-02 15:04:05")
		}
		t.Append([]string{
			e.Name,
			string(e.Status),
			string(e.Info.ServerType),
			printer.TruncateString(version, 30),
			e.Info.Port,
			e.Info.Memory,
			e.Info.CreatedAt.Format("2006-01-02 15:04:05"),
			lastStarted,
		})
	}

	if err := t.Render(); err != nil {
		printer.PrintError(fmt.Sprintf("failed to render table: %v", err))
	}
}
