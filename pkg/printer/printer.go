// Package printer renders user-facing CLI output: styled status lines,
// tables and JSON.
package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
)

// OutputType selects the rendering format.
type OutputType string

const (
	OutputTypeTable OutputType = "table"
	OutputTypeJSON  OutputType = "json"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
)

// Printer writes structured output in a fixed format.
type Printer struct {
	outputType OutputType
	pretty     bool
}

// New creates a printer.
func New(outputType OutputType, pretty bool) *Printer {
	return &Printer{outputType: outputType, pretty: pretty}
}

// PrintJSON writes v as JSON to stdout.
func (p *Printer) PrintJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// PrintSuccess prints a green success line.
func PrintSuccess(msg string) {
	fmt.Println(successStyle.Render("✓ " + msg))
}

// PrintInfo prints an informational line.
func PrintInfo(msg string) {
	fmt.Println(infoStyle.Render(msg))
}

// PrintWarning prints a yellow warning line.
func PrintWarning(msg string) {
	fmt.Println(warnStyle.Render(msg))
}

// PrintError prints a red error line.
func PrintError(msg string) {
	fmt.Println(errorStyle.Render("✗ " + msg))
}

// PrintHeader prints a section heading.
func PrintHeader(msg string) {
	fmt.Println(headerStyle.Render(msg))
}

// NewTablePrinter creates a table writer with the shared table defaults.
func NewTablePrinter(w io.Writer) *tablewriter.Table {
	return tablewriter.NewWriter(w)
}

// TruncateString shortens s to max runes, appending an ellipsis when it was
// cut.
func TruncateString(s string, max int) string {
	if max <= 3 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
