// Package cli provides table helpers for human-readable output.
package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/nnyyxxxx/linutil/internal/theme"
)

const tablePadding = 2

func writeTable(out io.Writer, headers []string, rows [][]string) error {
	writer := tabwriter.NewWriter(out, 0, 0, tablePadding, ' ', tabwriter.StripEscape)
	if len(headers) > 0 {
		fmt.Fprintln(writer, strings.Join(headers, "\t"))
	}
	for _, row := range rows {
		fmt.Fprintln(writer, strings.Join(row, "\t"))
	}
	return writer.Flush()
}

// formatColor prints true colors as hex and everything else by name.
func formatColor(c theme.Color) string {
	if hex := c.Hex(); hex != "" {
		return hex
	}
	return strings.ToLower(c.String())
}

// formatIcon quotes icons so trailing spaces stay visible.
func formatIcon(icon string) string {
	if icon == "" {
		return "-"
	}
	return fmt.Sprintf("%q", icon)
}

func formatYesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
