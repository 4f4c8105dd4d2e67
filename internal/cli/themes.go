// Package cli provides theme inspection commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/nnyyxxxx/linutil/internal/theme"
)

func init() {
	rootCmd.AddCommand(themesCmd)
	themesCmd.AddCommand(themesShowCmd)
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available themes",
	Long:  "List the compiled themes with their main colors, in navigation order.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debug().Int("count", theme.Count).Bool("json", IsJSONOutput()).Msg("listing themes")
		if IsJSONOutput() {
			return writeThemesJSON(cmd.OutOrStdout(), theme.All())
		}
		return writeThemesTable(cmd.OutOrStdout())
	},
}

var themesShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show every color and icon of a theme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := theme.Parse(args[0])
		if err != nil {
			logger.Debug().Err(err).Msg("theme lookup failed")
			return err
		}
		if IsJSONOutput() {
			return writeThemesJSON(cmd.OutOrStdout(), []theme.ID{id})
		}
		return writeThemeDetail(cmd.OutOrStdout(), id)
	},
}

type themeJSON struct {
	Name    string            `json:"name"`
	Display string            `json:"display"`
	Active  bool              `json:"active"`
	Colors  map[string]string `json:"colors"`
	Icons   map[string]string `json:"icons"`
}

func activeTheme() theme.ID {
	return GetConfig().ThemeID()
}

func writeThemesTable(out io.Writer) error {
	active := activeTheme()
	rows := make([][]string, 0, theme.Count)
	for _, id := range theme.All() {
		rows = append(rows, []string{
			id.Slug(),
			id.String(),
			formatColor(id.DirColor()),
			formatColor(id.CmdColor()),
			formatColor(id.TabColor()),
			formatColor(id.SuccessColor()),
			formatColor(id.FailColor()),
			formatColor(id.FocusedColor()),
			formatYesNo(id.DirIcon() != ""),
			formatYesNo(id == active),
		})
	}
	return writeTable(out, []string{"NAME", "DISPLAY", "DIRECTORY", "COMMAND", "TAB", "SUCCESS", "FAIL", "FOCUSED", "ICONS", "ACTIVE"}, rows)
}

func writeThemeDetail(out io.Writer, id theme.ID) error {
	fmt.Fprintf(out, "%s (%s)\n\n", id, id.Slug())

	rows := make([][]string, 0)
	for _, role := range theme.ColorRoles() {
		rows = append(rows, []string{"color", role.String(), formatColor(theme.ColorFor(id, role))})
	}
	for _, role := range theme.IconRoles() {
		rows = append(rows, []string{"icon", role.String(), formatIcon(theme.IconFor(id, role))})
	}
	return writeTable(out, []string{"KIND", "ROLE", "VALUE"}, rows)
}

func writeThemesJSON(out io.Writer, ids []theme.ID) error {
	active := activeTheme()
	items := make([]themeJSON, 0, len(ids))
	for _, id := range ids {
		item := themeJSON{
			Name:    id.Slug(),
			Display: id.String(),
			Active:  id == active,
			Colors:  make(map[string]string),
			Icons:   make(map[string]string),
		}
		for _, role := range theme.ColorRoles() {
			item.Colors[role.String()] = formatColor(theme.ColorFor(id, role))
		}
		for _, role := range theme.IconRoles() {
			item.Icons[role.String()] = theme.IconFor(id, role)
		}
		items = append(items, item)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(items)
}
