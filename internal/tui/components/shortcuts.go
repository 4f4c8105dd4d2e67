// Package components provides reusable TUI components.
package components

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/nnyyxxxx/linutil/internal/tui/overlay"
	"github.com/nnyyxxxx/linutil/internal/tui/styles"
)

// RenderShortcutBar renders a titled, single-line list of shortcuts.
// Format: "Theme Selector: j/Down Next theme • k/Up Previous theme"
func RenderShortcutBar(styleSet styles.Styles, list overlay.ShortcutList, width int) string {
	if len(list.Items) == 0 {
		return ""
	}

	title := ""
	if list.Title != "" {
		title = styleSet.Title.Render(list.Title+":") + " "
	}

	model := help.New()
	model.Width = max(1, width-lipgloss.Width(title))
	model.ShortSeparator = " • "
	model.Styles.ShortKey = styleSet.Focus
	model.Styles.ShortDesc = styleSet.Muted
	model.Styles.ShortSeparator = styleSet.Border
	model.Styles.Ellipsis = styleSet.Muted

	return title + model.ShortHelpView(list.Bindings())
}
