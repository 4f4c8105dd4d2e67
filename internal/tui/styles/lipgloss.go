// Package styles derives lipgloss styles from the active theme.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nnyyxxxx/linutil/internal/theme"
)

// Styles contains lipgloss styles derived from a theme's color roles.
type Styles struct {
	Theme     theme.ID
	Title     lipgloss.Style
	Text      lipgloss.Style
	Muted     lipgloss.Style
	Directory lipgloss.Style
	Command   lipgloss.Style
	Tab       lipgloss.Style
	Success   lipgloss.Style
	Fail      lipgloss.Style
	Focus     lipgloss.Style
	Border    lipgloss.Style
	Panel     lipgloss.Style
	Highlight lipgloss.Style
}

// DefaultStyles builds styles from the default theme.
func DefaultStyles() Styles {
	return BuildStyles(theme.Default)
}

// BuildStyles converts a theme's color roles into lipgloss styles.
func BuildStyles(id theme.ID) Styles {
	text := id.TextColor().Lipgloss()
	border := id.BorderColor().Lipgloss()

	return Styles{
		Theme:     id,
		Title:     lipgloss.NewStyle().Foreground(text).Bold(true),
		Text:      lipgloss.NewStyle().Foreground(text),
		Muted:     lipgloss.NewStyle().Foreground(id.UnfocusedColor().Lipgloss()),
		Directory: lipgloss.NewStyle().Foreground(id.DirColor().Lipgloss()),
		Command:   lipgloss.NewStyle().Foreground(id.CmdColor().Lipgloss()),
		Tab:       lipgloss.NewStyle().Foreground(id.TabColor().Lipgloss()),
		Success:   lipgloss.NewStyle().Foreground(id.SuccessColor().Lipgloss()),
		Fail:      lipgloss.NewStyle().Foreground(id.FailColor().Lipgloss()),
		Focus:     lipgloss.NewStyle().Foreground(id.FocusedColor().Lipgloss()).Bold(true),
		Border:    lipgloss.NewStyle().Foreground(border),
		Panel:     PanelStyle(id),
		Highlight: HighlightStyle(id),
	}
}

// PanelStyle is a bordered box painted with the theme's border and background roles.
func PanelStyle(id theme.ID) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(id.TextColor().Lipgloss()).
		Background(id.BackgroundColor().Lipgloss()).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(id.BorderColor().Lipgloss())
}

// HighlightStyle marks the row under a cursor.
func HighlightStyle(id theme.ID) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(id.FocusedColor().Lipgloss()).
		Foreground(theme.Black.Lipgloss()).
		Bold(true)
}
