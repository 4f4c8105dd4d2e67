// Package components provides reusable TUI components.
package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nnyyxxxx/linutil/internal/theme"
	"github.com/nnyyxxxx/linutil/internal/tui/overlay"
	"github.com/nnyyxxxx/linutil/internal/tui/styles"
)

// SelectorState is the lifecycle stage of a ThemeSelector.
type SelectorState int

const (
	SelectorBrowsing SelectorState = iota
	SelectorCommitted
	SelectorCancelled
)

func (s SelectorState) String() string {
	switch s {
	case SelectorCommitted:
		return "committed"
	case SelectorCancelled:
		return "cancelled"
	default:
		return "browsing"
	}
}

type themeSelectorKeyMap struct {
	Next     key.Binding
	Previous key.Binding
	Select   key.Binding
	Cancel   key.Binding
}

func defaultThemeSelectorKeys() themeSelectorKeyMap {
	return themeSelectorKeyMap{
		Next:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/Down", "Next theme")),
		Previous: key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/Up", "Previous theme")),
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Select theme")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Cancel")),
	}
}

// selectorChromeRows is the height of everything in the frame except the theme
// rows: the title, the two-line preview box and the list box's header and borders.
const selectorChromeRows = 9

// ThemeSelector is an overlay for browsing themes with a live preview.
// Only the cursor is stored; the selected theme is read from it.
type ThemeSelector struct {
	themes  []theme.ID
	cursor  int
	initial theme.ID
	state   SelectorState
	keys    themeSelectorKeyMap
}

var _ overlay.Content = (*ThemeSelector)(nil)

// NewThemeSelector opens a selector on current. An ID outside the enumeration
// puts the cursor on the first theme.
func NewThemeSelector(current theme.ID) *ThemeSelector {
	s := &ThemeSelector{
		themes:  theme.All(),
		initial: current,
		keys:    defaultThemeSelectorKeys(),
	}
	s.cursor = s.position(current)
	return s
}

func (s *ThemeSelector) position(id theme.ID) int {
	for i, t := range s.themes {
		if t == id {
			return i
		}
	}
	return 0
}

// SelectedTheme is the highlighted theme. After a cancel it is the theme the
// selector was opened with.
func (s *ThemeSelector) SelectedTheme() theme.ID {
	return s.themes[s.cursor]
}

// InitialTheme is the theme the selector was opened with.
func (s *ThemeSelector) InitialTheme() theme.ID {
	return s.initial
}

// Cursor is the highlighted row.
func (s *ThemeSelector) Cursor() int {
	return s.cursor
}

// State reports the lifecycle stage.
func (s *ThemeSelector) State() SelectorState {
	return s.state
}

// Committed reports whether the user confirmed the highlighted theme.
func (s *ThemeSelector) Committed() bool {
	return s.state == SelectorCommitted
}

// Cancelled reports whether the user backed out.
func (s *ThemeSelector) Cancelled() bool {
	return s.state == SelectorCancelled
}

// Finished reports whether the selector reached a terminal state.
func (s *ThemeSelector) Finished() bool {
	return s.state != SelectorBrowsing
}

// move shifts the cursor by delta rows, wrapping at both ends.
func (s *ThemeSelector) move(delta int) {
	n := len(s.themes)
	s.cursor = ((s.cursor+delta)%n + n) % n
}

// HandleKey applies one key press and reports whether the selector is done.
// Keys after a terminal state are ignored.
func (s *ThemeSelector) HandleKey(msg tea.KeyMsg) bool {
	if s.Finished() {
		return true
	}
	switch {
	case key.Matches(msg, s.keys.Next):
		s.move(1)
	case key.Matches(msg, s.keys.Previous):
		s.move(-1)
	case key.Matches(msg, s.keys.Select):
		s.state = SelectorCommitted
	case key.Matches(msg, s.keys.Cancel):
		s.cursor = s.position(s.initial)
		s.state = SelectorCancelled
	}
	return s.Finished()
}

// Shortcuts lists the selector's key bindings.
func (s *ThemeSelector) Shortcuts() overlay.ShortcutList {
	return overlay.ShortcutList{
		Title: "Theme Selector",
		Items: []overlay.Shortcut{
			overlay.ShortcutFromBinding(s.keys.Next),
			overlay.ShortcutFromBinding(s.keys.Previous),
			overlay.ShortcutFromBinding(s.keys.Select),
			overlay.ShortcutFromBinding(s.keys.Cancel),
		},
	}
}

// View draws the preview and the theme list using the highlighted theme.
func (s *ThemeSelector) View(area overlay.Rect) string {
	id := s.SelectedTheme()
	styleSet := styles.BuildStyles(id)

	// Outer border takes one cell on each side, inner boxes another.
	content := area.Inset(1)
	inner := content.Width
	boxWidth := max(0, inner-2)

	title := lipgloss.PlaceHorizontal(inner, lipgloss.Center, styleSet.Title.Render("Theme Selector"))
	rows := len(s.themes)
	if content.Height > 0 {
		rows = max(1, content.Height-selectorChromeRows)
	}
	preview := renderSelectorBox(styleSet, "Preview", s.previewLines(styleSet), boxWidth)
	list := renderSelectorBox(styleSet, "Themes", s.listLines(styleSet, boxWidth, rows), boxWidth)

	body := lipgloss.JoinVertical(lipgloss.Left, title, preview, list)
	frame := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(id.BorderColor().Lipgloss()).
		Width(inner)
	if content.Height > 0 {
		frame = frame.Height(content.Height).MaxHeight(area.Height)
	}
	return frame.Render(body)
}

func (s *ThemeSelector) previewLines(styleSet styles.Styles) []string {
	return []string{
		strings.Join([]string{
			styleSet.Directory.Render("Directory"),
			styleSet.Command.Render("Command"),
			styleSet.Tab.Render("Tab"),
		}, " "),
		strings.Join([]string{
			styleSet.Success.Render("Success"),
			styleSet.Fail.Render("Fail"),
			styleSet.Focus.Render("Focused"),
		}, " "),
	}
}

// visibleRange returns the bounds of at most rows themes, keeping the cursor in view.
func (s *ThemeSelector) visibleRange(rows int) (int, int) {
	n := len(s.themes)
	if rows <= 0 || rows >= n {
		return 0, n
	}
	start := max(0, min(s.cursor-rows/2, n-rows))
	return start, start + rows
}

func (s *ThemeSelector) listLines(styleSet styles.Styles, width, rows int) []string {
	start, end := s.visibleRange(rows)
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		label := s.themes[i].String()
		if i == s.cursor {
			lines = append(lines, styleSet.Highlight.Width(width).Render(label))
			continue
		}
		lines = append(lines, styleSet.Text.Render(label))
	}
	return lines
}

func renderSelectorBox(styleSet styles.Styles, title string, lines []string, width int) string {
	content := append([]string{styleSet.Muted.Render(title)}, lines...)
	return styleSet.Panel.Copy().Width(width).Render(strings.Join(content, "\n"))
}
