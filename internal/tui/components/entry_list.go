// Package components provides reusable TUI components.
package components

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/nnyyxxxx/linutil/internal/tui/styles"
)

// EntryKind distinguishes directories from runnable commands.
type EntryKind int

const (
	EntryCommand EntryKind = iota
	EntryDirectory
)

// Entry is one row of the entry list.
type Entry struct {
	Name string
	Kind EntryKind
}

// Tab is a named group of entries.
type Tab struct {
	Name    string
	Entries []Entry
}

type selection struct {
	tab   int
	index int
}

// EntryList stores state for a tabbed list of directories and commands.
// Selections survive tab switches.
type EntryList struct {
	Tabs     []Tab
	Tab      int
	Index    int
	selected map[selection]bool
}

// NewEntryList creates an entry list on the first tab.
func NewEntryList(tabs []Tab) *EntryList {
	return &EntryList{
		Tabs:     tabs,
		selected: make(map[selection]bool),
	}
}

// Entries returns the entries of the active tab.
func (l *EntryList) Entries() []Entry {
	if l.Tab < 0 || l.Tab >= len(l.Tabs) {
		return nil
	}
	return l.Tabs[l.Tab].Entries
}

// Move shifts the cursor, wrapping at both ends.
func (l *EntryList) Move(delta int) {
	n := len(l.Entries())
	if n == 0 {
		l.Index = 0
		return
	}
	l.Index = ((l.Index+delta)%n + n) % n
}

// NextTab cycles the active tab and puts the cursor on its first entry.
func (l *EntryList) NextTab() {
	if len(l.Tabs) == 0 {
		return
	}
	l.Tab = (l.Tab + 1) % len(l.Tabs)
	l.Index = 0
}

// ToggleSelected marks or unmarks the command under the cursor.
// Directories cannot be selected.
func (l *EntryList) ToggleSelected() {
	entries := l.Entries()
	if l.Index < 0 || l.Index >= len(entries) || entries[l.Index].Kind != EntryCommand {
		return
	}
	if l.selected == nil {
		l.selected = make(map[selection]bool)
	}
	key := selection{tab: l.Tab, index: l.Index}
	if l.selected[key] {
		delete(l.selected, key)
		return
	}
	l.selected[key] = true
}

// IsSelected reports whether entry i of the active tab is selected.
func (l *EntryList) IsSelected(i int) bool {
	return l.selected[selection{tab: l.Tab, index: i}]
}

// SelectedCount is the number of selected commands across all tabs.
func (l *EntryList) SelectedCount() int {
	return len(l.selected)
}

// RenderTabs renders the tab column. The active tab carries the theme's tab icon.
func (l *EntryList) RenderTabs(styleSet styles.Styles, width int) string {
	icon := styleSet.Theme.TabIcon()
	lines := make([]string, 0, len(l.Tabs))
	for i, tab := range l.Tabs {
		label := fitWidth(tab.Name, width-runewidth.StringWidth(icon))
		if i == l.Tab {
			lines = append(lines, styleSet.Tab.Render(icon+label))
			continue
		}
		lines = append(lines, styleSet.Muted.Render(strings.Repeat(" ", runewidth.StringWidth(icon))+label))
	}
	return strings.Join(lines, "\n")
}

// Render renders the entries with theme colors, icons and the cursor row highlighted.
func (l *EntryList) Render(styleSet styles.Styles, width int) string {
	entries := l.Entries()
	if len(entries) == 0 {
		return EmptyTab().Render(styleSet)
	}
	id := styleSet.Theme
	lines := make([]string, 0, len(entries))
	for i, entry := range entries {
		prefix := id.CmdIcon()
		style := styleSet.Command
		if entry.Kind == EntryDirectory {
			prefix = id.DirIcon()
			style = styleSet.Directory
		}
		if prefix != "" {
			prefix += " "
		}
		if l.IsSelected(i) {
			prefix = id.MultiSelectIcon() + prefix
		}
		label := fitWidth(prefix+entry.Name, width)
		if i == l.Index {
			lines = append(lines, styleSet.Highlight.Render(label))
			continue
		}
		if l.IsSelected(i) {
			style = styleSet.Success
		}
		lines = append(lines, style.Render(label))
	}
	return strings.Join(lines, "\n")
}

// fitWidth truncates or pads s to width display cells.
func fitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > width {
		return runewidth.Truncate(s, width, "…")
	}
	return runewidth.FillRight(s, width)
}
