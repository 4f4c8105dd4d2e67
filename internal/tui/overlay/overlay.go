// Package overlay defines the contract for modal content drawn above the main view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Content is anything the host can show as an overlay.
type Content interface {
	// View renders the content to fill area.
	View(area Rect) string
	// HandleKey processes one key press and reports whether the overlay is done.
	HandleKey(msg tea.KeyMsg) bool
	// Finished reports whether the overlay already reached a terminal state.
	Finished() bool
	// Shortcuts describes the keys the overlay responds to.
	Shortcuts() ShortcutList
}

// Shortcut pairs an action name with the key labels that trigger it.
type Shortcut struct {
	Name string
	Keys []string
}

// ShortcutList is a titled group of shortcuts for the help bar.
type ShortcutList struct {
	Title string
	Items []Shortcut
}

// NewShortcut builds a shortcut from key labels.
func NewShortcut(name string, keys ...string) Shortcut {
	return Shortcut{Name: name, Keys: keys}
}

// ShortcutFromBinding reads the help text of a key binding. Labels in the help
// key are separated by "/".
func ShortcutFromBinding(b key.Binding) Shortcut {
	help := b.Help()
	labels := strings.Split(help.Key, "/")
	if help.Key == "" {
		labels = b.Keys()
	}
	return Shortcut{Name: help.Desc, Keys: labels}
}

// Binding converts the shortcut back into a key binding for help rendering.
func (s Shortcut) Binding() key.Binding {
	return key.NewBinding(
		key.WithKeys(s.Keys...),
		key.WithHelp(strings.Join(s.Keys, "/"), s.Name),
	)
}

// Bindings returns every item as a key binding.
func (l ShortcutList) Bindings() []key.Binding {
	out := make([]key.Binding, 0, len(l.Items))
	for _, item := range l.Items {
		out = append(out, item.Binding())
	}
	return out
}
