package components

import (
	"fmt"
	"strings"

	"github.com/nnyyxxxx/linutil/internal/tui/styles"
)

// EmptyState is a short message shown in place of content that cannot be drawn.
type EmptyState struct {
	// Title is the main message.
	Title string
	// Subtitle is an optional secondary line.
	Subtitle string
	// Suggestions are keys the user can press next.
	Suggestions []Suggestion
	// Warning renders the title with the fail color instead of muted.
	Warning bool
}

// Suggestion pairs a key with what it does.
type Suggestion struct {
	Key         string
	Description string
}

// Render renders the empty state with the given styles.
func (e EmptyState) Render(styleSet styles.Styles) string {
	titleStyle := styleSet.Muted
	if e.Warning {
		titleStyle = styleSet.Fail
	}
	lines := []string{titleStyle.Render(e.Title)}

	if e.Subtitle != "" {
		lines = append(lines, styleSet.Muted.Render(e.Subtitle))
	}

	for _, s := range e.Suggestions {
		line := styleSet.Muted.Render("Press ") + styleSet.Command.Render(s.Key)
		if s.Description != "" {
			line += styleSet.Muted.Render(" to " + s.Description + ".")
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// RenderCompact renders the title and first suggestion on one line.
func (e EmptyState) RenderCompact(styleSet styles.Styles) string {
	line := e.Title
	if len(e.Suggestions) > 0 {
		line += fmt.Sprintf(" Try: %s", e.Suggestions[0].Key)
	}
	return styleSet.Muted.Render(line)
}

// EmptyTab is shown when the active tab has no entries.
func EmptyTab() EmptyState {
	return EmptyState{
		Title:    "No entries.",
		Subtitle: "This tab has nothing to run.",
		Suggestions: []Suggestion{
			{Key: "Tab", Description: "switch tabs"},
		},
	}
}

// TerminalTooSmall is shown when the terminal is below the minimum size.
func TerminalTooSmall(width, height, minWidth, minHeight int) EmptyState {
	return EmptyState{
		Title:    fmt.Sprintf("Terminal too small (%dx%d).", width, height),
		Subtitle: fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight),
		Suggestions: []Suggestion{
			{Key: "q", Description: "quit"},
		},
		Warning: true,
	}
}
