package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

var _ Content = (*Float)(nil)

// Float places Content in a centered region sized as a percentage of the host view.
type Float struct {
	content       Content
	widthPercent  int
	heightPercent int
}

// NewFloat wraps content.
func NewFloat(content Content, widthPercent, heightPercent int) *Float {
	return &Float{
		content:       content,
		widthPercent:  widthPercent,
		heightPercent: heightPercent,
	}
}

// Content returns the wrapped overlay content.
func (f *Float) Content() Content {
	return f.content
}

// Area returns the region the content occupies inside parent.
func (f *Float) Area(parent Rect) Rect {
	return parent.Centered(f.widthPercent, f.heightPercent)
}

// View renders the content and centers it in a block the size of parent.
func (f *Float) View(parent Rect) string {
	area := f.Area(parent)
	if area.Empty() {
		return ""
	}
	return lipgloss.Place(parent.Width, parent.Height, lipgloss.Center, lipgloss.Center, f.content.View(area))
}

// Compose draws the content centered over background, which should fill parent.
// Background text keeps its characters but is repainted with backdrop.
func (f *Float) Compose(background string, parent Rect, backdrop lipgloss.Style) string {
	bg := strings.Split(background, "\n")
	for i, line := range bg {
		bg[i] = ansi.Strip(line)
	}

	area := f.Area(parent)
	if area.Empty() {
		return paintLines(bg, backdrop)
	}

	view := f.content.View(area)
	fg := strings.Split(view, "\n")
	x := area.X + max(0, (area.Width-lipgloss.Width(view))/2)
	y := area.Y + max(0, (area.Height-len(fg))/2)
	for len(bg) < y+len(fg) {
		bg = append(bg, "")
	}

	out := make([]string, len(bg))
	for i, plain := range bg {
		row := i - y
		if row < 0 || row >= len(fg) {
			out[i] = backdrop.Render(plain)
			continue
		}
		line := fg[row]
		left := runewidth.FillRight(runewidth.Truncate(plain, x, ""), x)
		right := skipCells(plain, x+lipgloss.Width(line))
		out[i] = backdrop.Render(left) + line + backdrop.Render(right)
	}
	return strings.Join(out, "\n")
}

func paintLines(lines []string, style lipgloss.Style) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = style.Render(line)
	}
	return strings.Join(out, "\n")
}

// skipCells drops the first n display cells of s. A wide rune cut in half
// becomes spaces.
func skipCells(s string, n int) string {
	cells := 0
	for i, r := range s {
		if cells >= n {
			return strings.Repeat(" ", cells-n) + s[i:]
		}
		cells += runewidth.RuneWidth(r)
	}
	if cells > n {
		return strings.Repeat(" ", cells-n)
	}
	return ""
}

// HandleKey forwards the key to the content.
func (f *Float) HandleKey(msg tea.KeyMsg) bool {
	return f.content.HandleKey(msg)
}

// Finished reports whether the content is done.
func (f *Float) Finished() bool {
	return f.content.Finished()
}

// Shortcuts returns the content's shortcut list.
func (f *Float) Shortcuts() ShortcutList {
	return f.content.Shortcuts()
}
