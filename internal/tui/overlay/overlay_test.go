package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContent struct {
	keys     []string
	finished bool
	lastArea Rect
}

func (f *fakeContent) View(area Rect) string {
	f.lastArea = area
	return "fake"
}

func (f *fakeContent) HandleKey(msg tea.KeyMsg) bool {
	f.keys = append(f.keys, msg.String())
	if msg.Type == tea.KeyEnter {
		f.finished = true
	}
	return f.finished
}

func (f *fakeContent) Finished() bool { return f.finished }

func (f *fakeContent) Shortcuts() ShortcutList {
	return ShortcutList{Title: "Fake", Items: []Shortcut{NewShortcut("Close", "Enter")}}
}

func TestRectCentered(t *testing.T) {
	parent := Rect{Width: 100, Height: 40}

	got := parent.Centered(60, 50)
	assert.Equal(t, Rect{X: 20, Y: 10, Width: 60, Height: 20}, got)

	assert.Equal(t, parent, parent.Centered(150, 100))
	assert.True(t, parent.Centered(0, 50).Empty())
}

func TestRectInset(t *testing.T) {
	r := Rect{X: 2, Y: 3, Width: 10, Height: 1}
	assert.Equal(t, Rect{X: 3, Y: 4, Width: 8, Height: 0}, r.Inset(1))
}

func TestShortcutFromBinding(t *testing.T) {
	b := key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/Down", "Next theme"))
	s := ShortcutFromBinding(b)
	assert.Equal(t, "Next theme", s.Name)
	assert.Equal(t, []string{"j", "Down"}, s.Keys)

	noHelp := ShortcutFromBinding(key.NewBinding(key.WithKeys("q")))
	assert.Equal(t, []string{"q"}, noHelp.Keys)
}

func TestShortcutListBindings(t *testing.T) {
	list := ShortcutList{Items: []Shortcut{NewShortcut("Cancel", "Esc"), NewShortcut("Next", "j", "Down")}}
	bindings := list.Bindings()
	require.Len(t, bindings, 2)
	assert.Equal(t, "j/Down", bindings[1].Help().Key)
	assert.Equal(t, "Next", bindings[1].Help().Desc)
}

func TestFloatDelegates(t *testing.T) {
	content := &fakeContent{}
	f := NewFloat(content, 50, 50)

	view := f.View(Rect{Width: 40, Height: 10})
	assert.Contains(t, view, "fake")
	assert.Equal(t, Rect{X: 10, Y: 2, Width: 20, Height: 5}, content.lastArea)
	assert.Len(t, strings.Split(view, "\n"), 10)

	assert.False(t, f.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}))
	assert.False(t, f.Finished())
	assert.True(t, f.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.True(t, f.Finished())
	assert.Equal(t, "Fake", f.Shortcuts().Title)
	assert.Same(t, content, f.Content())
}

func TestFloatEmptyArea(t *testing.T) {
	assert.Equal(t, "", NewFloat(&fakeContent{}, 50, 50).View(Rect{}))
}

func TestFloatComposeDrawsOverBackground(t *testing.T) {
	dots := strings.Repeat(".", 20)
	background := strings.Join([]string{"\x1b[1m" + dots + "\x1b[0m", dots, dots, dots}, "\n")

	out := NewFloat(&fakeContent{}, 50, 50).Compose(background, Rect{Width: 20, Height: 4}, lipgloss.NewStyle())

	assert.Equal(t, []string{
		dots,
		"........fake........",
		dots,
		dots,
	}, strings.Split(out, "\n"))
}

func TestFloatComposeEmptyArea(t *testing.T) {
	out := NewFloat(&fakeContent{}, 0, 50).Compose("\x1b[1mmain\x1b[0m", Rect{Width: 20, Height: 4}, lipgloss.NewStyle())
	assert.Equal(t, "main", out)
}

func TestSkipCells(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"ascii", "abcdef", 2, "cdef"},
		{"past end", "ab", 5, ""},
		{"wide rune split", "漢字ab", 1, " 字ab"},
		{"wide rune boundary", "漢字ab", 2, "字ab"},
		{"only wide rune split", "漢", 1, " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, skipCells(tt.in, tt.n))
		})
	}
}
