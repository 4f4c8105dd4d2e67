// Package tui implements the linutil terminal user interface.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/nnyyxxxx/linutil/internal/theme"
	"github.com/nnyyxxxx/linutil/internal/tui/components"
	"github.com/nnyyxxxx/linutil/internal/tui/overlay"
	"github.com/nnyyxxxx/linutil/internal/tui/styles"
)

// Config configures the TUI.
type Config struct {
	Theme  theme.ID
	Logger zerolog.Logger
}

// Run launches the TUI program and blocks until it exits.
func Run(cfg Config) error {
	program := tea.NewProgram(newModel(cfg), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

const (
	minWidth  = 50
	minHeight = 20

	// Below this height the too-small notice collapses to one line.
	compactNoticeHeight = 3

	tabColumnWidth = 22

	floatWidthPercent  = 60
	floatHeightPercent = 70
)

type hostKeyMap struct {
	Down    key.Binding
	Up      key.Binding
	Toggle  key.Binding
	NextTab key.Binding
	Theme   key.Binding
	Quit    key.Binding
}

func defaultHostKeys() hostKeyMap {
	return hostKeyMap{
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/Down", "Next entry")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/Up", "Previous entry")),
		Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("Space", "Select")),
		NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "Next tab")),
		Theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "Change theme")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q/Ctrl-c", "Quit")),
	}
}

// themeChooser is implemented by overlays that end with a theme decision.
type themeChooser interface {
	Committed() bool
	SelectedTheme() theme.ID
}

type model struct {
	width   int
	height  int
	theme   theme.ID
	styles  styles.Styles
	keys    hostKeyMap
	entries *components.EntryList
	float   *overlay.Float
	logger  zerolog.Logger
}

func newModel(cfg Config) model {
	id := cfg.Theme
	if !id.Valid() {
		id = theme.Default
	}
	return model{
		theme:   id,
		styles:  styles.BuildStyles(id),
		keys:    defaultHostKeys(),
		entries: components.NewEntryList(sampleTabs()),
		logger:  cfg.Logger,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.float != nil {
			if m.float.HandleKey(msg) {
				m = m.closeFloat()
			}
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Theme):
			m.float = overlay.NewFloat(components.NewThemeSelector(m.theme), floatWidthPercent, floatHeightPercent)
			m.logger.Debug().Str("theme", m.theme.Slug()).Msg("theme selector opened")
		case key.Matches(msg, m.keys.Down):
			m.entries.Move(1)
		case key.Matches(msg, m.keys.Up):
			m.entries.Move(-1)
		case key.Matches(msg, m.keys.Toggle):
			m.entries.ToggleSelected()
		case key.Matches(msg, m.keys.NextTab):
			m.entries.NextTab()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// closeFloat drops the overlay and applies its theme when it was committed.
func (m model) closeFloat() model {
	content := m.float.Content()
	m.float = nil

	chooser, ok := content.(themeChooser)
	if !ok {
		return m
	}
	if !chooser.Committed() {
		m.logger.Debug().Str("theme", m.theme.Slug()).Msg("theme selection cancelled")
		return m
	}
	return m.applyTheme(chooser.SelectedTheme())
}

func (m model) applyTheme(id theme.ID) model {
	if id == m.theme {
		return m
	}
	m.logger.Info().
		Str("from", m.theme.Slug()).
		Str("to", id.Slug()).
		Msg("theme applied")
	m.theme = id
	m.styles = styles.BuildStyles(id)
	return m
}

func (m model) View() string {
	if m.width > 0 && m.height > 0 {
		if m.width < minWidth || m.height < minHeight {
			notice := components.TerminalTooSmall(m.width, m.height, minWidth, minHeight)
			if m.height < compactNoticeHeight {
				return notice.RenderCompact(m.styles) + "\n"
			}
			return notice.Render(m.styles) + "\n"
		}
	}

	width, height := m.width, m.height
	if width == 0 || height == 0 {
		width, height = 80, 24
	}
	bodyHeight := max(0, height-1)

	body := m.mainView(width, bodyHeight)
	if m.float != nil {
		body = m.float.Compose(body, overlay.Rect{Width: width, Height: bodyHeight}, m.styles.Muted)
	}

	return body + "\n" + components.RenderShortcutBar(m.styles, m.shortcuts(), width)
}

func (m model) mainView(width, height int) string {
	title := m.styles.Title.Render("linutil") + m.styles.Muted.Render(fmt.Sprintf("  theme: %s", m.theme))
	if n := m.entries.SelectedCount(); n > 0 {
		title += m.styles.Success.Render(fmt.Sprintf("  %d selected", n))
	}

	panelHeight := max(1, height-3)
	tabs := m.styles.Panel.Copy().
		Width(tabColumnWidth).
		Height(panelHeight).
		Render(m.entries.RenderTabs(m.styles, tabColumnWidth))
	listWidth := max(1, width-tabColumnWidth-4)
	list := m.styles.Panel.Copy().
		Width(listWidth).
		Height(panelHeight).
		Render(m.entries.Render(m.styles, listWidth))

	return lipgloss.JoinVertical(lipgloss.Left, title, lipgloss.JoinHorizontal(lipgloss.Top, tabs, list))
}

func (m model) shortcuts() overlay.ShortcutList {
	if m.float != nil {
		return m.float.Shortcuts()
	}
	return overlay.ShortcutList{
		Title: "linutil",
		Items: []overlay.Shortcut{
			overlay.ShortcutFromBinding(m.keys.Down),
			overlay.ShortcutFromBinding(m.keys.Up),
			overlay.ShortcutFromBinding(m.keys.Toggle),
			overlay.ShortcutFromBinding(m.keys.NextTab),
			overlay.ShortcutFromBinding(m.keys.Theme),
			overlay.ShortcutFromBinding(m.keys.Quit),
		},
	}
}
