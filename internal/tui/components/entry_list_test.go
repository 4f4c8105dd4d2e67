package components

import (
	"strings"
	"testing"

	"github.com/nnyyxxxx/linutil/internal/theme"
	"github.com/nnyyxxxx/linutil/internal/tui/overlay"
	"github.com/nnyyxxxx/linutil/internal/tui/styles"
)

func sampleList() *EntryList {
	return NewEntryList([]Tab{
		{
			Name: "System Setup",
			Entries: []Entry{
				{Name: "Fonts", Kind: EntryDirectory},
				{Name: "Full System Update", Kind: EntryCommand},
				{Name: "Build Prerequisites", Kind: EntryCommand},
			},
		},
		{
			Name: "Applications",
			Entries: []Entry{
				{Name: "Alacritty", Kind: EntryCommand},
				{Name: "Kitty", Kind: EntryCommand},
			},
		},
	})
}

func TestEntryListMoveWraps(t *testing.T) {
	list := sampleList()
	list.Move(-1)
	if list.Index != 2 {
		t.Fatalf("expected Index 2 after wrapping back, got %d", list.Index)
	}
	list.Move(1)
	if list.Index != 0 {
		t.Fatalf("expected Index 0 after wrapping forward, got %d", list.Index)
	}

	empty := NewEntryList(nil)
	empty.Move(1)
	if empty.Index != 0 {
		t.Fatalf("expected Index 0 on empty list, got %d", empty.Index)
	}
}

func TestEntryListToggleSelected(t *testing.T) {
	list := sampleList()
	list.ToggleSelected()
	if list.SelectedCount() != 0 {
		t.Fatalf("directories must not be selectable, got %d selected", list.SelectedCount())
	}

	list.Move(1)
	list.ToggleSelected()
	if !list.IsSelected(1) {
		t.Fatalf("expected command 1 to be selected")
	}
	list.ToggleSelected()
	if list.IsSelected(1) {
		t.Fatalf("expected command 1 to be unselected")
	}

	bare := &EntryList{Tabs: []Tab{{Name: "bare", Entries: []Entry{{Name: "x"}}}}}
	bare.ToggleSelected()
	if !bare.IsSelected(0) {
		t.Fatalf("expected selection on list built without constructor")
	}
}

func TestEntryListTabsHaveOwnEntries(t *testing.T) {
	list := sampleList()
	list.Move(2)
	list.ToggleSelected()

	list.NextTab()
	if list.Index != 0 {
		t.Fatalf("expected cursor reset on tab switch, got %d", list.Index)
	}
	if got := list.Entries()[0].Name; got != "Alacritty" {
		t.Fatalf("expected Applications entries, got %q first", got)
	}
	if list.IsSelected(2) {
		t.Fatalf("selection must stay on its own tab")
	}
	result := list.Render(styles.DefaultStyles(), 40)
	if strings.Contains(result, "Fonts") || !strings.Contains(result, "Kitty") {
		t.Fatalf("expected only Applications entries, got: %s", result)
	}

	list.ToggleSelected()
	if list.SelectedCount() != 2 {
		t.Fatalf("expected selections across tabs to add up, got %d", list.SelectedCount())
	}

	list.NextTab()
	if !list.IsSelected(2) {
		t.Fatalf("expected selection to survive switching back")
	}
}

func TestEntryListRenderIcons(t *testing.T) {
	tests := []struct {
		name    string
		id      theme.ID
		want    []string
		notWant []string
	}{
		{
			name: "compatible uses textual icons",
			id:   theme.Compatible,
			want: []string{"[DIR] Fonts", "[CMD] Full System Update", "*[CMD] Build Prerequisites"},
		},
		{
			name:    "other themes rely on color",
			id:      theme.Nord,
			want:    []string{"Fonts", "Full System Update"},
			notWant: []string{"[DIR]", "[CMD]", "*"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := sampleList()
			list.Index = 2
			list.ToggleSelected()
			list.Index = 0

			result := list.Render(styles.BuildStyles(tt.id), 40)
			for _, want := range tt.want {
				if !strings.Contains(result, want) {
					t.Errorf("expected %q in output, got: %s", want, result)
				}
			}
			for _, unwanted := range tt.notWant {
				if strings.Contains(result, unwanted) {
					t.Errorf("did not expect %q in output, got: %s", unwanted, result)
				}
			}
		})
	}
}

func TestEntryListRenderTruncates(t *testing.T) {
	list := sampleList()
	result := list.Render(styles.DefaultStyles(), 8)
	if !strings.Contains(result, "Full Sy…") {
		t.Fatalf("expected truncated label, got: %s", result)
	}
}

func TestEntryListRenderTabs(t *testing.T) {
	list := sampleList()
	list.NextTab()

	result := list.RenderTabs(styles.BuildStyles(theme.Compatible), 20)
	if !strings.Contains(result, ">> Applications") {
		t.Fatalf("expected tab icon on active tab, got: %s", result)
	}
	if strings.Contains(result, ">> System Setup") {
		t.Fatalf("inactive tab must not carry the icon, got: %s", result)
	}

	list.NextTab()
	if list.Tab != 0 {
		t.Fatalf("expected tab to wrap to 0, got %d", list.Tab)
	}
}

func TestEntryListRenderEmpty(t *testing.T) {
	result := NewEntryList([]Tab{{Name: "Empty"}}).Render(styles.DefaultStyles(), 20)
	if !strings.Contains(result, "No entries.") {
		t.Fatalf("expected empty message, got: %s", result)
	}
}

func TestRenderShortcutBar(t *testing.T) {
	styleSet := styles.DefaultStyles()

	if got := RenderShortcutBar(styleSet, overlay.ShortcutList{Title: "Empty"}, 80); got != "" {
		t.Fatalf("expected empty bar, got %q", got)
	}

	list := NewThemeSelector(theme.Default).Shortcuts()
	result := RenderShortcutBar(styleSet, list, 200)
	for _, want := range []string{"Theme Selector:", "j/Down", "Next theme", "Esc", "Cancel"} {
		if !strings.Contains(result, want) {
			t.Errorf("expected %q in shortcut bar, got: %s", want, result)
		}
	}
}
