package components

import (
	"strings"
	"testing"

	"github.com/nnyyxxxx/linutil/internal/tui/styles"
)

func TestEmptyStateRender(t *testing.T) {
	styleSet := styles.DefaultStyles()

	t.Run("basic empty state", func(t *testing.T) {
		es := EmptyState{Title: "No items found"}
		result := es.Render(styleSet)
		if !strings.Contains(result, "No items found") {
			t.Errorf("Expected title in output, got: %s", result)
		}
		if strings.Count(result, "\n") != 0 {
			t.Errorf("Expected a single line, got: %q", result)
		}
	})

	t.Run("empty state with subtitle", func(t *testing.T) {
		es := EmptyState{Title: "No data", Subtitle: "Check back later"}
		result := es.Render(styleSet)
		if !strings.Contains(result, "Check back later") {
			t.Errorf("Expected subtitle in output, got: %s", result)
		}
	})

	t.Run("empty state with suggestions", func(t *testing.T) {
		es := EmptyState{
			Title:       "Nothing here",
			Suggestions: []Suggestion{{Key: "Tab", Description: "switch tabs"}},
		}
		result := es.Render(styleSet)
		if !strings.Contains(result, "Press Tab to switch tabs.") {
			t.Errorf("Expected suggestion line, got: %s", result)
		}
	})
}

func TestEmptyStateRenderCompact(t *testing.T) {
	styleSet := styles.DefaultStyles()

	t.Run("compact without suggestions", func(t *testing.T) {
		result := EmptyState{Title: "No results"}.RenderCompact(styleSet)
		if !strings.Contains(result, "No results") || strings.Contains(result, "Try:") {
			t.Errorf("Expected bare title, got: %q", result)
		}
	})

	t.Run("compact with suggestion", func(t *testing.T) {
		es := EmptyState{Title: "Empty", Suggestions: []Suggestion{{Key: "q"}}}
		result := es.RenderCompact(styleSet)
		if !strings.Contains(result, "Try: q") {
			t.Errorf("Expected suggestion hint in compact output, got: %s", result)
		}
	})
}

func TestPrebuiltEmptyStates(t *testing.T) {
	styleSet := styles.DefaultStyles()

	tests := []struct {
		name     string
		es       EmptyState
		expected []string
	}{
		{
			name:     "EmptyTab",
			es:       EmptyTab(),
			expected: []string{"No entries.", "Press Tab"},
		},
		{
			name:     "TerminalTooSmall",
			es:       TerminalTooSmall(20, 5, 50, 20),
			expected: []string{"Terminal too small (20x5).", "at least 50x20", "Press q to quit."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.es.Render(styleSet)
			for _, exp := range tt.expected {
				if !strings.Contains(result, exp) {
					t.Errorf("Expected %q in %s output, got: %s", exp, tt.name, result)
				}
			}
		})
	}
}
