package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(79, 30) || !IsTooSmall(100, 23) {
		t.Error("expected too small")
	}
	if IsTooSmall(80, 24) {
		t.Error("80x24 should fit")
	}
}

func TestRenderHeaderShowsActiveViewAndUser(t *testing.T) {
	nav := []NavItem{
		{Key: "F1", Label: "Dashboard"},
		{Key: "F2", Label: "Subjects", Active: true},
	}
	// The active label is underlined rune by rune, so compare plain text.
	out := ansi.Strip(RenderHeader("Subjects", nav, "Alex", 120))
	for _, want := range []string{"TutorDesk", "Dashboard", "Subjects", "Alex"} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestRenderFrameFillsHeight(t *testing.T) {
	header := RenderHeader("Title", nil, "", 80)
	footer := RenderFooter([]KeyHint{{Key: "Esc", Description: "Back"}}, 80)
	frame := RenderFrame(header, "body", footer, 80, 24)
	if h := lipgloss.Height(frame); h != 24 {
		t.Errorf("frame height = %d, want 24", h)
	}
}
