package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tutordesk/internal/ui/theme"
)

// Button is a focusable action label.
type Button struct {
	Label   string
	Focused bool
}

// NewButton creates a new button.
func NewButton(label string, focused bool) Button {
	return Button{Label: label, Focused: focused}
}

// View renders the button.
func (b Button) View() string {
	if b.Focused {
		return theme.ButtonActive.Render("▸ " + b.Label)
	}
	return theme.ButtonInactive.Render(b.Label)
}

// ButtonRow renders buttons left to right with the focused index highlighted.
func ButtonRow(labels []string, focused int) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = NewButton(l, i == focused).View()
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
