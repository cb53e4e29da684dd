package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tutordesk/internal/ui/theme"
)

// ContentWidth returns the inner width used for stacked cards.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 4
	if w > 100 {
		w = 100
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps body in a rounded box with an optional title line.
func Card(title, body string, width int) string {
	content := body
	if title != "" {
		content = theme.Title.Render(title) + "\n" + body
	}
	return theme.Card.
		Width(width).
		Render(content)
}

// Columns lays cards out side by side, splitting width evenly.
func Columns(width int, cards ...func(w int) string) string {
	if len(cards) == 0 {
		return ""
	}
	w := width / len(cards)
	rendered := make([]string, len(cards))
	for i, c := range cards {
		rendered[i] = c(w)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// Metric renders a small labelled number for metric rows.
func Metric(label, value string, width int) string {
	v := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(value)
	l := theme.Subtitle.Render(label)
	return theme.Card.Width(width).Render(v + "\n" + l)
}
