package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tutordesk/internal/ui/theme"
)

// MenuItem represents a single row in a Menu.
type MenuItem struct {
	Label    string
	Detail   string
	Marker   string
	Disabled bool
}

// Menu is a vertical selectable list. It only tracks the cursor; the owner
// decides what Enter means.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the cursor on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	selected := 0
	for i, item := range items {
		if !item.Disabled {
			selected = i
			break
		}
	}
	return Menu{
		Items:    items,
		Selected: selected,
	}
}

// SetItems replaces the rows and clamps the cursor.
func (m Menu) SetItems(items []MenuItem) Menu {
	m.Items = items
	if m.Selected >= len(items) {
		m.Selected = len(items) - 1
	}
	if m.Selected < 0 {
		m.Selected = 0
	}
	return m
}

// Update handles cursor movement.
func (m Menu) Update(msg tea.Msg) Menu {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m
	}

	switch kmsg.String() {
	case "up", "k":
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "down", "j":
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	}
	return m
}

// Current returns the selected index, or -1 when the menu is empty.
func (m Menu) Current() int {
	if len(m.Items) == 0 {
		return -1
	}
	return m.Selected
}

// View renders the menu. focused controls whether the cursor is drawn.
func (m Menu) View(focused bool) string {
	var b strings.Builder
	for i, item := range m.Items {
		marker := item.Marker
		if marker == "" {
			marker = " "
		}
		label := marker + " " + item.Label
		if item.Detail != "" {
			label += "  " + theme.Hint.Render(item.Detail)
		}

		switch {
		case focused && i == m.Selected:
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("▸ " + label))
		case item.Disabled:
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("  " + label))
		default:
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("  " + label))
		}
		b.WriteString("\n")
	}
	return b.String()
}
