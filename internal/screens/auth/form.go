// Package auth holds the login and registration screens shown before a
// student is signed in.
package auth

import (
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	authsvc "github.com/abhisek/tutordesk/internal/auth"
	"github.com/abhisek/tutordesk/internal/ui/components"
	"github.com/abhisek/tutordesk/internal/ui/theme"
)

const formWidth = 52

// form is a column of text inputs with one focused field.
type form struct {
	inputs []components.TextInput
	focus  int
	err    string
	busy   bool
}

func newForm(inputs ...components.TextInput) form {
	f := form{inputs: inputs}
	f.inputs[0].Focus()
	return f
}

// move shifts focus by delta, wrapping around.
func (f *form) move(delta int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	return f.inputs[f.focus].Focus()
}

// update routes msg to the focused input. It reports whether Enter was
// pressed on the last field, or on any field whose successors are filled.
func (f *form) update(msg tea.Msg) (submit bool, cmd tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "tab", "down":
			return false, f.move(1)
		case "shift+tab", "up":
			return false, f.move(-1)
		case "enter":
			if f.focus < len(f.inputs)-1 && strings.TrimSpace(f.inputs[f.focus+1].Value()) == "" {
				return false, f.move(1)
			}
			return true, nil
		}
	}
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return false, cmd
}

// missing returns the label of the first empty field, or "".
func (f *form) missing() string {
	for _, in := range f.inputs {
		if strings.TrimSpace(in.Value()) == "" {
			return in.Label
		}
	}
	return ""
}

func (f *form) value(i int) string {
	return f.inputs[i].Value()
}

func (f *form) view(title, subtitle, submit, switchHint string, width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(subtitle))
	b.WriteString("\n\n")
	for _, in := range f.inputs {
		b.WriteString(in.View())
		b.WriteString("\n\n")
	}

	if f.busy {
		b.WriteString(theme.Hint.Render("Please wait..."))
	} else {
		b.WriteString(components.ButtonRow([]string{submit}, 0))
	}
	if f.err != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(f.err))
	}
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render(switchHint))

	w := min(formWidth, components.ContentWidth(width))
	card := theme.Card.Width(w).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

// failureText turns an auth error into a message for the form.
func failureText(err error) string {
	var ve *authsvc.ValidationError
	switch {
	case errors.Is(err, authsvc.ErrInvalidCredentials):
		return "Invalid email or password."
	case errors.Is(err, authsvc.ErrEmailTaken):
		return "An account with this email already exists."
	case errors.As(err, &ve):
		return capitalize(ve.Field) + " " + ve.Message + "."
	default:
		return "Something went wrong. Please try again."
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
