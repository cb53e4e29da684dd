package auth

import (
	tea "charm.land/bubbletea/v2"

	authsvc "github.com/abhisek/tutordesk/internal/auth"
	"github.com/abhisek/tutordesk/internal/router"
	"github.com/abhisek/tutordesk/internal/screen"
	"github.com/abhisek/tutordesk/internal/state"
	"github.com/abhisek/tutordesk/internal/ui/components"
	"github.com/abhisek/tutordesk/internal/ui/layout"
)

const (
	loginEmail = iota
	loginPassword
)

// LoginScreen signs an existing student in.
type LoginScreen struct {
	svc  *authsvc.Service
	form form
}

var (
	_ screen.Screen          = (*LoginScreen)(nil)
	_ screen.InputCapturer   = (*LoginScreen)(nil)
	_ screen.KeyHintProvider = (*LoginScreen)(nil)
)

// NewLogin creates the login screen.
func NewLogin(svc *authsvc.Service) *LoginScreen {
	return &LoginScreen{
		svc: svc,
		form: newForm(
			components.NewTextInput("Email", "you@example.com", false, 120),
			components.NewTextInput("Password", "••••••", true, 72),
		),
	}
}

func (l *LoginScreen) Init() tea.Cmd { return nil }

func (l *LoginScreen) Title() string { return "Sign In" }

func (l *LoginScreen) CapturingInput() bool { return true }

func (l *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case authsvc.FailedMsg:
		l.form.busy = false
		l.form.err = failureText(msg.Err)
		return l, nil
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+r" {
			return l, router.SwitchAuthView(state.AuthRegister)
		}
		if l.form.busy {
			return l, nil
		}
	}

	submit, cmd := l.form.update(msg)
	if !submit {
		return l, cmd
	}
	if field := l.form.missing(); field != "" {
		l.form.err = field + " is required."
		return l, nil
	}
	l.form.err = ""
	l.form.busy = true
	return l, authsvc.LoginCmd(l.svc, l.form.value(loginEmail), l.form.value(loginPassword))
}

func (l *LoginScreen) View(width, height int) string {
	return l.form.view("Welcome back", "Sign in to continue learning", "Sign In",
		"New here? Press Ctrl+R to create an account.", width, height)
}

func (l *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Sign in"},
		{Key: "Ctrl+R", Description: "Register"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
